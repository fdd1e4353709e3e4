// Package docs registers the OpenAPI document for the dev harness API with
// swag so the /swagger/ UI can serve it.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "in": "header", "name": "X-API-Key"}
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/items": {
            "get": {
                "tags": ["items"],
                "summary": "Classify every catalog entry",
                "parameters": [
                    {"type": "string", "description": "Form category name, or relevant/inventory", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ClassificationsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/items/{formSpec}": {
            "get": {
                "tags": ["items"],
                "summary": "Classify one catalog entry",
                "parameters": [
                    {"type": "string", "description": "Plugin|0xID form spec", "name": "formSpec", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Classification"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/classify": {
            "post": {
                "tags": ["items"],
                "summary": "Classify catalog entries by form spec",
                "parameters": [
                    {"description": "Form specs", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ClassifyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ClassificationsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}}
                }
            }
        },
        "/classify/item": {
            "post": {
                "tags": ["items"],
                "summary": "Classify an ad hoc item record",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Classification"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/actors": {
            "post": {
                "tags": ["actors"],
                "summary": "Register an actor",
                "parameters": [
                    {"description": "Actor", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterActorRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.SuccessResponse"}}
                }
            }
        },
        "/actors/{actorID}/shouts": {
            "post": {
                "tags": ["actors"],
                "summary": "Teach an actor a shout",
                "parameters": [
                    {"type": "string", "name": "actorID", "in": "path", "required": true},
                    {"description": "Shout form", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.FormRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/actors/{actorID}/inventory": {
            "put": {
                "tags": ["actors"],
                "summary": "Set stack counts",
                "parameters": [
                    {"type": "string", "name": "actorID", "in": "path", "required": true},
                    {"description": "Counts by form spec", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SetInventoryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SuccessResponse"}}
                }
            }
        },
        "/actors/{actorID}/power": {
            "get": {
                "tags": ["power"],
                "summary": "Read the selected power",
                "parameters": [{"type": "string", "name": "actorID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PowerResponse"}}}
            },
            "delete": {
                "tags": ["power"],
                "summary": "Clear the power slot",
                "parameters": [{"type": "string", "name": "actorID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.OutcomeResponse"}}}
            }
        },
        "/actors/{actorID}/power/shout": {
            "post": {
                "tags": ["power"],
                "summary": "Equip a known shout",
                "parameters": [
                    {"type": "string", "name": "actorID", "in": "path", "required": true},
                    {"description": "Shout form", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.FormRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.OutcomeResponse"}}}
            }
        },
        "/actors/{actorID}/power/spell": {
            "post": {
                "tags": ["power"],
                "summary": "Select a power spell",
                "parameters": [
                    {"type": "string", "name": "actorID", "in": "path", "required": true},
                    {"description": "Power form", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.FormRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.OutcomeResponse"}}}
            }
        },
        "/admin/cache/stats": {
            "get": {"tags": ["admin"], "summary": "Classification cache statistics", "responses": {"200": {"description": "OK"}}}
        },
        "/admin/cache/clear": {
            "post": {"tags": ["admin"], "summary": "Drop cached classifications", "responses": {"200": {"description": "OK"}}}
        },
        "/admin/events": {
            "get": {
                "tags": ["admin"],
                "summary": "Recent power-slot events, newest first",
                "parameters": [
                    {"type": "string", "name": "actor_id", "in": "query"},
                    {"type": "string", "name": "event_type", "in": "query"},
                    {"type": "string", "format": "date-time", "name": "since", "in": "query"},
                    {"type": "integer", "minimum": 1, "maximum": 1000, "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.EventsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/events/stream": {
            "get": {
                "tags": ["events"],
                "summary": "Server-sent stream of power-slot events",
                "produces": ["text/event-stream"],
                "parameters": [
                    {"type": "string", "description": "Comma separated event types", "name": "types", "in": "query"},
                    {"type": "string", "name": "actor_id", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "domain.Classification": {
            "type": "object",
            "properties": {
                "slot_type": {"type": "string"},
                "icon": {"type": "string"},
                "two_handed": {"type": "boolean"},
                "has_count": {"type": "boolean"},
                "count": {"type": "integer"},
                "instant_cast": {"type": "boolean"},
                "form_spec": {"type": "string"},
                "name": {"type": "string"},
                "spell": {"type": "object"}
            }
        },
        "handler.ClassificationsResponse": {
            "type": "object",
            "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/domain.Classification"}}}
        },
        "handler.ClassifyRequest": {
            "type": "object",
            "required": ["form_specs"],
            "properties": {
                "actor_id": {"type": "string"},
                "form_specs": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.RegisterActorRequest": {
            "type": "object",
            "required": ["actor_id"],
            "properties": {"actor_id": {"type": "string"}}
        },
        "handler.FormRequest": {
            "type": "object",
            "required": ["form_spec"],
            "properties": {"form_spec": {"type": "string"}}
        },
        "handler.SetInventoryRequest": {
            "type": "object",
            "required": ["counts"],
            "properties": {"counts": {"type": "object", "additionalProperties": {"type": "integer"}}}
        },
        "handler.PowerResponse": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "form_spec": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "handler.OutcomeResponse": {
            "type": "object",
            "properties": {
                "outcome": {"type": "string"},
                "changed": {"type": "boolean"},
                "power": {"$ref": "#/definitions/handler.PowerResponse"}
            }
        },
        "handler.EventsResponse": {
            "type": "object",
            "properties": {"events": {"type": "array", "items": {"type": "object"}}}
        },
        "handler.SuccessResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "soulsy dev harness API",
	Description:      "Quick-equip item classification and power-slot control.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
