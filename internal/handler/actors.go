package handler

import (
	"fmt"
	"net/http"

	"github.com/rethesda/soulsy/internal/domain"
	"github.com/rethesda/soulsy/internal/logger"
)

// ActorHandler sets up actors for the dev harness
type ActorHandler struct {
	catalog Catalog
	actors  ActorStore
}

// NewActorHandler creates a new actor handler
func NewActorHandler(catalog Catalog, actors ActorStore) *ActorHandler {
	return &ActorHandler{catalog: catalog, actors: actors}
}

// RegisterActorRequest registers an actor by id
type RegisterActorRequest struct {
	ActorID string `json:"actor_id" validate:"required,max=100,excludesall=/?#"`
}

// FormRequest names a catalog form
type FormRequest struct {
	FormSpec string `json:"form_spec" validate:"required,formspec"`
}

// SetInventoryRequest sets stack counts by form spec. A zero count removes the stack.
type SetInventoryRequest struct {
	Counts map[string]int `json:"counts" validate:"required,dive,keys,required,formspec,endkeys,min=0"`
}

// HandleRegisterActor registers an actor. Registering twice is harmless.
// POST /api/v1/actors
func (h *ActorHandler) HandleRegisterActor(w http.ResponseWriter, r *http.Request) {
	var req RegisterActorRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register actor"); err != nil {
		return
	}

	h.actors.Register(domain.ActorID(req.ActorID))
	logger.FromContext(r.Context()).Info(MsgActorRegistered, "actor", req.ActorID)
	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgActorRegistered})
}

// HandleLearnShout teaches the actor a catalog shout
// POST /api/v1/actors/{actorID}/shouts
func (h *ActorHandler) HandleLearnShout(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actorParam(r, w)
	if !ok {
		return
	}
	var req FormRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Learn shout"); err != nil {
		return
	}

	it, err := h.catalog.Get(req.FormSpec)
	if err != nil {
		respondServiceError(w, r, ErrMsgLearnShoutFailed, err)
		return
	}
	s, isShout := it.(*domain.Shout)
	if !isShout {
		respondServiceError(w, r, ErrMsgLearnShoutFailed,
			fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, ErrMsgNotAShoutForm, req.FormSpec))
		return
	}
	if err := h.actors.LearnShout(actorID, s); err != nil {
		respondServiceError(w, r, ErrMsgLearnShoutFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgShoutLearned})
}

// HandleSetInventory sets the actor's stack counts
// PUT /api/v1/actors/{actorID}/inventory
func (h *ActorHandler) HandleSetInventory(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actorParam(r, w)
	if !ok {
		return
	}
	var req SetInventoryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set inventory"); err != nil {
		return
	}

	for spec, count := range req.Counts {
		if err := h.actors.SetCount(actorID, spec, count); err != nil {
			respondServiceError(w, r, ErrMsgSetInventoryFailed, err)
			return
		}
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgInventoryUpdated})
}
