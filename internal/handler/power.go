package handler

import (
	"fmt"
	"net/http"

	"github.com/rethesda/soulsy/internal/domain"
	"github.com/rethesda/soulsy/internal/shout"
)

// PowerHandler drives the power-slot controller
type PowerHandler struct {
	catalog    Catalog
	actors     ActorStore
	controller PowerController
}

// NewPowerHandler creates a new power handler
func NewPowerHandler(catalog Catalog, actors ActorStore, controller PowerController) *PowerHandler {
	return &PowerHandler{catalog: catalog, actors: actors, controller: controller}
}

// PowerResponse describes the selected power
type PowerResponse struct {
	Kind     string `json:"kind"`
	FormSpec string `json:"form_spec,omitempty"`
	Name     string `json:"name,omitempty"`
}

// OutcomeResponse reports the result of a power-slot transition
type OutcomeResponse struct {
	Outcome shout.Outcome `json:"outcome"`
	Changed bool          `json:"changed"`
	Power   PowerResponse `json:"power"`
}

func newPowerResponse(state shout.PowerState) PowerResponse {
	resp := PowerResponse{Kind: state.Kind.String()}
	if !domain.IsAbsent(state.Item) {
		resp.FormSpec = state.Item.Base().Spec
		resp.Name = state.Item.Base().Name
	}
	return resp
}

// HandleGetPower returns the actor's selected power
// GET /api/v1/actors/{actorID}/power
func (h *PowerHandler) HandleGetPower(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.knownActor(w, r, ErrMsgGetPowerFailed)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, newPowerResponse(h.controller.Selected(actorID)))
}

// HandleEquipShout equips a catalog form as the actor's shout. Guard
// rejections are reported through the outcome, not the status code.
// POST /api/v1/actors/{actorID}/power/shout
func (h *PowerHandler) HandleEquipShout(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.knownActor(w, r, ErrMsgEquipShoutFailed)
	if !ok {
		return
	}
	var req FormRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Equip shout"); err != nil {
		return
	}

	target, err := h.catalog.Get(req.FormSpec)
	if err != nil {
		respondServiceError(w, r, ErrMsgEquipShoutFailed, err)
		return
	}

	outcome := h.controller.EquipShoutByForm(r.Context(), actorID, target)
	h.respondOutcome(w, actorID, outcome)
}

// HandleSelectSpellPower places a power spell in the slot directly
// POST /api/v1/actors/{actorID}/power/spell
func (h *PowerHandler) HandleSelectSpellPower(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.knownActor(w, r, ErrMsgSelectPowerFailed)
	if !ok {
		return
	}
	var req FormRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Select power"); err != nil {
		return
	}

	it, err := h.catalog.Get(req.FormSpec)
	if err != nil {
		respondServiceError(w, r, ErrMsgSelectPowerFailed, err)
		return
	}
	spell, _ := it.(*domain.Spell)
	if err := h.actors.SelectPower(actorID, spell); err != nil {
		respondServiceError(w, r, ErrMsgSelectPowerFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{
		Message: MsgPowerSelected,
		Data:    newPowerResponse(h.controller.Selected(actorID)),
	})
}

// HandleUnequipPower clears the actor's power slot
// DELETE /api/v1/actors/{actorID}/power
func (h *PowerHandler) HandleUnequipPower(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.knownActor(w, r, ErrMsgUnequipFailed)
	if !ok {
		return
	}
	outcome := h.controller.UnequipShoutSlot(r.Context(), actorID)
	h.respondOutcome(w, actorID, outcome)
}

func (h *PowerHandler) respondOutcome(w http.ResponseWriter, actorID domain.ActorID, outcome shout.Outcome) {
	respondJSON(w, http.StatusOK, OutcomeResponse{
		Outcome: outcome,
		Changed: outcome.Changed(),
		Power:   newPowerResponse(h.controller.Selected(actorID)),
	})
}

func (h *PowerHandler) knownActor(w http.ResponseWriter, r *http.Request, action string) (domain.ActorID, bool) {
	actorID, ok := actorParam(r, w)
	if !ok {
		return "", false
	}
	if !h.actors.Exists(actorID) {
		respondServiceError(w, r, action, fmt.Errorf("%w: %s", domain.ErrActorNotFound, actorID))
		return "", false
	}
	return actorID, true
}
