package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rethesda/soulsy/internal/domain"
)

func TestHandleRegisterActor(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{"success", RegisterActorRequest{ActorID: "lydia"}, http.StatusCreated},
		{"missing id", RegisterActorRequest{}, http.StatusBadRequest},
		{"path separator", RegisterActorRequest{ActorID: "a/b"}, http.StatusBadRequest},
		{"malformed json", `{"actor_id":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			rec := h.do(t, http.MethodPost, "/api/v1/actors", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			if tt.expectedStatus == http.StatusCreated {
				assert.True(t, h.actors.Exists("lydia"))
				assert.Contains(t, rec.Body.String(), MsgActorRegistered)
			}
		})
	}
}

func TestHandleLearnShout(t *testing.T) {
	tests := []struct {
		name           string
		actor          string
		formSpec       string
		expectedStatus int
		expectedBody   string
	}{
		{"success", "player", specForce, http.StatusOK, MsgShoutLearned},
		{"not a shout", "player", specIronSword, http.StatusBadRequest, ErrMsgInvalidInputError},
		{"unknown form", "player", specUnknownForm, http.StatusNotFound, ErrMsgItemNotFoundError},
		{"unknown actor", "lydia", specForce, http.StatusNotFound, ErrMsgActorNotFoundError},
		{"missing form", "player", "", http.StatusBadRequest, ErrMsgInvalidRequestSummary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			rec := h.do(t, http.MethodPost, "/api/v1/actors/"+tt.actor+"/shouts", FormRequest{FormSpec: tt.formSpec})

			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}

	t.Run("actor knows the shout afterwards", func(t *testing.T) {
		h := newHarness(t)
		rec := h.do(t, http.MethodPost, "/api/v1/actors/player/shouts", FormRequest{FormSpec: specForce})
		require.Equal(t, http.StatusOK, rec.Code)

		force, err := h.catalog.Get(specForce)
		require.NoError(t, err)
		assert.True(t, h.actors.KnowsShout(domain.PlayerActor, force.(*domain.Shout)))
	})
}

func TestHandleSetInventory(t *testing.T) {
	t.Run("sets and clears counts", func(t *testing.T) {
		h := newHarness(t)
		potion, err := h.catalog.Get(specPotion)
		require.NoError(t, err)

		rec := h.do(t, http.MethodPut, "/api/v1/actors/player/inventory", SetInventoryRequest{Counts: map[string]int{specPotion: 4}})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, 4, h.actors.Counter(domain.PlayerActor).InventoryCount(potion))

		rec = h.do(t, http.MethodPut, "/api/v1/actors/player/inventory", SetInventoryRequest{Counts: map[string]int{specPotion: 0}})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, h.actors.Counter(domain.PlayerActor).InventoryCount(potion))
	})

	t.Run("negative count", func(t *testing.T) {
		h := newHarness(t)
		rec := h.do(t, http.MethodPut, "/api/v1/actors/player/inventory", SetInventoryRequest{Counts: map[string]int{specPotion: -1}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown actor", func(t *testing.T) {
		h := newHarness(t)
		rec := h.do(t, http.MethodPut, "/api/v1/actors/lydia/inventory", SetInventoryRequest{Counts: map[string]int{specPotion: 1}})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
