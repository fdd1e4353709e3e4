package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/rethesda/soulsy/internal/actor"
	"github.com/rethesda/soulsy/internal/equippable"
	"github.com/rethesda/soulsy/internal/item"
	"github.com/rethesda/soulsy/internal/shout"
)

const (
	specIronSword   = "Skyrim.esm|0x12EB7"
	specForce       = "Skyrim.esm|0x13E07"
	specSprint      = "Skyrim.esm|0x2F7BB"
	specPotion      = "Skyrim.esm|0x3EADE"
	specHighborn    = "Skyrim.esm|0xE40C9"
	specFrostbite   = "Skyrim.esm|0x2B96C"
	specUnknownForm = "Skyrim.esm|0xBAD"
)

func testCatalog(t *testing.T) *item.Store {
	t.Helper()
	config := &item.Config{
		Version: "1.0",
		Items: []item.Def{
			{FormSpec: specIronSword, Name: "Iron Sword", Category: "weapon", Weapon: &item.WeaponDef{Kind: "one_hand_sword"}},
			{FormSpec: specForce, Name: "Unrelenting Force", Category: "shout"},
			{FormSpec: specSprint, Name: "Whirlwind Sprint", Category: "shout"},
			{
				FormSpec: specPotion, Name: "Potion of Minor Healing", Category: "alchemy", Count: 5,
				Alchemy: &item.AlchemyDef{Effects: []item.EffectDef{{Primary: "Health", Cost: 10}}},
			},
			{FormSpec: specHighborn, Name: "Highborn", Category: "spell", Spell: &item.SpellDef{Kind: "power", Casting: "fire_and_forget"}},
			{
				FormSpec: specFrostbite, Name: "Frostbite", Category: "spell",
				Spell: &item.SpellDef{
					Kind:    "spell",
					Casting: "concentration",
					Effects: []item.EffectDef{{School: "Destruction", Primary: "Health", Resist: "ResistFrost", Cost: 16, Hostile: true}},
				},
			},
		},
	}
	store, err := item.NewStore(context.Background(), config)
	require.NoError(t, err)
	return store
}

type harness struct {
	catalog    *item.Store
	actors     *actor.Registry
	controller *shout.Controller
	router     chi.Router
}

// newHarness wires the handlers over an in-memory catalog and registry.
func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		catalog: testCatalog(t),
		actors:  actor.NewRegistry(),
	}
	h.controller = shout.NewController(h.actors, h.actors, nil)

	items := NewItemHandler(h.catalog, equippable.NewClassifier(nil), h.actors)
	actors := NewActorHandler(h.catalog, h.actors)
	power := NewPowerHandler(h.catalog, h.actors, h.controller)

	r := chi.NewRouter()
	r.Get("/api/v1/items", items.HandleListItems)
	r.Get("/api/v1/items/{formSpec}", items.HandleGetItem)
	r.Post("/api/v1/classify", items.HandleClassify)
	r.Post("/api/v1/classify/item", items.HandleClassifyItem)
	r.Post("/api/v1/actors", actors.HandleRegisterActor)
	r.Post("/api/v1/actors/{actorID}/shouts", actors.HandleLearnShout)
	r.Put("/api/v1/actors/{actorID}/inventory", actors.HandleSetInventory)
	r.Get("/api/v1/actors/{actorID}/power", power.HandleGetPower)
	r.Delete("/api/v1/actors/{actorID}/power", power.HandleUnequipPower)
	r.Post("/api/v1/actors/{actorID}/power/shout", power.HandleEquipShout)
	r.Post("/api/v1/actors/{actorID}/power/spell", power.HandleSelectSpellPower)
	h.router = r
	return h
}

func jsonBody(t *testing.T, body interface{}) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	return &buf
}

func (h *harness) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

// classificationJSON mirrors the wire form of domain.Classification.
type classificationJSON struct {
	SlotType    string `json:"slot_type"`
	Icon        string `json:"icon"`
	TwoHanded   bool   `json:"two_handed"`
	HasCount    bool   `json:"has_count"`
	Count       int    `json:"count"`
	InstantCast bool   `json:"instant_cast"`
	Spec        string `json:"form_spec"`
	Name        string `json:"name"`
	Spell       *struct {
		School string `json:"school"`
		Damage string `json:"damage"`
	} `json:"spell"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
