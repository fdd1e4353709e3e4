package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/rethesda/soulsy/internal/domain"
	"github.com/rethesda/soulsy/internal/equippable"
	"github.com/rethesda/soulsy/internal/item"
	"github.com/rethesda/soulsy/internal/logger"
)

// Category filters accepted by the item listing besides form category names.
const (
	CategoryFilterRelevant  = "relevant"
	CategoryFilterInventory = "inventory"
)

// ItemHandler classifies catalog entries and ad hoc records.
type ItemHandler struct {
	catalog    Catalog
	classifier *equippable.Classifier
	actors     ActorStore
}

// NewItemHandler creates a new item handler
func NewItemHandler(catalog Catalog, classifier *equippable.Classifier, actors ActorStore) *ItemHandler {
	return &ItemHandler{catalog: catalog, classifier: classifier, actors: actors}
}

// ClassificationsResponse lists classification records
type ClassificationsResponse struct {
	Items []domain.Classification `json:"items"`
}

// ClassifyRequest asks for catalog entries classified for one actor
type ClassifyRequest struct {
	ActorID   string   `json:"actor_id" validate:"omitempty,max=100"`
	FormSpecs []string `json:"form_specs" validate:"required,min=1,max=500,dive,required,formspec"`
}

// HandleListItems classifies every catalog entry, optionally filtered
// GET /api/v1/items?category=
func (h *ItemHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	filter := GetOptionalQueryParam(r, "category", "")
	keep, ok := categoryFilter(filter)
	if !ok {
		logger.FromContext(r.Context()).Warn("Invalid category filter", "category", filter)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidCategory, filter))
		return
	}

	classifier := h.classifierFor(domain.PlayerActor)
	items := h.catalog.Filter(keep)
	out := make([]domain.Classification, 0, len(items))
	for _, it := range items {
		out = append(out, classifier.Classify(r.Context(), it))
	}
	respondJSON(w, http.StatusOK, ClassificationsResponse{Items: out})
}

// HandleGetItem classifies one catalog entry
// GET /api/v1/items/{formSpec}
func (h *ItemHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	raw, ok := GetPathParam(r, w, "formSpec")
	if !ok {
		return
	}
	spec, err := url.PathUnescape(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
		return
	}
	it, err := h.catalog.Get(spec)
	if err != nil {
		respondServiceError(w, r, ErrMsgClassifyFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, h.classifierFor(domain.PlayerActor).Classify(r.Context(), it))
}

// HandleClassify classifies a batch of catalog entries. Counts come from
// the requested actor's inventory; the player is used when none is given.
// POST /api/v1/classify
func (h *ItemHandler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Classify"); err != nil {
		return
	}

	actorID := domain.PlayerActor
	if req.ActorID != "" {
		actorID = domain.ActorID(req.ActorID)
	}
	if !h.actors.Exists(actorID) {
		respondServiceError(w, r, ErrMsgClassifyFailed, fmt.Errorf("%w: %s", domain.ErrActorNotFound, actorID))
		return
	}

	classifier := h.classifierFor(actorID)
	out := make([]domain.Classification, 0, len(req.FormSpecs))
	for _, spec := range req.FormSpecs {
		it, err := h.catalog.Get(spec)
		if err != nil {
			respondServiceError(w, r, ErrMsgClassifyFailed, err)
			return
		}
		out = append(out, classifier.Classify(r.Context(), it))
	}
	respondJSON(w, http.StatusOK, ClassificationsResponse{Items: out})
}

// HandleClassifyItem classifies a record given in catalog form. The
// record is not added to the catalog and bypasses the cache.
// POST /api/v1/classify/item
func (h *ItemHandler) HandleClassifyItem(w http.ResponseWriter, r *http.Request) {
	var def item.Def
	if err := DecodeAndValidateRequest(r, w, &def, "Classify item"); err != nil {
		return
	}

	it, err := def.ToItem()
	if err != nil {
		respondServiceError(w, r, ErrMsgClassifyFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, h.classifier.Uncached().Classify(r.Context(), it))
}

func (h *ItemHandler) classifierFor(actorID domain.ActorID) *equippable.Classifier {
	return h.classifier.ForInventory(h.actors.Counter(actorID))
}

func categoryFilter(name string) (func(domain.FormCategory) bool, bool) {
	switch name {
	case "":
		return func(domain.FormCategory) bool { return true }, true
	case CategoryFilterRelevant:
		return domain.FormCategory.IsRelevant, true
	case CategoryFilterInventory:
		return domain.FormCategory.IsInventory, true
	}
	category := domain.ParseFormCategory(name)
	if category.String() != name {
		return nil, false
	}
	return func(c domain.FormCategory) bool { return c == category }, true
}
