package handler

import (
	"net/http"

	"github.com/rethesda/soulsy/internal/logger"
)

// AdminCacheHandler handles admin cache operations
type AdminCacheHandler struct {
	cache CacheAdmin
}

// NewAdminCacheHandler creates a new admin cache handler
func NewAdminCacheHandler(cache CacheAdmin) *AdminCacheHandler {
	return &AdminCacheHandler{cache: cache}
}

// HandleGetCacheStats returns classification cache statistics
// GET /api/v1/admin/cache/stats
func (h *AdminCacheHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cache.GetStats())
}

// HandleClearCache drops every cached classification
// POST /api/v1/admin/cache/clear
func (h *AdminCacheHandler) HandleClearCache(w http.ResponseWriter, r *http.Request) {
	h.cache.Clear()
	logger.FromContext(r.Context()).Info(MsgCacheCleared)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCacheCleared})
}
