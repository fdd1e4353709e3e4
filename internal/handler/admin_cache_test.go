package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rethesda/soulsy/internal/cache"
)

// MockCacheAdmin mocks the CacheAdmin interface
type MockCacheAdmin struct {
	mock.Mock
}

func (m *MockCacheAdmin) GetStats() cache.Stats {
	args := m.Called()
	return args.Get(0).(cache.Stats)
}

func (m *MockCacheAdmin) Clear() {
	m.Called()
}

func TestHandleGetCacheStats(t *testing.T) {
	mockCache := new(MockCacheAdmin)
	mockCache.On("GetStats").Return(cache.Stats{Hits: 100, Misses: 50, Size: 42})

	handler := NewAdminCacheHandler(mockCache)

	req := httptest.NewRequest("GET", "/api/v1/admin/cache/stats", nil)
	w := httptest.NewRecorder()
	handler.HandleGetCacheStats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response cache.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, cache.Stats{Hits: 100, Misses: 50, Size: 42}, response)
	mockCache.AssertExpectations(t)
}

func TestHandleClearCache(t *testing.T) {
	mockCache := new(MockCacheAdmin)
	mockCache.On("Clear").Return().Once()

	handler := NewAdminCacheHandler(mockCache)

	req := httptest.NewRequest("POST", "/api/v1/admin/cache/clear", nil)
	w := httptest.NewRecorder()
	handler.HandleClearCache(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgCacheCleared)
	mockCache.AssertExpectations(t)
}

func TestAdminCacheHandler_RealCache(t *testing.T) {
	c := cache.New(cache.DefaultConfig())
	_, _ = c.Get("Skyrim.esm|0x1")

	w := httptest.NewRecorder()
	NewAdminCacheHandler(c).HandleGetCacheStats(w, httptest.NewRequest("GET", "/api/v1/admin/cache/stats", nil))

	assert.JSONEq(t, `{"hits":0,"misses":1,"size":0}`, w.Body.String())
}
