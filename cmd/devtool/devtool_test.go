package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `{
  "version": "1.0",
  "items": [
    {"form_spec": "Skyrim.esm|0x12EB7", "name": "Iron Sword", "category": "weapon", "weapon": {"kind": "one_hand_sword"}},
    {"form_spec": "Skyrim.esm|0x39BE5", "name": "Potion of Minor Healing", "category": "alchemy", "count": 4,
     "alchemy": {"effects": [{"primary": "Health", "cost": 12}]}},
    {"form_spec": "Skyrim.esm|0x2E4FF", "name": "Mysterious Gem", "category": "other"}
  ]
}`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestClassifyCommand_JSON(t *testing.T) {
	var out bytes.Buffer
	cmd := &ClassifyCommand{out: &out}

	require.NoError(t, cmd.Run([]string{"-items", writeCatalog(t, testCatalog), "-keywords", "", "-json"}))

	var entries []struct {
		Spec     string `json:"form_spec"`
		SlotType string `json:"slot_type"`
		Icon     string `json:"icon"`
		HasCount bool   `json:"has_count"`
		Count    int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "weapon", entries[0].SlotType)
	assert.True(t, entries[1].HasCount)
	assert.Equal(t, 4, entries[1].Count)
}

func TestClassifyCommand_RelevantTable(t *testing.T) {
	var out bytes.Buffer
	cmd := &ClassifyCommand{out: &out}

	require.NoError(t, cmd.Run([]string{"-items", writeCatalog(t, testCatalog), "-keywords", "", "-relevant"}))

	assert.Contains(t, out.String(), "Iron Sword")
	assert.NotContains(t, out.String(), "Mysterious Gem")
	assert.Contains(t, out.String(), "2 items")
}

func TestClassifyCommand_MissingCatalog(t *testing.T) {
	cmd := &ClassifyCommand{out: &bytes.Buffer{}}
	err := cmd.Run([]string{"-items", filepath.Join(t.TempDir(), "none.json"), "-keywords", ""})
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := &ValidateCommand{out: &out}

	require.NoError(t, cmd.Run([]string{"-items", writeCatalog(t, testCatalog), "-keywords", ""}))
	assert.Contains(t, out.String(), "Catalog OK: 3 items, 2 relevant")

	out.Reset()
	err := cmd.Run([]string{"-items", writeCatalog(t, `{"version": "1.0", "items": []}`), "-keywords", ""})
	assert.Error(t, err)
	assert.Contains(t, out.String(), "Catalog:")
}

func TestHealthCheckCommand(t *testing.T) {
	tests := []struct {
		name      string
		readyCode int
		wantErr   bool
	}{
		{"healthy", http.StatusOK, false},
		{"not ready", http.StatusServiceUnavailable, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/readyz" {
					w.WriteHeader(tt.readyCode)
					return
				}
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			var out bytes.Buffer
			err := (&HealthCheckCommand{out: &out}).Run([]string{"-url", srv.URL})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, out.String(), "/readyz failed")
			} else {
				assert.NoError(t, err)
				assert.Contains(t, out.String(), "/readyz passed")
			}
		})
	}
}

func TestHealthCheckCommand_SendsAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "secret")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(headerAPIKey) != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.NoError(t, (&HealthCheckCommand{out: &bytes.Buffer{}}).Run([]string{"-url", srv.URL}))
}

func TestDoctorCommand_ReportsFailures(t *testing.T) {
	t.Setenv("ITEMS_PATH", filepath.Join(t.TempDir(), "missing.json"))
	t.Setenv("KEYWORDS_PATH", "")

	var out bytes.Buffer
	err := (&DoctorCommand{out: &out}).Run([]string{"-url", "http://127.0.0.1:1"})
	assert.Error(t, err)
	assert.Contains(t, out.String(), "Configuration check failed")
	assert.Contains(t, out.String(), "Server check failed")
}

func TestRegistry(t *testing.T) {
	r := newRegistry()

	_, ok := r.Get("classify")
	assert.True(t, ok)
	_, ok = r.Get("migrate")
	assert.False(t, ok)

	names := make([]string, 0)
	for _, cmd := range r.List() {
		names = append(names, cmd.Name())
	}
	assert.Equal(t, []string{"classify", "doctor", "health-check", "validate"}, names)

	var help bytes.Buffer
	r.PrintHelp(&help)
	assert.Contains(t, help.String(), "health-check")
}
