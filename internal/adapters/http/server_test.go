package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/gsh/pkg/builtin"
	"github.com/aretw0/gsh/pkg/graph"
	"github.com/aretw0/gsh/pkg/registry"
)

func newTestHandler() http.Handler {
	reg := registry.New()
	builtin.Register(reg, graph.New(), nil)
	return NewHandler(reg, nil)
}

func TestGetHealth(t *testing.T) {
	handler := newTestHandler()

	req, _ := http.NewRequest("GET", "/healthz", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "ok", resp["status"])
}

func TestListCommands(t *testing.T) {
	handler := newTestHandler()

	req, _ := http.NewRequest("GET", "/commands", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var infos []CommandInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &infos))
	assert.Len(t, infos, 6)
	assert.Equal(t, "help", infos[0].Name)
	assert.Equal(t, "other", infos[0].ReturnType)
}

func TestGetCommand(t *testing.T) {
	handler := newTestHandler()

	req, _ := http.NewRequest("GET", "/commands/list-arcs", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var info CommandInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.Equal(t, "list-arcs", info.Name)
	assert.Equal(t, "arc-list", info.ReturnType)
}

func TestGetCommandNotFound(t *testing.T) {
	handler := newTestHandler()

	req, _ := http.NewRequest("GET", "/commands/bogus", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
