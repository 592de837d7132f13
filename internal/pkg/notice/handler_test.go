package notice

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRoutes(t *testing.T) {
	board := NewBoard(5)
	first := board.Error("Could not send message")
	board.Info("Reconnected")

	e := echo.New()
	RegisterRoutes(e, board)

	rec := serve(e, http.MethodGet, "/notices")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []Notice `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)

	assert.Equal(t, http.StatusNoContent, serve(e, http.MethodDelete, "/notices/"+first.ID).Code)
	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodDelete, "/notices/"+first.ID).Code)

	rec = serve(e, http.MethodGet, "/notices?drain=true")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Empty(t, board.List())
}
