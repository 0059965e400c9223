package playground

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chalis/internal/config"
	"chalis/internal/models"
	"chalis/internal/production"
	"chalis/internal/shop"
)

const testMenu = `{
  "menu": {
    "tea": [
      { "name": "阿薩姆紅茶", "prices": { "M": 35, "L": 45 } }
    ]
  }
}`

func newTestServer(t *testing.T) (*Server, *shop.Shop) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	menuPath := filepath.Join(dir, "menu.json")
	require.NoError(t, os.WriteFile(menuPath, []byte(testMenu), 0o644))

	cfg := config.Default()
	cfg.DataDir = dir
	cfg.MenuPath = menuPath

	sh, err := shop.New(&cfg)
	require.NoError(t, err)

	// The model is only reached over /ws, which these tests do not touch.
	return NewServer(nil, sh, 0.1), sh
}

func TestHandleMenu(t *testing.T) {
	s, _ := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testMenu, w.Body.String())
}

func TestHandleProductionEmpty(t *testing.T) {
	s, _ := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/production", nil)
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestHandleStats(t *testing.T) {
	s, sh := newTestServer(t)

	o := &models.Order{ID: "t1", Item: "阿薩姆紅茶", Size: models.SizeMedium, Quantity: 1, Ice: models.IceRegular, Sugar: models.SugarFull}
	pr := &models.PaymentRecord{OrderID: "t1", Method: models.MethodCash, Amount: 35, Status: models.PaymentCompleted}
	_, err := sh.Production.Transfer(o, pr)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stats production.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Pending)
}

func TestHandleHome(t *testing.T) {
	s, _ := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "茶理仕")
}
