package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gamecatalog/backend/internal/catalog"
	"gamecatalog/backend/internal/database"
	"gamecatalog/backend/internal/models"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type backend struct {
	name     string
	newStore func(t *testing.T) catalog.Store
}

var backends = []backend{
	{name: "memory", newStore: func(t *testing.T) catalog.Store {
		return catalog.NewMemoryStore(catalog.SeedGames()...)
	}},
	{name: "sqlite", newStore: func(t *testing.T) catalog.Store {
		t.Helper()
		db, err := database.Open(database.DefaultDSN, nil)
		if err != nil {
			t.Fatalf("open sqlite: %v", err)
		}
		t.Cleanup(func() { _ = database.Close(db) })
		s := catalog.NewGormStore(db)
		if err := catalog.Seed(context.Background(), s); err != nil {
			t.Fatalf("seed: %v", err)
		}
		return s
	}},
}

func newSeededRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return NewRouter(Deps{Store: catalog.NewMemoryStore(catalog.SeedGames()...)})
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func assertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rr.Code, rr.Body.String())
	}
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
}

func listGames(t *testing.T, h http.Handler) []models.Game {
	t.Helper()
	rr := serve(h, http.MethodGet, "/games", "")
	assertStatus(t, rr, http.StatusOK)
	var games []models.Game
	decodeJSON(t, rr, &games)
	return games
}

func ginTestContext(w http.ResponseWriter) (*gin.Context, *gin.Engine) {
	c, r := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/events", nil)
	return c, r
}
