package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gamecatalog/backend/internal/catalog"
	"gamecatalog/backend/internal/hub"
)

func waitForSubscribers(t *testing.T, h *hub.Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.Count() != n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d subscribers, have %d", n, h.Count())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestStreamEventsDeliversMutations(t *testing.T) {
	events := hub.NewHub()
	r := NewRouter(Deps{Store: catalog.NewMemoryStore(catalog.SeedGames()...), Hub: events})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	stream := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.ServeHTTP(stream, req)
	}()
	waitForSubscribers(t, events, 1)

	assertStatus(t, serve(r, http.MethodPost, "/games", `{"id":6,"title":"New Game","genre":"Strategy","max_players":2,"rating":4.0}`), http.StatusCreated)
	assertStatus(t, serve(r, http.MethodPut, "/games/6", `{"id":6,"title":"Newer Game","genre":"Strategy","max_players":2,"rating":4.1}`), http.StatusOK)
	assertStatus(t, serve(r, http.MethodDelete, "/games/6", ""), http.StatusNoContent)
	assertStatus(t, serve(r, http.MethodDelete, "/games/6", ""), http.StatusNotFound)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("stream did not stop after client left")
	}

	if stream.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", stream.Code)
	}
	if ct := stream.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("unexpected content type %q", ct)
	}

	body := stream.Body.String()
	for _, want := range []string{
		"event:game.created",
		`"title":"New Game"`,
		"event:game.updated",
		`"title":"Newer Game"`,
		"event:game.deleted",
		`"payload":{"id":6}`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in stream:\n%s", want, body)
		}
	}
	if strings.Count(body, "event:game.deleted") != 1 {
		t.Fatalf("expected a single delete event, got:\n%s", body)
	}
	if events.Count() != 0 {
		t.Fatalf("expected subscriber to be removed, have %d", events.Count())
	}
}

func TestWriteEventFallsBackToMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	c, _ := ginTestContext(rr)

	writeEvent(c, []byte("not json"))

	if !strings.Contains(rr.Body.String(), "event:message") {
		t.Fatalf("expected generic event name, got %q", rr.Body.String())
	}
}
