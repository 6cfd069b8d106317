package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/errors"
	"github.com/lgbarn/termchess-go/internal/game"
	"github.com/lgbarn/termchess-go/internal/testutil"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(config.NewServerConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// do sends a request through app.Test and decodes a JSON body into out.
func do(t *testing.T, s *Server, method, path, player, body string, out any) int {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if player != "" {
		req.Header.Set(PlayerHeader, player)
	}

	resp, err := s.App.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		data, err := io.ReadAll(resp.Body)
		testutil.AssertNoError(t, err)
		if err := json.Unmarshal(data, out); err != nil {
			t.Fatalf("%s %s: decoding %q: %v", method, path, data, err)
		}
	}
	return resp.StatusCode
}

type createResponse struct {
	GameID string     `json:"gameId"`
	State  game.State `json:"state"`
}

func createGame(t *testing.T, s *Server, body string) string {
	t.Helper()
	var created createResponse
	if status := do(t, s, http.MethodPost, "/api/games", "", body, &created); status != http.StatusCreated {
		t.Fatalf("create status = %d; want 201", status)
	}
	return created.GameID
}

func TestCreateGame(t *testing.T) {
	s := newTestServer(t)

	var created createResponse
	status := do(t, s, http.MethodPost, "/api/games", "", "", &created)

	testutil.AssertEqual(t, status, http.StatusCreated)
	testutil.AssertTrue(t, created.GameID != "", "game id should be set")
	testutil.AssertEqual(t, created.State.ToMove, "white")
	testutil.AssertEqual(t, created.State.Outcome, "in progress")
	testutil.AssertEqual(t, s.Manager.Len(), 1)
}

func TestCreateGame_Options(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantToMove string
	}{
		{"custom position black first", `{"position":"4k3/8/8/8/8/8/8/4K2R","toMove":"black"}`, http.StatusCreated, "black"},
		{"bad position", `{"position":"4k3/8/8/8/8/8/8/4K2X"}`, http.StatusBadRequest, ""},
		{"missing king", `{"position":"8/8/8/8/8/8/8/4K3"}`, http.StatusBadRequest, ""},
		{"waiting side in check", `{"position":"k7/8/8/8/8/8/8/R6K"}`, http.StatusBadRequest, ""},
		{"bad colour", `{"toMove":"green"}`, http.StatusBadRequest, ""},
		{"malformed body", `{"position":`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			var created createResponse
			status := do(t, s, http.MethodPost, "/api/games", "", tt.body, &created)
			testutil.AssertEqual(t, status, tt.wantStatus)
			if tt.wantStatus == http.StatusCreated {
				testutil.AssertEqual(t, created.State.ToMove, tt.wantToMove)
			}
		})
	}
}

func TestJoinGame(t *testing.T) {
	s := newTestServer(t)
	id := createGame(t, s, "")
	path := "/api/games/" + id + "/join"

	tests := []struct {
		player     string
		wantStatus int
		wantColour string
	}{
		{"alice", http.StatusOK, "white"},
		{"bob", http.StatusOK, "black"},
		{"alice", http.StatusOK, "white"},
		{"carol", http.StatusConflict, ""},
		{"", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		var resp struct {
			Colour string `json:"colour"`
		}
		status := do(t, s, http.MethodPost, path, tt.player, "", &resp)
		if status != tt.wantStatus || resp.Colour != tt.wantColour {
			t.Errorf("join as %q = (%d, %q); want (%d, %q)", tt.player, status, resp.Colour, tt.wantStatus, tt.wantColour)
		}
	}
}

func TestGetGame_NotFound(t *testing.T) {
	s := newTestServer(t)
	var resp ErrorPayload
	status := do(t, s, http.MethodGet, "/api/games/missing", "", "", &resp)
	testutil.AssertEqual(t, status, http.StatusNotFound)
	testutil.AssertContains(t, resp.Error, "game not found")
}

func TestLegalMoves(t *testing.T) {
	s := newTestServer(t)
	id := createGame(t, s, "")

	var resp struct {
		From         string   `json:"from"`
		Destinations []string `json:"destinations"`
	}
	status := do(t, s, http.MethodGet, "/api/games/"+id+"/moves?from=e2", "", "", &resp)
	testutil.AssertEqual(t, status, http.StatusOK)
	testutil.AssertEqual(t, resp.From, "E2")
	testutil.AssertEqual(t, resp.Destinations, []string{"E4", "E3"})

	status = do(t, s, http.MethodGet, "/api/games/"+id+"/moves?from=E7", "", "", &resp)
	testutil.AssertEqual(t, status, http.StatusOK)
	testutil.AssertEqual(t, resp.Destinations, []string{})

	testutil.AssertEqual(t, do(t, s, http.MethodGet, "/api/games/"+id+"/moves", "", "", nil), http.StatusBadRequest)
	testutil.AssertEqual(t, do(t, s, http.MethodGet, "/api/games/"+id+"/moves?from=Z9", "", "", nil), http.StatusUnprocessableEntity)
}

func TestPlayMove(t *testing.T) {
	s := newTestServer(t)
	id := createGame(t, s, "")
	path := "/api/games/" + id + "/moves"
	do(t, s, http.MethodPost, "/api/games/"+id+"/join", "alice", "", nil)
	do(t, s, http.MethodPost, "/api/games/"+id+"/join", "bob", "", nil)

	var state game.State
	status := do(t, s, http.MethodPost, path, "alice", `{"from":"e2","to":"e4"}`, &state)
	testutil.AssertEqual(t, status, http.StatusOK)
	testutil.AssertEqual(t, state.ToMove, "black")
	testutil.AssertEqual(t, len(state.History), 1)

	tests := []struct {
		name       string
		player     string
		body       string
		wantStatus int
		wantReason string
	}{
		{"out of turn", "alice", `{"from":"D2","to":"D4"}`, http.StatusForbidden, ""},
		{"spectator", "carol", `{"from":"E7","to":"E5"}`, http.StatusForbidden, ""},
		{"no player id", "", `{"from":"E7","to":"E5"}`, http.StatusUnauthorized, ""},
		{"illegal", "bob", `{"from":"E7","to":"E4"}`, http.StatusUnprocessableEntity, "piece cannot move there"},
		{"empty origin", "bob", `{"from":"E5","to":"E4"}`, http.StatusUnprocessableEntity, "no piece on origin square"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp ErrorPayload
			status := do(t, s, http.MethodPost, path, tt.player, tt.body, &resp)
			testutil.AssertEqual(t, status, tt.wantStatus)
			testutil.AssertEqual(t, resp.Reason, tt.wantReason)
		})
	}

	// Rejections leave the game untouched
	do(t, s, http.MethodGet, "/api/games/"+id, "", "", &state)
	testutil.AssertEqual(t, len(state.History), 1)
}

func TestPlayMove_GameOver(t *testing.T) {
	s := newTestServer(t)
	id := createGame(t, s, "")
	path := "/api/games/" + id + "/moves"
	do(t, s, http.MethodPost, "/api/games/"+id+"/join", "alice", "", nil)
	do(t, s, http.MethodPost, "/api/games/"+id+"/join", "bob", "", nil)

	var state game.State
	for i, mv := range []string{
		`{"from":"F2","to":"F3"}`, `{"from":"E7","to":"E5"}`,
		`{"from":"G2","to":"G4"}`, `{"from":"D8","to":"H4"}`,
	} {
		player := "alice"
		if i%2 == 1 {
			player = "bob"
		}
		if status := do(t, s, http.MethodPost, path, player, mv, &state); status != http.StatusOK {
			t.Fatalf("move %d status = %d", i, status)
		}
	}
	testutil.AssertEqual(t, state.Outcome, "checkmate")
	testutil.AssertEqual(t, state.Result, "0-1")

	status := do(t, s, http.MethodPost, path, "alice", `{"from":"A2","to":"A3"}`, nil)
	testutil.AssertEqual(t, status, http.StatusConflict)
}

func TestWebSocket_RequiresUpgrade(t *testing.T) {
	s := newTestServer(t)
	id := createGame(t, s, "")

	testutil.AssertEqual(t, do(t, s, http.MethodGet, "/ws/games/"+id, "alice", "", nil), http.StatusUpgradeRequired)
	testutil.AssertEqual(t, do(t, s, http.MethodGet, "/ws/games/"+id, "", "", nil), http.StatusUnauthorized)
}

func TestCORS_Preflight(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/games", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := s.App.Test(req, -1)
	testutil.AssertNoError(t, err)
	defer resp.Body.Close()

	testutil.AssertEqual(t, resp.StatusCode, http.StatusNoContent)
	testutil.AssertEqual(t, resp.Header.Get("Access-Control-Allow-Origin"), "*")
}

func TestDeleteGame(t *testing.T) {
	s := newTestServer(t)
	id := createGame(t, s, "")
	do(t, s, http.MethodPost, "/api/games/"+id+"/join", "alice", "", nil)

	steps := []struct {
		name   string
		path   string
		player string
		want   int
	}{
		{"no player id", "/api/games/" + id, "", http.StatusUnauthorized},
		{"unseated player", "/api/games/" + id, "mallory", http.StatusForbidden},
		{"unknown game", "/api/games/nope", "alice", http.StatusNotFound},
		{"seated player", "/api/games/" + id, "alice", http.StatusNoContent},
		{"already removed", "/api/games/" + id, "alice", http.StatusNotFound},
	}
	for _, step := range steps {
		got := do(t, s, http.MethodDelete, step.path, step.player, "", nil)
		testutil.AssertEqual(t, got, step.want, step.name)
	}

	testutil.AssertEqual(t, s.Manager.Len(), 0)
	testutil.AssertEqual(t, do(t, s, http.MethodGet, "/api/games/"+id, "", "", nil), http.StatusNotFound)
}

func TestRequestLogger_RendersErrorOnce(t *testing.T) {
	calls := 0
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			calls++
			return errorHandler(c, err)
		},
	})
	var logs strings.Builder
	app.Use(RequestLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	app.Get("/missing", func(c *fiber.Ctx) error {
		return errors.Wrapf(errors.ErrGameNotFound, "%s", "nope")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	testutil.AssertNoError(t, err)
	defer resp.Body.Close()

	var payload ErrorPayload
	testutil.AssertNoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	testutil.AssertEqual(t, resp.StatusCode, http.StatusNotFound)
	testutil.AssertEqual(t, payload.Error, "nope: game not found")
	testutil.AssertEqual(t, calls, 1)
	testutil.AssertContains(t, logs.String(), "status=404")
}
