// Package server hosts games over HTTP and WebSocket.
package server

import (
	stderrors "errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/errors"
)

// Server bundles the fiber app with the games it hosts.
type Server struct {
	App     *fiber.App
	Manager *Manager
	logger  *slog.Logger
}

// New builds the app and registers every route.
func New(cfg *config.ServerConfig, logger *slog.Logger) *Server {
	s := &Server{
		App: fiber.New(fiber.Config{
			AppName:               "termchess",
			DisableStartupMessage: true,
			ErrorHandler:          errorHandler,
		}),
		Manager: NewManager(logger),
		logger:  logger,
	}

	s.App.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + PlayerHeader,
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	s.App.Use(RequestLogger(logger))

	s.App.Use("/ws", EnsurePlayerID(), upgradeOnly)
	s.App.Get("/ws/games/:gameId", websocket.New(s.handleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         splitOrigins(cfg.AllowedOrigins),
	}))

	api := s.App.Group("/api")
	api.Post("/games", s.createGame)
	api.Get("/games/:gameId", s.getGame)
	api.Get("/games/:gameId/moves", s.legalMoves)
	api.Post("/games/:gameId/join", EnsurePlayerID(), s.joinGame)
	api.Post("/games/:gameId/moves", EnsurePlayerID(), s.playMove)
	api.Delete("/games/:gameId", EnsurePlayerID(), s.deleteGame)

	return s
}

// Listen serves on addr until the app is shut down.
func (s *Server) Listen(addr string) error {
	s.logger.Info("listening", "addr", addr)
	return s.App.Listen(addr)
}

// Shutdown stops the listener and waits for open requests.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}

func upgradeOnly(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var moveErr *errors.MoveError
	var fiberErr *fiber.Error
	switch {
	case stderrors.As(err, &fiberErr):
		return fiberErr.Code
	case stderrors.As(err, &moveErr):
		return fiber.StatusUnprocessableEntity
	case stderrors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrNotYourTurn), stderrors.Is(err, errors.ErrNotSeated):
		return fiber.StatusForbidden
	case stderrors.Is(err, errors.ErrGameOver), stderrors.Is(err, errors.ErrGameFull):
		return fiber.StatusConflict
	case stderrors.Is(err, errors.ErrInvalidPosition), stderrors.Is(err, errors.ErrKingNotFound):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func errorPayload(err error) ErrorPayload {
	p := ErrorPayload{Error: err.Error()}
	var moveErr *errors.MoveError
	if stderrors.As(err, &moveErr) {
		p.Reason = moveErr.Reason.String()
	}
	return p
}

func errorHandler(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(errorPayload(err))
}
