package server

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	// PlayerHeader carries the caller's player id.
	PlayerHeader = "X-Player-ID"

	localPlayerID = "playerID"
)

// EnsurePlayerID stores the caller's player id in the request locals. The
// id comes from the X-Player-ID header or, for browsers opening a websocket,
// the playerId query parameter. Requests without one get 401.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(localPlayerID) != nil {
			return c.Next()
		}

		playerID := c.Get(PlayerHeader)
		if playerID == "" {
			playerID = c.Query("playerId")
		}
		if playerID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "player id is required",
			})
		}

		c.Locals(localPlayerID, playerID)
		return c.Next()
	}
}

// RequestLogger logs every request at debug level. Handler errors are
// rendered here, once, so the logged status is the one sent.
func RequestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				return herr
			}
		}
		logger.Debug("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"elapsed", time.Since(start),
		)
		return nil
	}
}

func playerID(c *fiber.Ctx) string {
	id, _ := c.Locals(localPlayerID).(string)
	return id
}
