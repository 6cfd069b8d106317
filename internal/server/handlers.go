package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/errors"
)

func (s *Server) createGame(c *fiber.Ctx) error {
	var req CreateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}

	toMove := chess.White
	if req.ToMove != "" {
		colour, ok := chess.ParseColour(req.ToMove)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "toMove must be white or black")
		}
		toMove = colour
	}

	t, err := s.Manager.Create(req.Position, toMove)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"gameId": t.ID,
		"state":  t.State(),
	})
}

func (s *Server) joinGame(c *fiber.Ctx) error {
	t, err := s.Manager.Get(c.Params("gameId"))
	if err != nil {
		return err
	}
	colour, err := t.Join(playerID(c))
	if err != nil {
		return err
	}
	s.logger.Info("player joined", "game", t.ID, "player", playerID(c), "colour", colour)
	return c.JSON(fiber.Map{
		"gameId": t.ID,
		"colour": strings.ToLower(colour.String()),
	})
}

func (s *Server) getGame(c *fiber.Ctx) error {
	t, err := s.Manager.Get(c.Params("gameId"))
	if err != nil {
		return err
	}
	return c.JSON(t.State())
}

func (s *Server) legalMoves(c *fiber.Ctx) error {
	t, err := s.Manager.Get(c.Params("gameId"))
	if err != nil {
		return err
	}
	from := strings.ToUpper(c.Query("from"))
	if from == "" {
		return fiber.NewError(fiber.StatusBadRequest, "from is required")
	}
	destinations, err := t.Destinations(from)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"from":         from,
		"destinations": destinations,
	})
}

func (s *Server) playMove(c *fiber.Ctx) error {
	t, err := s.Manager.Get(c.Params("gameId"))
	if err != nil {
		return err
	}
	var req MovePayload
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	state, err := t.Move(playerID(c), strings.ToUpper(req.From), strings.ToUpper(req.To))
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// deleteGame ends a game for everyone. Only a seated player may do it.
func (s *Server) deleteGame(c *fiber.Ctx) error {
	t, err := s.Manager.Get(c.Params("gameId"))
	if err != nil {
		return err
	}
	if !t.Seated(playerID(c)) {
		return errors.Wrapf(errors.ErrNotSeated, "%s", playerID(c))
	}
	s.Manager.Remove(t.ID)
	s.logger.Info("game removed", "game", t.ID, "player", playerID(c))
	return c.SendStatus(fiber.StatusNoContent)
}
