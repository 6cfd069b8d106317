package server

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/websocket/v2"
)

// handleConnection serves one websocket client: it sends the current
// state, then plays every move message until the client disconnects.
func (s *Server) handleConnection(conn *websocket.Conn) {
	gameID := conn.Params("gameId")
	player, _ := conn.Locals(localPlayerID).(string)

	t, err := s.Manager.Get(gameID)
	if err != nil {
		conn.WriteJSON(Message{Type: MessageTypeError, Payload: mustJSON(errorPayload(err))})
		conn.Close()
		return
	}
	if err := t.attach(conn); err != nil {
		s.logger.Error("websocket attach failed", "game", gameID, "error", err)
		t.detach(conn)
		conn.Close()
		return
	}
	defer t.detach(conn)
	s.logger.Debug("websocket connected", "game", gameID, "player", player)

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			s.logger.Debug("websocket closed", "game", gameID, "player", player, "error", err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		if err := s.handleMessage(t, player, data); err != nil {
			s.logger.Debug("websocket message rejected", "game", gameID, "player", player, "error", err)
			if werr := t.send(conn, Message{Type: MessageTypeError, Payload: mustJSON(errorPayload(err))}); werr != nil {
				return
			}
		}
	}
}

// handleMessage applies one client message. The resulting state reaches
// every connection through the table broadcast.
func (s *Server) handleMessage(t *Table, player string, data []byte) error {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("malformed message: %w", err)
	}

	switch msg.Type {
	case MessageTypeMove:
		var move MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return fmt.Errorf("malformed move: %w", err)
		}
		_, err := t.Move(player, strings.ToUpper(move.From), strings.ToUpper(move.To))
		return err
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
