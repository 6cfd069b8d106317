package server

import (
	"log/slog"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/errors"
	"github.com/lgbarn/termchess-go/internal/game"
)

// Table is one hosted game: the session, the seated players and the live
// connections. mu serialises every engine call and every websocket write.
type Table struct {
	ID string

	mu      sync.Mutex
	session *game.Session
	seats   map[chess.Colour]string
	conns   map[*websocket.Conn]struct{}
}

// Manager owns all hosted games.
type Manager struct {
	mu     sync.RWMutex
	tables map[string]*Table
	logger *slog.Logger
}

// NewManager creates an empty manager.
func NewManager(logger *slog.Logger) *Manager {
	return &Manager{
		tables: make(map[string]*Table),
		logger: logger,
	}
}

// Create starts a game from position (initial when empty) with toMove first.
func (m *Manager) Create(position string, toMove chess.Colour) (*Table, error) {
	session, err := game.NewSession(position, game.WithToMove(toMove), game.WithLogger(m.logger))
	if err != nil {
		return nil, err
	}

	t := &Table{
		ID:      uuid.New().String(),
		session: session,
		seats:   make(map[chess.Colour]string),
		conns:   make(map[*websocket.Conn]struct{}),
	}

	m.mu.Lock()
	m.tables[t.ID] = t
	m.mu.Unlock()

	m.logger.Info("game created", "game", t.ID, "position", session.Position(), "toMove", toMove)
	return t, nil
}

// Get returns the table for id.
func (m *Manager) Get(id string) (*Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tables[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "%s", id)
	}
	return t, nil
}

// Remove forgets a game and closes its connections.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	t, ok := m.tables[id]
	delete(m.tables, id)
	m.mu.Unlock()

	if !ok {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for conn := range t.conns {
		conn.Close()
		delete(t.conns, conn)
	}
}

// Len returns the number of hosted games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables)
}

// Join seats player at the first free colour, White before Black. A player
// already seated gets their colour back.
func (t *Table) Join(player string) (chess.Colour, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if t.seats[colour] == player {
			return colour, nil
		}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if _, taken := t.seats[colour]; !taken {
			t.seats[colour] = player
			return colour, nil
		}
	}
	return chess.White, errors.Wrapf(errors.ErrGameFull, "%s", t.ID)
}

// Seated reports whether player holds either colour.
func (t *Table) Seated(player string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return player != "" && (t.seats[chess.White] == player || t.seats[chess.Black] == player)
}

// State returns a snapshot of the session.
func (t *Table) State() game.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session.Snapshot()
}

// Destinations returns the legal targets for the piece on from.
func (t *Table) Destinations(from string) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session.LegalDestinations(from)
}

// Move plays from-to for player and broadcasts the new state to every
// connection. player must hold the seat of the side to move.
func (t *Table) Move(player, from, to string) (game.State, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session.Outcome().IsOver() {
		return game.State{}, errors.ErrGameOver
	}
	if t.seats[t.session.ToMove()] != player || player == "" {
		return game.State{}, errors.Wrapf(errors.ErrNotYourTurn, "%s", player)
	}
	if _, err := t.session.Play(from, to); err != nil {
		return game.State{}, err
	}

	state := t.session.Snapshot()
	t.broadcast(Message{Type: MessageTypeGameState, Payload: mustJSON(state)})
	return state, nil
}

// attach registers conn and sends it the current state.
func (t *Table) attach(conn *websocket.Conn) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.conns[conn] = struct{}{}
	return conn.WriteJSON(Message{Type: MessageTypeGameState, Payload: mustJSON(t.session.Snapshot())})
}

func (t *Table) detach(conn *websocket.Conn) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.conns, conn)
}

// send writes one message to conn under the table lock.
func (t *Table) send(conn *websocket.Conn, msg Message) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return conn.WriteJSON(msg)
}

// broadcast must be called with t.mu held. Connections that fail are dropped.
func (t *Table) broadcast(msg Message) {
	for conn := range t.conns {
		if err := conn.WriteJSON(msg); err != nil {
			conn.Close()
			delete(t.conns, conn)
		}
	}
}
