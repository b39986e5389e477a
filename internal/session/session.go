// Package session runs the single chess game a bot process hosts and turns
// every accepted command into a chat reply.
package session

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/joeggg/discord-bot-2/internal/chess"
	"github.com/joeggg/discord-bot-2/internal/engine"
	"github.com/joeggg/discord-bot-2/internal/errors"
	"github.com/joeggg/discord-bot-2/internal/render"
)

// CancelMessage is the reply to a cancelled game.
const CancelMessage = "Game cancelled"

// Reply is one bot message: a text body and an optional image attachment.
type Reply struct {
	Text      string
	Image     []byte
	ImageName string
}

// Manager owns the one game in progress. It is safe for concurrent use;
// commands are applied one at a time.
type Manager struct {
	mu       sync.Mutex
	renderer render.Renderer
	logger   *zap.Logger

	game   *engine.Game
	gameID string
}

// NewManager returns a Manager with no game in progress. A nil logger
// discards all log output.
func NewManager(renderer render.Renderer, logger *zap.Logger) (*Manager, error) {
	if renderer == nil {
		return nil, fmt.Errorf("board renderer is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{renderer: renderer, logger: logger}, nil
}

// Active reports whether a game is in progress.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.game != nil
}

// GameID returns the ID of the game in progress, or "" when there is none.
func (m *Manager) GameID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gameID
}

// Start begins a game from the initial position.
func (m *Manager) Start() (*Reply, error) {
	return m.start(engine.NewGame())
}

// StartFromFEN begins a game from the position in fen.
func (m *Manager) StartFromFEN(fen string) (*Reply, error) {
	game, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return m.start(game)
}

func (m *Manager) start(game *engine.Game) (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.game != nil {
		return nil, errors.ErrGameInProgress
	}
	m.game = game
	m.gameID = uuid.NewString()
	m.logger.Info("chess game started",
		zap.String("game_id", m.gameID),
		zap.String("fen", game.FEN()))

	return m.reply(game.Snapshot(), statusLine(game.ToMove()))
}

// Move plays from-to for the player whose turn it is. to is a square or
// engine.CastleToken. A rejected move leaves the game unchanged and returns
// the *errors.MoveError from the engine.
func (m *Manager) Move(from, to string) (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.game == nil {
		return nil, errors.ErrNoGame
	}

	player := m.game.ToMove()
	result, err := m.game.Play(player, from, to)
	if err != nil {
		m.logger.Warn("chess move rejected",
			zap.Error(err),
			zap.String("game_id", m.gameID),
			zap.String("player", player.String()),
			zap.String("from", from),
			zap.String("to", to))
		return nil, err
	}

	m.logger.Debug("chess move played",
		zap.String("game_id", m.gameID),
		zap.String("player", player.String()),
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("ply", m.game.Plies()))

	status := statusLine(result.Next)
	if result.Status == engine.GameOver {
		status = resultLine(result.Winner)
		m.logger.Info("chess game over",
			zap.String("game_id", m.gameID),
			zap.String("winner", result.Winner.String()),
			zap.Int("ply", m.game.Plies()))
		m.game = nil
		m.gameID = ""
	}
	return m.reply(result.Board, status)
}

// Cancel abandons the game in progress.
func (m *Manager) Cancel() (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.game == nil {
		return nil, errors.ErrNoGame
	}
	m.logger.Info("chess game cancelled",
		zap.String("game_id", m.gameID),
		zap.Int("ply", m.game.Plies()))
	m.game = nil
	m.gameID = ""
	return &Reply{Text: CancelMessage}, nil
}

// Hint lists the squares the piece on coord can legally move to.
func (m *Manager) Hint(coord string) (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.game == nil {
		return nil, errors.ErrNoGame
	}
	sq, err := chess.ParseSquare(coord)
	if err != nil {
		return nil, err
	}
	piece := m.game.Board().Get(sq)
	if piece.Kind == chess.Empty {
		return &Reply{Text: fmt.Sprintf("No piece on %s", sq)}, nil
	}

	moves := engine.LegalMoves(m.game.Board(), piece)
	if len(moves) == 0 {
		return &Reply{Text: fmt.Sprintf("%s %s on %s has no legal moves", piece.Colour, piece.Kind, sq)}, nil
	}
	names := make([]string, len(moves))
	for i, dst := range moves {
		names[i] = dst.String()
	}
	return &Reply{Text: fmt.Sprintf("%s %s on %s can move to %s",
		piece.Colour, piece.Kind, sq, strings.Join(names, ", "))}, nil
}

// FEN returns the position of the game in progress.
func (m *Manager) FEN() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.game == nil {
		return "", errors.ErrNoGame
	}
	return m.game.FEN(), nil
}

// reply builds the message for a board: notification, text grid in a code
// block, then the status line. Image formats also attach the board.
func (m *Manager) reply(s chess.Snapshot, status string) (*Reply, error) {
	var sb strings.Builder
	if s.Notification != "" {
		sb.WriteString(s.Notification)
		sb.WriteByte('\n')
	}
	sb.WriteString("```\n")
	sb.WriteString(render.Grid(s))
	sb.WriteString("```\n")
	sb.WriteString(status)

	r := &Reply{Text: sb.String()}
	if _, ok := m.renderer.(render.Text); ok {
		return r, nil
	}

	var buf bytes.Buffer
	if err := m.renderer.Render(&buf, s); err != nil {
		m.logger.Warn("failed to render chess board image",
			zap.Error(err),
			zap.String("game_id", m.gameID))
		return r, nil
	}
	r.Image = buf.Bytes()
	r.ImageName = "board." + m.renderer.Ext()
	return r, nil
}

func statusLine(next chess.Colour) string {
	return fmt.Sprintf("%s to move", next)
}

func resultLine(winner chess.Colour) string {
	if winner == chess.NoColour {
		return "Game over: draw"
	}
	return fmt.Sprintf("Game over: %s wins", winner)
}
