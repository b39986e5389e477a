package engine

import (
	"fmt"

	"github.com/joeggg/discord-bot-2/internal/chess"
	"github.com/joeggg/discord-bot-2/internal/errors"
)

// CastleToken is the destination token that requests castling with the
// rook on the source square.
const CastleToken = "castle"

// Status is the outcome class of an accepted move.
type Status int

const (
	Continue Status = iota // The game goes on with the other player
	GameOver               // Checkmate or stalemate ended the game
)

// String returns the string representation of a status.
func (s Status) String() string {
	if s == GameOver {
		return "game over"
	}
	return "continue"
}

// Result is what an accepted move produces: the board to render, the
// notification consumed from the board, and either the next player or the
// winner. Winner is NoColour for a drawn game.
type Result struct {
	Status       Status
	Next         chess.Colour
	Winner       chess.Colour
	Notification string
	Board        chess.Snapshot
}

// Game is the turn controller of one two-player game. It owns its board;
// separate games share nothing.
type Game struct {
	board  *chess.Board
	toMove chess.Colour
	over   bool
	winner chess.Colour
	plies  int
}

// NewGame begins a game in the initial position with White to move.
func NewGame() *Game {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return &Game{board: board, toMove: chess.White}
}

// NewGameFromFEN begins a game from an arbitrary position.
func NewGameFromFEN(fen string) (*Game, error) {
	board, toMove, err := NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{board: board, toMove: toMove}, nil
}

// Board returns the game's board.
func (g *Game) Board() *chess.Board {
	return g.board
}

// ToMove returns the colour whose turn it is.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.over
}

// Winner returns the winning colour of a finished game, NoColour otherwise.
func (g *Game) Winner() chess.Colour {
	return g.winner
}

// Plies returns the number of accepted moves.
func (g *Game) Plies() int {
	return g.plies
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return BoardToFEN(g.board, g.toMove)
}

// Snapshot returns the renderable board, consuming any pending notification.
func (g *Game) Snapshot() chess.Snapshot {
	s := g.board.Snapshot()
	s.Notification = g.board.ConsumeNotification()
	s.ToMove = g.toMove
	return s
}

// Play runs one turn for player: from is a source coordinate and to is a
// destination coordinate or CastleToken. A rejected move returns a
// *errors.MoveError wrapping the rejection kind; the board is left as it
// was and the same player moves again.
func (g *Game) Play(player chess.Colour, from, to string) (*Result, error) {
	if err := g.play(player, from, to); err != nil {
		return nil, &errors.MoveError{Err: err, Player: player.String(), From: from, To: to}
	}

	snapshot := g.Snapshot()
	result := &Result{
		Status:       Continue,
		Next:         g.toMove,
		Notification: snapshot.Notification,
		Board:        snapshot,
	}
	if g.over {
		result.Status = GameOver
		result.Next = chess.NoColour
		result.Winner = g.winner
	}
	return result, nil
}

func (g *Game) play(player chess.Colour, from, to string) error {
	if g.over {
		return errors.ErrGameOver
	}
	if player != g.toMove {
		return errors.ErrNotYourTurn
	}

	src, err := checkMove(from, to)
	if err != nil {
		return err
	}

	piece := g.board.Get(src)
	if piece.Colour != player {
		return errors.ErrNotYourPiece
	}

	if to == CastleToken {
		if err := Castle(g.board, piece); err != nil {
			return err
		}
	} else {
		dst, err := chess.ParseSquare(to)
		if err != nil {
			return fmt.Errorf("%w: %w", errors.ErrInvalidMoveFormat, err)
		}
		if !SetCoords(g.board, piece, dst) {
			return errors.ErrIllegalMove
		}
	}

	// Make sure that move didn't put our own king in check
	if IsInCheck(g.board, player) {
		if err := g.board.UndoLastMove(); err != nil {
			return err
		}
		g.board.ConsumeNotification()
		return errors.ErrSelfCheck
	}

	PromotePawns(g.board, player)
	piece.HasMoved = true
	g.plies++

	g.handleChecks(player)
	return nil
}

// checkMove validates the shape of the two tokens and resolves the source.
func checkMove(from, to string) (chess.Square, error) {
	if len(from) != 2 || (len(to) != 2 && to != CastleToken) {
		return chess.Square{}, errors.ErrInvalidMoveFormat
	}
	src, err := chess.ParseSquare(from)
	if err != nil {
		return chess.Square{}, fmt.Errorf("%w: %w", errors.ErrInvalidMoveFormat, err)
	}
	return src, nil
}

// handleChecks updates check, checkmate and stalemate state after player's
// move and hands the turn over when the game continues.
func (g *Game) handleChecks(player chess.Colour) {
	enemy := player.Opposite()

	checking := CheckingPiece(g.board, enemy)
	g.board.SetChecking(checking)

	switch {
	case checking != nil && IsCheckmate(g.board, enemy):
		g.board.Notify(fmt.Sprintf("Checkmate %s!\n%s wins!", enemy, player))
		g.over = true
		g.winner = player
	case checking != nil:
		g.board.Notify(fmt.Sprintf("%s in check!", enemy))
	case !HasLegalMoves(g.board, enemy):
		g.board.Notify("Stalemate! It's a draw")
		g.over = true
	}

	if !g.over {
		g.toMove = enemy
	}
}
