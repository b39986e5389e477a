// Package errors provides sentinel errors and error types for the chess bot.
// It defines the recoverable move-rejection kinds and a structured error type
// that preserves context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rejected moves. None of them ends a game: the same
// player simply tries again.
var (
	// ErrInvalidMoveFormat indicates malformed move tokens.
	ErrInvalidMoveFormat = errors.New("invalid move")

	// ErrOutOfBounds indicates a coordinate whose file or rank is off the board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrNotYourPiece indicates the source square does not hold the mover's piece.
	ErrNotYourPiece = errors.New("not one of your pieces")

	// ErrNotYourTurn indicates a move submitted for the player not on move.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrIllegalMove indicates a move that violates the piece's movement rules.
	ErrIllegalMove = errors.New("piece can't move there")

	// ErrCannotCastle indicates a castling precondition was not met.
	ErrCannotCastle = errors.New("cannot castle")

	// ErrSelfCheck indicates the move would leave the mover's own king in check.
	ErrSelfCheck = errors.New("that would be check")

	// ErrGameOver indicates a move was submitted after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrNoTransition indicates an undo with no recorded move to reverse.
	ErrNoTransition = errors.New("no move to undo")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrNoGame indicates a game command with no game running.
	ErrNoGame = errors.New("no game in progress")

	// ErrGameInProgress indicates an attempt to start a second game.
	ErrGameInProgress = errors.New("game already in progress")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejected move with the context it was played in. It
// implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Player string // Colour of the mover (if known)
	From   string // Source token as typed
	To     string // Destination token as typed
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Player != "" {
		parts = append(parts, e.Player)
	}

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %q", strings.TrimSpace(e.From+" "+e.To)))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move rejected"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// playerMessages are the replies shown to a player for each rejection kind.
var playerMessages = []struct {
	err error
	msg string
}{
	{ErrOutOfBounds, "Number out of bounds"},
	{ErrInvalidMoveFormat, "Invalid move"},
	{ErrNotYourPiece, "Not one of your pieces"},
	{ErrNotYourTurn, "Not your turn"},
	{ErrIllegalMove, "Piece can't move there"},
	{ErrCannotCastle, "Cannot castle"},
	{ErrSelfCheck, "That would be check!"},
	{ErrGameOver, "The game is over"},
	{ErrNoGame, "No game in progress"},
	{ErrGameInProgress, "A game is already in progress"},
}

// Message returns the short player-facing text for err. Errors that are not
// one of the rejection kinds fall back to err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	if msg, ok := PlayerMessage(err); ok {
		return msg
	}
	return err.Error()
}

// PlayerMessage returns the player-facing text for err and whether err is
// one of the rejection kinds.
func PlayerMessage(err error) (string, bool) {
	for _, pm := range playerMessages {
		if errors.Is(err, pm.err) {
			return pm.msg, true
		}
	}
	return "", false
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
