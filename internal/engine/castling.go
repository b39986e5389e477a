package engine

import (
	"fmt"

	"github.com/joeggg/discord-bot-2/internal/chess"
	"github.com/joeggg/discord-bot-2/internal/errors"
)

// Castle castles with rook: the rook and the king on its row must both be
// unmoved and every square between them empty. On success the pieces are
// relocated through Board.ApplyCastle and both are marked as moved. On
// failure the board is untouched and the error wraps ErrCannotCastle.
func Castle(board *chess.Board, rook *chess.Piece) error {
	if rook.Kind != chess.Rook {
		return fmt.Errorf("piece not a rook: %w", errors.ErrCannotCastle)
	}
	if rook.HasMoved {
		return fmt.Errorf("rook has moved: %w", errors.ErrCannotCastle)
	}
	if rook.Col != 0 && rook.Col != chess.BoardSize-1 {
		return fmt.Errorf("rook not in a corner: %w", errors.ErrCannotCastle)
	}

	kingSq := chess.Square{Row: rook.Row, Col: chess.KingCol}
	king := board.Get(kingSq)
	if king.Kind != chess.King || king.Colour != rook.Colour || king.HasMoved {
		return fmt.Errorf("king has moved: %w", errors.ErrCannotCastle)
	}

	if !isPathClear(board, rook.Square(), kingSq) {
		return fmt.Errorf("path blocked: %w", errors.ErrCannotCastle)
	}

	board.ApplyCastle(rook.Col, rook.Row)
	rook.HasMoved = true
	king.HasMoved = true
	return nil
}
