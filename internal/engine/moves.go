// Package engine provides chess move validation and the turn controller.
package engine

import "github.com/joeggg/discord-bot-2/internal/chess"

// MoveAllowed reports whether piece may move to target under its kind's
// movement rules. It is always false when target holds a piece of the same
// colour, and it does not consider whether the move exposes the mover's
// own king; the turn controller checks that after applying the move.
func MoveAllowed(board *chess.Board, piece *chess.Piece, target chess.Square) bool {
	if !target.Valid() || piece.IsEmpty() || !piece.Alive {
		return false
	}
	if board.Get(target).Colour == piece.Colour {
		return false
	}

	from := piece.Square()
	rowDiff := abs(target.Row - from.Row)
	colDiff := abs(target.Col - from.Col)

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoveAllowed(board, piece, target)

	case chess.Knight:
		return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)

	case chess.Bishop:
		return rowDiff == colDiff && isPathClear(board, from, target)

	case chess.Rook:
		return (rowDiff == 0) != (colDiff == 0) && isPathClear(board, from, target)

	case chess.Queen:
		if rowDiff == colDiff {
			return isPathClear(board, from, target)
		}
		return (rowDiff == 0) != (colDiff == 0) && isPathClear(board, from, target)

	case chess.King:
		return rowDiff <= 1 && colDiff <= 1 && !kingSquareAttacked(board, piece, target)
	}

	return false
}

// attacks reports whether piece threatens target, whatever stands there.
// It follows the movement geometry of MoveAllowed except that pawns only
// threaten their forward diagonals and kings threaten every adjacent
// square without asking whether they would be safe there.
func attacks(board *chess.Board, piece *chess.Piece, target chess.Square) bool {
	if piece.IsEmpty() || !piece.Alive {
		return false
	}
	from := piece.Square()
	if from == target {
		return false
	}

	rowDiff := abs(target.Row - from.Row)
	colDiff := abs(target.Col - from.Col)

	switch piece.Kind {
	case chess.Pawn:
		return target.Row-from.Row == piece.Colour.Forward() && colDiff == 1

	case chess.Knight:
		return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)

	case chess.Bishop:
		return rowDiff == colDiff && isPathClear(board, from, target)

	case chess.Rook:
		return (rowDiff == 0 || colDiff == 0) && isPathClear(board, from, target)

	case chess.Queen:
		return (rowDiff == colDiff || rowDiff == 0 || colDiff == 0) && isPathClear(board, from, target)

	case chess.King:
		return rowDiff <= 1 && colDiff <= 1
	}

	return false
}

// SquareAttacked returns the first live piece of colour by that threatens
// sq, or nil when the square is safe.
func SquareAttacked(board *chess.Board, sq chess.Square, by chess.Colour) *chess.Piece {
	for _, piece := range board.Roster(by) {
		if attacks(board, piece, sq) {
			return piece
		}
	}
	return nil
}

// kingSquareAttacked tests a king's candidate square with the king lifted
// off its current square, so a slider checking along a line still covers
// the squares behind the king.
func kingSquareAttacked(board *chess.Board, king *chess.Piece, target chess.Square) bool {
	restore := board.Lift(king.Square())
	defer restore()
	return SquareAttacked(board, target, king.EnemyColour()) != nil
}

// SetCoords validates and applies a regular move of piece to target: it
// returns false without touching the board when the move is not allowed,
// otherwise relocates the piece, capturing any enemy on target.
func SetCoords(board *chess.Board, piece *chess.Piece, target chess.Square) bool {
	if !MoveAllowed(board, piece, target) {
		return false
	}
	board.ApplyMove(piece.Square(), target)
	return true
}
