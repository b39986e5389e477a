package engine

import "github.com/joeggg/discord-bot-2/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.King(colour)
	if king == nil {
		return false // No king on the board
	}
	return IsInCheckAt(board, king, king.Square())
}

// IsInCheckAt returns true if any live enemy of king threatens sq.
func IsInCheckAt(board *chess.Board, king *chess.Piece, sq chess.Square) bool {
	return SquareAttacked(board, sq, king.EnemyColour()) != nil
}

// CheckingPiece returns the enemy piece giving check to colour's king, or
// nil when the king is safe.
func CheckingPiece(board *chess.Board, colour chess.Colour) *chess.Piece {
	king := board.King(colour)
	if king == nil {
		return nil
	}
	return SquareAttacked(board, king.Square(), colour.Opposite())
}

// IsCheckmate returns true if colour's king is in check and cannot get out
// of it: the king has no safe neighbouring square, no friendly piece can
// capture the piece recorded as checking, and no friendly piece can block
// the line of a sliding attacker. Every candidate reply is tried on the
// board so a pinned defender does not count.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	king := board.King(colour)
	if king == nil {
		return false
	}

	checking := board.Checking()
	if checking == nil || !checking.Alive || checking.Colour == colour {
		checking = CheckingPiece(board, colour)
	}
	if checking == nil {
		return false
	}

	// Check nowhere to move
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			sq := king.Square().Offset(dr, dc)
			if canMoveSafely(board, king, sq) {
				return false
			}
		}
	}

	// Check if the piece holding check can be taken
	for _, piece := range board.Roster(colour) {
		if canMoveSafely(board, piece, checking.Square()) {
			return false
		}
	}

	// Check if the line of attack can be blocked
	if checking.Kind == chess.Knight || checking.Kind == chess.Pawn {
		return true
	}
	for _, sq := range between(checking.Square(), king.Square()) {
		for _, piece := range board.Roster(colour) {
			if piece != king && canMoveSafely(board, piece, sq) {
				return false
			}
		}
	}

	return true
}

// canMoveSafely reports whether piece may move to sq without leaving its
// own king in check.
func canMoveSafely(board *chess.Board, piece *chess.Piece, sq chess.Square) bool {
	if !MoveAllowed(board, piece, sq) {
		return false
	}
	return board.Try(piece.Square(), sq, func() bool {
		return !IsInCheck(board, piece.Colour)
	})
}
