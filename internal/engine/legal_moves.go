package engine

import "github.com/joeggg/discord-bot-2/internal/chess"

// LegalMoves returns every square piece can move to without leaving its own
// king in check, scanning the board from a8 to h1. Castling is not listed;
// it is requested separately with the rook.
func LegalMoves(board *chess.Board, piece *chess.Piece) []chess.Square {
	var moves []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Square{Row: row, Col: col}
			if canMoveSafely(board, piece, sq) {
				moves = append(moves, sq)
			}
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, piece := range board.Roster(colour) {
		if !piece.Alive {
			continue
		}
		if len(LegalMoves(board, piece)) > 0 {
			return true
		}
	}
	return false
}
