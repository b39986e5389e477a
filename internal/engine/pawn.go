package engine

import "github.com/joeggg/discord-bot-2/internal/chess"

// pawnMoveAllowed applies the pawn rules: one square forward, two on the
// pawn's first move, through empty squares only; one square diagonally
// forward only when capturing. The caller has already rejected targets
// holding a friendly piece.
func pawnMoveAllowed(board *chess.Board, pawn *chess.Piece, target chess.Square) bool {
	dir := pawn.Colour.Forward()
	rowDiff := target.Row - pawn.Row
	colDiff := target.Col - pawn.Col

	// Diagonal capture
	if rowDiff == dir && abs(colDiff) == 1 {
		return !board.IsEmpty(target)
	}
	if colDiff != 0 {
		return false
	}

	// Distance travelled in the pawn's own forward direction.
	steps := rowDiff * dir
	limit := 1
	if !pawn.HasMoved {
		limit = 2
	}
	if steps < 1 || steps > limit {
		return false
	}

	// Every square up to and including the destination must be empty.
	for i := 1; i <= steps; i++ {
		if !board.IsEmpty(pawn.Square().Offset(i*dir, 0)) {
			return false
		}
	}
	return true
}

// PromotePawns replaces every live pawn of colour standing on the far back
// rank with a new queen, in place on the board and in the roster. It
// returns the new queens.
func PromotePawns(board *chess.Board, colour chess.Colour) []*chess.Piece {
	lastRow := colour.Opposite().HomeRow()

	var promoted []*chess.Piece
	for _, piece := range board.Roster(colour) {
		if piece.Kind != chess.Pawn || !piece.Alive || piece.Row != lastRow {
			continue
		}
		queen := chess.NewPiece(chess.Queen, colour, piece.Square())
		queen.HasMoved = true
		board.Replace(piece, queen)
		piece.Alive = false
		promoted = append(promoted, queen)
	}
	return promoted
}
