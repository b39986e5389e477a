package engine

import "github.com/joeggg/discord-bot-2/internal/chess"

// isPathClear checks that every square strictly between from and to is
// empty. from and to must share a rank, file or diagonal; the destination
// itself is not inspected.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	for _, sq := range between(from, to) {
		if !board.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// between returns the squares strictly between from and to when they share
// a rank, file or diagonal, and nil otherwise.
func between(from, to chess.Square) []chess.Square {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
		return nil
	}
	rowDir, colDir := sign(dr), sign(dc)
	var squares []chess.Square
	for sq := from.Offset(rowDir, colDir); sq != to; sq = sq.Offset(rowDir, colDir) {
		squares = append(squares, sq)
	}
	return squares
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
