package render

import (
	"io"
	"strings"

	"github.com/joeggg/discord-bot-2/internal/chess"
)

// Text grid geometry: every square is squareWidth characters wide and
// squareHeight lines tall, with single-character borders between them.
const (
	squareWidth  = 7
	squareHeight = 3
	boardWidth   = chess.BoardSize*squareWidth + chess.BoardSize + 1
)

// Text renders the board as a bordered grid with the coordinate of each
// square in its top left corner and the piece glyph in its centre.
type Text struct{}

// Ext returns "txt".
func (Text) Ext() string { return "txt" }

// Render writes the grid to w.
func (Text) Render(w io.Writer, s chess.Snapshot) error {
	_, err := io.WriteString(w, Grid(s))
	return err
}

// Grid returns the text grid of a snapshot.
func Grid(s chess.Snapshot) string {
	var sb strings.Builder
	border := strings.Repeat("-", boardWidth) + "\n"

	for row := 0; row < chess.BoardSize; row++ {
		sb.WriteString(border)
		for line := 0; line < squareHeight; line++ {
			sb.WriteByte('|')
			for col := 0; col < chess.BoardSize; col++ {
				switch line {
				case 0:
					sb.WriteString(squareLabel(row, col))
					sb.WriteString(strings.Repeat(" ", squareWidth-2))
				case 1:
					pad := strings.Repeat(" ", (squareWidth-1)/2)
					sb.WriteString(pad)
					sb.WriteString(s.Cells[row][col].Symbol)
					sb.WriteString(pad)
				default:
					sb.WriteString(strings.Repeat(" ", squareWidth))
				}
				sb.WriteByte('|')
			}
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(border)
	return sb.String()
}
