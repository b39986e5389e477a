package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/joeggg/discord-bot-2/internal/chess"
)

// Board colours shared by the image renderers.
const (
	lightHex = "#f0d9b5"
	darkHex  = "#b58863"
)

// SVG renders the board as a scalable vector image using the unicode piece
// glyphs.
type SVG struct {
	SquareSize int
}

// Ext returns "svg".
func (r *SVG) Ext() string { return "svg" }

// Render writes a complete SVG document to w.
func (r *SVG) Render(w io.Writer, s chess.Snapshot) error {
	ew := &errWriter{w: w}
	size := r.SquareSize
	edge := size * chess.BoardSize

	canvas := svg.New(ew)
	canvas.Start(edge, edge)
	canvas.Title("bluebot chess")

	labelStyle := fmt.Sprintf("font-family:monospace;font-size:%dpx", size/6)
	pieceStyle := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central", size*3/4)

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			x, y := col*size, row*size
			fill := darkHex
			if isLight(row, col) {
				fill = lightHex
			}
			canvas.Rect(x, y, size, size, "fill:"+fill)
			canvas.Text(x+size/16, y+size/5, squareLabel(row, col), labelStyle)

			cell := s.Cells[row][col]
			if cell.Kind == chess.Empty {
				continue
			}
			canvas.Text(x+size/2, y+size/2, cell.Symbol, pieceStyle)
		}
	}

	canvas.End()
	return ew.err
}
