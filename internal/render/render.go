// Package render draws board snapshots for a chat reply: a monospace text
// grid for the message body and an SVG or PNG image for the attachment.
package render

import (
	"fmt"
	"io"

	"github.com/joeggg/discord-bot-2/internal/chess"
	"github.com/joeggg/discord-bot-2/internal/errors"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// DefaultSquareSize is the edge of one square in pixels for image output.
const DefaultSquareSize = 64

// Renderer writes one board snapshot in a fixed format.
type Renderer interface {
	Render(w io.Writer, s chess.Snapshot) error
	// Ext is the file extension of the output, without the dot.
	Ext() string
}

// New returns the renderer for format. squareSize is ignored by the text
// renderer; values below 16 fall back to DefaultSquareSize.
func New(format string, squareSize int) (Renderer, error) {
	if squareSize < 16 {
		squareSize = DefaultSquareSize
	}
	switch format {
	case FormatText:
		return Text{}, nil
	case FormatSVG:
		return &SVG{SquareSize: squareSize}, nil
	case FormatPNG:
		return &PNG{SquareSize: squareSize}, nil
	}
	return nil, fmt.Errorf("render format %q: %w", format, errors.ErrInvalidConfig)
}

// squareLabel returns the coordinate printed in the corner of a square.
func squareLabel(row, col int) string {
	return chess.Square{Row: row, Col: col}.String()
}

// isLight reports whether the square at row, col is a light square. a8 is
// light.
func isLight(row, col int) bool {
	return (row+col)%2 == 0
}

// errWriter remembers the first write error so that writers without error
// returns can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
