package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"unicode"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/joeggg/discord-bot-2/internal/chess"
)

var (
	lightColour  = color.RGBA{R: 0xf0, G: 0xd9, B: 0xb5, A: 0xff}
	darkColour   = color.RGBA{R: 0xb5, G: 0x88, B: 0x63, A: 0xff}
	whiteColour  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	blackColour  = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	shadowColour = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
)

// PNG renders the board as a raster image. The bitmap font has no chess
// glyphs, so pieces are drawn as their letters: upper case for White and
// lower case for Black, scaled up to fill the square.
type PNG struct {
	SquareSize int
}

// Ext returns "png".
func (r *PNG) Ext() string { return "png" }

// Render encodes the board image as PNG to w.
func (r *PNG) Render(w io.Writer, s chess.Snapshot) error {
	return png.Encode(w, r.Image(s))
}

// Image draws the board.
func (r *PNG) Image(s chess.Snapshot) *image.RGBA {
	size := r.SquareSize
	edge := size * chess.BoardSize
	img := image.NewRGBA(image.Rect(0, 0, edge, edge))

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			rect := r.squareRect(row, col)
			fill := darkColour
			if isLight(row, col) {
				fill = lightColour
			}
			draw.Draw(img, rect, &image.Uniform{fill}, image.Point{}, draw.Src)
			drawLabel(img, rect, squareLabel(row, col))

			cell := s.Cells[row][col]
			if cell.Kind != chess.Empty {
				r.drawPiece(img, rect, cell)
			}
		}
	}
	return img
}

// squareRect returns the image.Rectangle for a square on the board.
func (r *PNG) squareRect(row, col int) image.Rectangle {
	minX, minY := col*r.SquareSize, row*r.SquareSize
	return image.Rect(minX, minY, minX+r.SquareSize, minY+r.SquareSize)
}

// drawLabel writes the coordinate in the top left corner at the font's
// native size.
func drawLabel(img *image.RGBA, rect image.Rectangle, label string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{shadowColour},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(rect.Min.X+2, rect.Min.Y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(label)
}

// drawPiece draws the piece letter once in a small glyph tile and scales the
// tile into the middle of the square, shadow first.
func (r *PNG) drawPiece(img *image.RGBA, rect image.Rectangle, cell chess.Cell) {
	letter := rune(cell.Kind.Letter())
	fg := whiteColour
	if cell.Colour == chess.Black {
		letter = unicode.ToLower(letter)
		fg = blackColour
	}

	face := basicfont.Face7x13
	glyphW, glyphH := face.Advance, face.Height
	tile := image.NewRGBA(image.Rect(0, 0, glyphW, glyphH))
	d := &font.Drawer{
		Dst:  tile,
		Src:  &image.Uniform{fg},
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(string(letter))

	h := r.SquareSize * 3 / 4
	w := h * glyphW / glyphH
	offset := image.Point{X: (r.SquareSize - w) / 2, Y: (r.SquareSize - h) / 2}
	target := image.Rect(0, 0, w, h).Add(rect.Min).Add(offset)

	shadow := image.NewRGBA(tile.Bounds())
	draw.DrawMask(shadow, shadow.Bounds(), &image.Uniform{shadowColour}, image.Point{}, tile, image.Point{}, draw.Src)
	shift := image.Point{X: r.SquareSize / 32, Y: r.SquareSize / 32}
	draw.NearestNeighbor.Scale(img, target.Add(shift), shadow, shadow.Bounds(), draw.Over, nil)
	draw.NearestNeighbor.Scale(img, target, tile, tile.Bounds(), draw.Over, nil)
}
