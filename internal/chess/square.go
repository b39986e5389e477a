package chess

import (
	"fmt"

	"github.com/joeggg/discord-bot-2/internal/errors"
)

// Square is a board position. Row 0 is Black's back rank and row 7 is
// White's; column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dr rows and dc columns away. The result may be
// off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns the algebraic coordinate of the square, e.g. "e2".
func (s Square) String() string {
	file, err := ToFile(s.Col)
	if err != nil {
		return "??"
	}
	rank, err := ToRank(s.Row)
	if err != nil {
		return "??"
	}
	return string([]byte{file, rank})
}

// ParseSquare converts a two-character algebraic coordinate to a square.
func ParseSquare(coord string) (Square, error) {
	if len(coord) != 2 {
		return Square{}, fmt.Errorf("coordinate %q: %w", coord, errors.ErrInvalidMoveFormat)
	}
	col, err := FileConvert(coord[0])
	if err != nil {
		return Square{}, err
	}
	row, err := RankConvert(coord[1])
	if err != nil {
		return Square{}, err
	}
	return Square{Row: row, Col: col}, nil
}

// MustParseSquare is like ParseSquare but panics on a bad coordinate. It is
// meant for constant coordinates in setup code and tests.
func MustParseSquare(coord string) Square {
	sq, err := ParseSquare(coord)
	if err != nil {
		panic(err)
	}
	return sq
}

// FileConvert converts a file letter 'a'-'h' to a column index.
func FileConvert(file byte) (int, error) {
	if file >= FileBase && file <= LastFile {
		return int(file - FileBase), nil
	}
	return 0, fmt.Errorf("file %q: %w", file, errors.ErrOutOfBounds)
}

// RankConvert converts a rank digit '1'-'8' to a row index (row = 8 - rank).
func RankConvert(rank byte) (int, error) {
	if rank >= RankBase && rank <= LastRank {
		return BoardSize - int(rank-'0'), nil
	}
	return 0, fmt.Errorf("rank %q: %w", rank, errors.ErrOutOfBounds)
}

// ToFile converts a column index back to a file letter.
func ToFile(col int) (byte, error) {
	if col < 0 || col >= BoardSize {
		return 0, fmt.Errorf("column %d: %w", col, errors.ErrOutOfBounds)
	}
	return byte(FileBase + col), nil
}

// ToRank converts a row index back to a rank digit.
func ToRank(row int) (byte, error) {
	if row < 0 || row >= BoardSize {
		return 0, fmt.Errorf("row %d: %w", row, errors.ErrOutOfBounds)
	}
	return byte('0' + BoardSize - row), nil
}
