package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/joeggg/discord-bot-2/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		coord   string
		want    Square
		wantErr error
	}{
		{"a8", Square{Row: 0, Col: 0}, nil},
		{"h1", Square{Row: 7, Col: 7}, nil},
		{"e2", Square{Row: 6, Col: 4}, nil},
		{"d5", Square{Row: 3, Col: 3}, nil},
		{"i1", Square{}, chesserrors.ErrOutOfBounds},
		{"a9", Square{}, chesserrors.ErrOutOfBounds},
		{"a0", Square{}, chesserrors.ErrOutOfBounds},
		{"E2", Square{}, chesserrors.ErrOutOfBounds},
		{"e", Square{}, chesserrors.ErrInvalidMoveFormat},
		{"e22", Square{}, chesserrors.ErrInvalidMoveFormat},
	}

	for _, tt := range tests {
		t.Run(tt.coord, func(t *testing.T) {
			got, err := ParseSquare(tt.coord)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseSquare(%q) error = %v; want %v", tt.coord, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.coord, got, tt.want)
			}
		})
	}
}

func TestSquareRoundTrip(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sq := Square{Row: row, Col: col}
			got, err := ParseSquare(sq.String())
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", sq.String(), err)
			}
			if got != sq {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", sq.String(), got, sq)
			}
		}
	}
}

func TestCoordinateConversion(t *testing.T) {
	for file := byte('a'); file <= 'h'; file++ {
		col, err := FileConvert(file)
		if err != nil {
			t.Fatalf("FileConvert(%q) error: %v", file, err)
		}
		back, err := ToFile(col)
		if err != nil || back != file {
			t.Errorf("ToFile(%d) = %q, %v; want %q", col, back, err, file)
		}
	}
	for rank := byte('1'); rank <= '8'; rank++ {
		row, err := RankConvert(rank)
		if err != nil {
			t.Fatalf("RankConvert(%q) error: %v", rank, err)
		}
		if want := BoardSize - int(rank-'0'); row != want {
			t.Errorf("RankConvert(%q) = %d; want %d", rank, row, want)
		}
		back, err := ToRank(row)
		if err != nil || back != rank {
			t.Errorf("ToRank(%d) = %q, %v; want %q", row, back, err, rank)
		}
	}

	if _, err := ToFile(BoardSize); !errors.Is(err, chesserrors.ErrOutOfBounds) {
		t.Errorf("ToFile(8) error = %v; want ErrOutOfBounds", err)
	}
	if _, err := ToRank(-1); !errors.Is(err, chesserrors.ErrOutOfBounds) {
		t.Errorf("ToRank(-1) error = %v; want ErrOutOfBounds", err)
	}
}

func TestSquareValidAndOffset(t *testing.T) {
	sq := MustParseSquare("a1")
	if !sq.Valid() {
		t.Error("a1 not valid")
	}
	if off := sq.Offset(1, 0); off.Valid() {
		t.Errorf("a1 offset one row down = %+v; want off the board", off)
	}
	if got := sq.Offset(-1, 1).String(); got != "b2" {
		t.Errorf("a1 offset (-1, 1) = %s; want b2", got)
	}
	if got := (Square{Row: -1}).String(); got != "??" {
		t.Errorf("off-board String() = %q; want ??", got)
	}
}

func TestColour(t *testing.T) {
	tests := []struct {
		colour   Colour
		name     string
		opposite Colour
		homeRow  int
		forward  int
	}{
		{White, "White", Black, 7, -1},
		{Black, "Black", White, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.colour.String(); got != tt.name {
				t.Errorf("String() = %q; want %q", got, tt.name)
			}
			if got := tt.colour.Opposite(); got != tt.opposite {
				t.Errorf("Opposite() = %v; want %v", got, tt.opposite)
			}
			if got := tt.colour.HomeRow(); got != tt.homeRow {
				t.Errorf("HomeRow() = %d; want %d", got, tt.homeRow)
			}
			if got := tt.colour.Forward(); got != tt.forward {
				t.Errorf("Forward() = %d; want %d", got, tt.forward)
			}
		})
	}
	if NoColour.Opposite() != NoColour {
		t.Error("NoColour.Opposite() != NoColour")
	}
}

func TestSymbol(t *testing.T) {
	if got := Symbol(King, White); got != "♚" {
		t.Errorf("Symbol(King, White) = %q; want ♚", got)
	}
	if got := Symbol(King, Black); got != "♔" {
		t.Errorf("Symbol(King, Black) = %q; want ♔", got)
	}
	if got := NewEmpty().Symbol(); got != " " {
		t.Errorf("Empty symbol = %q; want a space", got)
	}
	if got := NewPiece(Pawn, White, Square{}).Name(); got != "White's pawn" {
		t.Errorf("Name() = %q; want %q", got, "White's pawn")
	}
}
