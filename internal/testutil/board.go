package testutil

import (
	"testing"
	"unicode"

	"github.com/joeggg/discord-bot-2/internal/chess"
)

var pieceLetters = map[byte]chess.Kind{
	'P': chess.Pawn,
	'N': chess.Knight,
	'B': chess.Bishop,
	'R': chess.Rook,
	'Q': chess.Queen,
	'K': chess.King,
}

// NewBoard builds a board from placements such as "Ke1" or "pd5": the
// letter picks the kind, upper case for White and lower case for Black.
// Every piece is placed unmoved except pawns off their starting row.
func NewBoard(t *testing.T, placements ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, p := range placements {
		if len(p) != 3 {
			t.Fatalf("bad placement %q", p)
		}
		kind, ok := pieceLetters[byte(unicode.ToUpper(rune(p[0])))]
		if !ok {
			t.Fatalf("bad piece letter in %q", p)
		}
		colour := chess.White
		if unicode.IsLower(rune(p[0])) {
			colour = chess.Black
		}
		sq, err := chess.ParseSquare(p[1:])
		if err != nil {
			t.Fatalf("bad square in %q: %v", p, err)
		}
		piece := b.Place(kind, colour, sq)
		if kind == chess.Pawn {
			piece.HasMoved = sq.Row != colour.HomeRow()+colour.Forward()
		}
	}
	return b
}

// AssertBoardConsistent checks the occupancy invariant: every square holds
// a piece, every live piece sits on the square its coordinates name, and
// every non-empty square holds a live piece.
func AssertBoardConsistent(t *testing.T, b *chess.Board) {
	t.Helper()
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := b.At(row, col)
			if p == nil {
				t.Errorf("square (%d,%d) holds nil", row, col)
				continue
			}
			if p.IsEmpty() {
				continue
			}
			if !p.Alive {
				t.Errorf("square (%d,%d) holds dead %s", row, col, p.Name())
			}
			if p.Row != row || p.Col != col {
				t.Errorf("%s on (%d,%d) believes it is on (%d,%d)", p.Name(), row, col, p.Row, p.Col)
			}
		}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range b.Roster(colour) {
			if p.Alive && b.Get(p.Square()) != p {
				t.Errorf("live %s is not on %s", p.Name(), p.Square())
			}
		}
	}
}
