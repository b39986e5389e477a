package chess

import (
	"fmt"

	"github.com/joeggg/discord-bot-2/internal/errors"
)

// Board holds all mutable state of one game: the grid, the per-colour
// rosters, the single-slot move memory, the checking reference and the
// pending notification. A Board is owned by exactly one game; nothing in
// this package is shared between boards.
type Board struct {
	// The board squares, squares[row][col]. Every square always holds a
	// piece; vacant squares hold an Empty sentinel.
	squares [BoardSize][BoardSize]*Piece

	// Pieces of each colour in setup order. Captured pieces stay in place
	// with Alive=false so slot indices never shift.
	rosters [3][]*Piece

	// Roster slot of each colour's king.
	kingSlot [3]int

	// The most recent transition, consumed by UndoLastMove.
	last *Transition

	// ID of the enemy piece giving check, 0 when none.
	checking int

	notification string
	nextID       int
}

// NewBoard creates a board with every square vacant and empty rosters.
func NewBoard() *Board {
	b := &Board{
		kingSlot: [3]int{-1, -1, -1},
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.squares[row][col] = NewEmpty()
		}
	}
	return b
}

// homeRow is the back rank layout from the a-file to the h-file.
var homeRow = []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition sets up the standard starting position. Rosters are
// filled home row first and then the pawn row, so the king always sits at
// roster slot KingIndex.
func (b *Board) SetupInitialPosition() {
	*b = *NewBoard()
	for _, colour := range []Colour{White, Black} {
		home := colour.HomeRow()
		pawnRow := home + colour.Forward()
		for col, kind := range homeRow {
			b.Place(kind, colour, Square{Row: home, Col: col})
		}
		for col := 0; col < BoardSize; col++ {
			b.Place(Pawn, colour, Square{Row: pawnRow, Col: col})
		}
	}
}

// Place puts a new live piece on a square and appends it to its colour's
// roster. The first king placed for a colour becomes that colour's king.
// Placing on an occupied square replaces the occupant on the grid only;
// setup code is expected to place each square once.
func (b *Board) Place(kind Kind, colour Colour, sq Square) *Piece {
	p := NewPiece(kind, colour, sq)
	b.nextID++
	p.ID = b.nextID
	b.squares[sq.Row][sq.Col] = p
	if kind == King && b.kingSlot[colour] < 0 {
		b.kingSlot[colour] = len(b.rosters[colour])
	}
	b.rosters[colour] = append(b.rosters[colour], p)
	return p
}

// Get returns the occupant of a square, an Empty sentinel when vacant.
func (b *Board) Get(sq Square) *Piece {
	return b.squares[sq.Row][sq.Col]
}

// At returns the occupant of the square at row, col.
func (b *Board) At(row, col int) *Piece {
	return b.squares[row][col]
}

// IsEmpty reports whether a square is vacant.
func (b *Board) IsEmpty(sq Square) bool {
	return b.squares[sq.Row][sq.Col].IsEmpty()
}

// Roster returns the pieces of a colour in their fixed setup order,
// including captured ones. The slice is owned by the board and must not be
// modified.
func (b *Board) Roster(colour Colour) []*Piece {
	return b.rosters[colour]
}

// King returns the king of a colour, or nil if the board has none.
func (b *Board) King(colour Colour) *Piece {
	slot := b.kingSlot[colour]
	if slot < 0 {
		return nil
	}
	return b.rosters[colour][slot]
}

// PieceByID looks a piece up in either roster.
func (b *Board) PieceByID(id int) *Piece {
	if id == 0 {
		return nil
	}
	for _, colour := range []Colour{White, Black} {
		for _, p := range b.rosters[colour] {
			if p.ID == id {
				return p
			}
		}
	}
	return nil
}

// squareRecord is the state of one square before a transition.
type squareRecord struct {
	sq       Square
	occupant *Piece
	row      int
	col      int
	alive    bool
	hasMoved bool
}

// Transition is the memory of the last board mutation: enough to restore
// every square it touched. It can be undone once.
type Transition struct {
	From    Square
	To      Square
	Castle  bool
	records []squareRecord
}

func (t *Transition) remember(b *Board, squares ...Square) {
	for _, sq := range squares {
		p := b.Get(sq)
		t.records = append(t.records, squareRecord{
			sq:       sq,
			occupant: p,
			row:      p.Row,
			col:      p.Col,
			alive:    p.Alive,
			hasMoved: p.HasMoved,
		})
	}
}

// LastTransition returns the pending transition, or nil once it has been
// undone or when no move has been applied.
func (b *Board) LastTransition() *Transition {
	return b.last
}

// ApplyMove relocates the piece on from to to without any validation. A
// live occupant of to is captured: it is marked dead, stays in its roster
// and a capture notification is set. from becomes a fresh Empty. The
// transition is remembered for UndoLastMove.
func (b *Board) ApplyMove(from, to Square) {
	t := &Transition{From: from, To: to}
	t.remember(b, from, to)

	moving := b.Get(from)
	target := b.Get(to)

	if !target.IsEmpty() && target.Alive {
		target.Alive = false
		b.Notify(fmt.Sprintf("%s was taken", target.Name()))
	}

	b.squares[to.Row][to.Col] = moving
	b.squares[from.Row][from.Col] = NewEmpty()
	moving.SetSquare(to)

	b.last = t
}

// UndoLastMove restores every square touched by the last ApplyMove or
// ApplyCastle, together with the coordinates, alive and moved flags of the
// pieces involved. Only one level of undo exists: once undone, the
// transition is gone and a second call returns ErrNoTransition.
func (b *Board) UndoLastMove() error {
	t := b.last
	if t == nil {
		return errors.ErrNoTransition
	}
	for i := len(t.records) - 1; i >= 0; i-- {
		r := t.records[i]
		b.squares[r.sq.Row][r.sq.Col] = r.occupant
		r.occupant.Row, r.occupant.Col = r.row, r.col
		r.occupant.Alive = r.alive
		r.occupant.HasMoved = r.hasMoved
	}
	b.last = nil
	return nil
}

// CastleSquares returns where the king and the rook from rookCol end up
// after castling on row. The king always starts on KingCol.
func CastleSquares(rookCol, row int) (kingTo, rookTo Square) {
	if rookCol < KingCol {
		return Square{Row: row, Col: KingCol - 2}, Square{Row: row, Col: KingCol - 1}
	}
	return Square{Row: row, Col: KingCol + 2}, Square{Row: row, Col: KingCol + 1}
}

// ApplyCastle moves the king two squares towards the rook on rookCol and
// the rook onto the square the king crossed. It performs no validation; the
// caller has checked legality. The transition is remembered for
// UndoLastMove.
func (b *Board) ApplyCastle(rookCol, row int) {
	rookFrom := Square{Row: row, Col: rookCol}
	kingFrom := Square{Row: row, Col: KingCol}
	kingTo, rookTo := CastleSquares(rookCol, row)

	t := &Transition{From: rookFrom, To: rookTo, Castle: true}
	t.remember(b, rookFrom, kingFrom, kingTo, rookTo)

	rook := b.Get(rookFrom)
	king := b.Get(kingFrom)

	b.squares[rookFrom.Row][rookFrom.Col] = NewEmpty()
	b.squares[kingFrom.Row][kingFrom.Col] = NewEmpty()
	b.squares[kingTo.Row][kingTo.Col] = king
	b.squares[rookTo.Row][rookTo.Col] = rook
	king.SetSquare(kingTo)
	rook.SetSquare(rookTo)

	b.last = t
}

// Replace swaps old for repl in place: same square, same roster slot. It is
// used for promotion and does not touch the transition memory.
func (b *Board) Replace(old, repl *Piece) {
	b.nextID++
	repl.ID = b.nextID
	repl.Colour = old.Colour
	repl.SetSquare(old.Square())
	b.squares[old.Row][old.Col] = repl

	roster := b.rosters[old.Colour]
	for i, p := range roster {
		if p == old {
			roster[i] = repl
			break
		}
	}
}

// Lift takes the occupant off sq, leaving an Empty in its place, and
// returns a function that puts it back. Used to test squares as if the
// piece were not standing in the way.
func (b *Board) Lift(sq Square) (restore func()) {
	p := b.squares[sq.Row][sq.Col]
	b.squares[sq.Row][sq.Col] = NewEmpty()
	return func() {
		b.squares[sq.Row][sq.Col] = p
	}
}

// SetChecking records the piece currently giving check; nil clears it. Only
// the piece's ID is kept.
func (b *Board) SetChecking(p *Piece) {
	if p == nil {
		b.checking = 0
		return
	}
	b.checking = p.ID
}

// Checking returns the piece recorded as giving check, or nil.
func (b *Board) Checking() *Piece {
	return b.PieceByID(b.checking)
}

// Notify sets the pending notification, replacing any previous one.
func (b *Board) Notify(msg string) {
	b.notification = msg
}

// Notification returns the pending notification without clearing it.
func (b *Board) Notification() string {
	return b.notification
}

// ConsumeNotification returns the pending notification and clears it.
func (b *Board) ConsumeNotification() string {
	msg := b.notification
	b.notification = ""
	return msg
}

// Try applies the move from→to, runs probe against the resulting position
// and then restores the board exactly, including the pending transition and
// notification that existed before the trial.
func (b *Board) Try(from, to Square, probe func() bool) bool {
	last, note := b.last, b.notification
	b.ApplyMove(from, to)
	ok := probe()
	_ = b.UndoLastMove()
	b.last, b.notification = last, note
	return ok
}
