// Package chess provides core chess types and board state.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	NoColour Colour = iota // Colour of the Empty sentinel
	White
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColour
}

// HomeRow returns the back rank row index for the colour.
func (c Colour) HomeRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// Forward returns the row delta of a forward pawn step: White moves
// towards row 0, Black towards row 7.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// Kind is the tag of the piece variant.
type Kind int

const (
	Empty Kind = iota // Vacant square sentinel
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the lower-case name of a kind, as used in notifications.
func (k Kind) String() string {
	names := []string{"empty", "pawn", "knight", "bishop", "rook", "queen", "king"}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Symbols are the unicode glyphs for each kind, indexed by kind. The
// outlined set is used for Black and the filled set for White so that the
// pieces read correctly on a dark chat background.
var (
	outlinedSymbols = []string{" ", "♙", "♘", "♗", "♖", "♕", "♔"}
	filledSymbols   = []string{" ", "♟", "♞", "♝", "♜", "♛", "♚"}
)

// Symbol returns the unicode chess glyph for a kind of the given colour.
func Symbol(k Kind, c Colour) string {
	if k < Empty || int(k) >= len(filledSymbols) {
		return "?"
	}
	if c == Black {
		return outlinedSymbols[k]
	}
	return filledSymbols[k]
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	FileBase  = 'a'
	LastRank  = RankBase + BoardSize - 1
	LastFile  = FileBase + BoardSize - 1
	KingIndex = 4 // Roster slot of the king in the standard layout
	KingCol   = 4
)
