package chess

// Piece is one entity on the board. The Kind tag selects its movement
// rules; the remaining fields are shared by every kind. Vacant squares hold
// a piece of kind Empty, which has no colour, no ID and never appears in a
// roster.
type Piece struct {
	ID       int // Stable identity for lookups; 0 for Empty
	Kind     Kind
	Colour   Colour
	Row      int
	Col      int
	HasMoved bool
	Alive    bool
}

// NewPiece creates a live, unmoved piece on the given square.
func NewPiece(kind Kind, colour Colour, sq Square) *Piece {
	return &Piece{
		Kind:   kind,
		Colour: colour,
		Row:    sq.Row,
		Col:    sq.Col,
		Alive:  true,
	}
}

// NewEmpty creates a vacant-square sentinel.
func NewEmpty() *Piece {
	return &Piece{Kind: Empty}
}

// IsEmpty reports whether p is the vacant-square sentinel.
func (p *Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Square returns the square the piece believes it stands on.
func (p *Piece) Square() Square {
	return Square{Row: p.Row, Col: p.Col}
}

// SetSquare updates the piece's own coordinates.
func (p *Piece) SetSquare(sq Square) {
	p.Row, p.Col = sq.Row, sq.Col
}

// EnemyColour returns the colour whose roster this piece is tested against.
func (p *Piece) EnemyColour() Colour {
	return p.Colour.Opposite()
}

// Symbol returns the unicode glyph of the piece.
func (p *Piece) Symbol() string {
	return Symbol(p.Kind, p.Colour)
}

// Name returns e.g. "White's pawn".
func (p *Piece) Name() string {
	return p.Colour.String() + "'s " + p.Kind.String()
}
