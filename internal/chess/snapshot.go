package chess

// Cell is the renderable content of one square.
type Cell struct {
	Kind   Kind
	Colour Colour
	Symbol string
}

// Snapshot is an immutable copy of what a renderer needs: the grid of
// piece symbols, the pending notification and whose turn it is.
type Snapshot struct {
	Cells        [BoardSize][BoardSize]Cell
	Notification string
	ToMove       Colour
}

// Snapshot copies the grid. The notification is left for the caller to
// fill so that consuming it stays an explicit step.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.squares[row][col]
			s.Cells[row][col] = Cell{Kind: p.Kind, Colour: p.Colour, Symbol: p.Symbol()}
		}
	}
	return s
}
