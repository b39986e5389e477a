package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/joeggg/discord-bot-2/internal/chess"
	"github.com/joeggg/discord-bot-2/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// PieceLetter returns the FEN letter for a piece: upper case for White.
func PieceLetter(p *chess.Piece) byte {
	letter := p.Kind.Letter()
	if p.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string and returns it with the
// side to move. Moved flags are inferred: pawns off their starting row,
// kings off e1/e8 and rooks without a matching castling right count as
// moved. En passant and clock fields are accepted and ignored.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.NoColour, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.NoColour, err
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if board.King(colour) == nil {
			return nil, chess.NoColour, fmt.Errorf("no %s king: %w", colour, errors.ErrInvalidFEN)
		}
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.NoColour, err
	}

	parseCastlingRights(board, parts)

	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// The first rank in the string is rank 8, which is row 0.
func parsePiecePositions(board *chess.Board, positions string) error {
	row, col := 0, 0

	for _, c := range positions {
		switch {
		case c == '/':
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			kind := ConvertFENCharToKind(byte(c))
			if kind == chess.Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize || row >= chess.BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			piece := board.Place(kind, colour, chess.Square{Row: row, Col: col})
			switch kind {
			case chess.Pawn:
				piece.HasMoved = row != colour.HomeRow()+colour.Forward()
			case chess.King, chess.Rook:
				// Cleared below when a castling right covers the piece.
				piece.HasMoved = true
			}
			col++
		}
	}
	if row != chess.BoardSize-1 {
		return fmt.Errorf("expected %d ranks: %w", chess.BoardSize, errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.NoColour, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseCastlingRights parses the castling availability field and marks the
// king and rook of each available right as unmoved.
func parseCastlingRights(board *chess.Board, parts []string) {
	if len(parts) < 3 || parts[2] == "-" {
		return
	}

	for _, c := range parts[2] {
		var colour chess.Colour
		var rookCol int
		switch c {
		case 'K':
			colour, rookCol = chess.White, chess.BoardSize-1
		case 'Q':
			colour, rookCol = chess.White, 0
		case 'k':
			colour, rookCol = chess.Black, chess.BoardSize-1
		case 'q':
			colour, rookCol = chess.Black, 0
		default:
			continue
		}

		row := colour.HomeRow()
		king := board.At(row, chess.KingCol)
		rook := board.At(row, rookCol)
		if king.Kind == chess.King && king.Colour == colour &&
			rook.Kind == chess.Rook && rook.Colour == colour {
			king.HasMoved = false
			rook.HasMoved = false
		}
	}
}

// BoardToFEN converts a board to a FEN string with colour to move.
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteString(" - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.At(row, col)
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability implied by the
// moved flags of kings and corner rooks.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		row := colour.HomeRow()
		king := board.At(row, chess.KingCol)
		if king.Kind != chess.King || king.Colour != colour || king.HasMoved {
			continue
		}
		for _, right := range []struct {
			col    int
			letter byte
		}{{chess.BoardSize - 1, 'K'}, {0, 'Q'}} {
			rook := board.At(row, right.col)
			if rook.Kind != chess.Rook || rook.Colour != colour || rook.HasMoved {
				continue
			}
			letter := right.letter
			if colour == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}
