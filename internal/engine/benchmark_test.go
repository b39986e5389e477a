package engine

import (
	"testing"

	"github.com/joeggg/discord-bot-2/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":  "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":  "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"Castling": "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen)
			}
		})
	}
}

func BenchmarkBoardToFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, toMove, _ := NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				BoardToFEN(board, toMove)
			}
		})
	}
}

func BenchmarkPlayAndUndo(b *testing.B) {
	cases := []struct {
		name     string
		fen      string
		from, to string
	}{
		{"PawnMove", benchFENs["Initial"], "e2", "e4"},
		{"PieceMove", benchFENs["Initial"], "g1", "f3"},
		{"KingsideCastle", benchFENs["Castling"], "h1", CastleToken},
		{"QueensideCastle", benchFENs["Castling"], "a1", CastleToken},
	}

	for _, tt := range cases {
		b.Run(tt.name, func(b *testing.B) {
			board, _, _ := NewBoardFromFEN(tt.fen)
			src := chess.MustParseSquare(tt.from)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				piece := board.Get(src)
				if tt.to == CastleToken {
					Castle(board, piece)
				} else {
					SetCoords(board, piece, chess.MustParseSquare(tt.to))
				}
				board.UndoLastMove()
			}
		})
	}
}

func BenchmarkGameReplay_ItalianOpening(b *testing.B) {
	moves := [][2]string{
		{"e2", "e4"}, {"e7", "e5"},
		{"g1", "f3"}, {"b8", "c6"},
		{"f1", "c4"}, {"f8", "c5"},
	}

	for i := 0; i < b.N; i++ {
		g := NewGame()
		for _, m := range moves {
			g.Play(g.ToMove(), m[0], m[1])
		}
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	checkFEN := "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3"

	b.Run("NoCheck", func(b *testing.B) {
		board, _, _ := NewBoardFromFEN(benchFENs["Initial"])
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})

	b.Run("InCheck", func(b *testing.B) {
		board, _, _ := NewBoardFromFEN(checkFEN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})
}

func BenchmarkHasLegalMoves(b *testing.B) {
	positions := []string{"Initial", "Midgame", "Endgame", "Complex"}
	for _, name := range positions {
		b.Run(name, func(b *testing.B) {
			board, _, _ := NewBoardFromFEN(benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				HasLegalMoves(board, chess.White)
			}
		})
	}
}

func BenchmarkIsCheckmate(b *testing.B) {
	board, toMove, _ := NewBoardFromFEN("4k3/8/8/8/8/4N3/3PPP2/r3K3 w - - 0 1")
	for i := 0; i < b.N; i++ {
		IsCheckmate(board, toMove)
	}
}
