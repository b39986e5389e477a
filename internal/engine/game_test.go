package engine

import (
	"errors"
	"testing"

	"github.com/joeggg/discord-bot-2/internal/chess"
	chesserrors "github.com/joeggg/discord-bot-2/internal/errors"
	"github.com/joeggg/discord-bot-2/internal/testutil"
)

type ply struct {
	player   chess.Colour
	from, to string
}

func playAll(t *testing.T, g *Game, plies []ply) *Result {
	t.Helper()
	var result *Result
	for _, p := range plies {
		var err error
		result, err = g.Play(p.player, p.from, p.to)
		if err != nil {
			t.Fatalf("Play(%s, %s, %s) error: %v", p.player, p.from, p.to, err)
		}
	}
	return result
}

func mustGame(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

func TestGame_Opening(t *testing.T) {
	g := NewGame()

	result, err := g.Play(chess.White, "e2", "e4")
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, result.Status, Continue)
	testutil.AssertEqual(t, result.Next, chess.Black)
	testutil.AssertEqual(t, result.Notification, "")
	testutil.AssertEqual(t, result.Board.ToMove, chess.Black)
	testutil.AssertEqual(t, result.Board.Cells[4][4].Kind, chess.Pawn)
	testutil.AssertEqual(t, result.Board.Cells[6][4].Kind, chess.Empty)
	testutil.AssertEqual(t, g.ToMove(), chess.Black)
	testutil.AssertEqual(t, g.Plies(), 1)
	testutil.AssertEqual(t, g.FEN(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	testutil.AssertBoardConsistent(t, g.Board())
}

func TestGame_Capture(t *testing.T) {
	g := NewGame()

	result := playAll(t, g, []ply{
		{chess.White, "e2", "e4"},
		{chess.Black, "d7", "d5"},
		{chess.White, "e4", "d5"},
	})

	testutil.AssertEqual(t, result.Notification, "Black's pawn was taken")
	testutil.AssertEqual(t, result.Board.Cells[3][3].Colour, chess.White)
	testutil.AssertEqual(t, result.Next, chess.Black)

	// The notification is consumed with the result.
	testutil.AssertEqual(t, g.Snapshot().Notification, "")

	var dead int
	for _, p := range g.Board().Roster(chess.Black) {
		if !p.Alive {
			dead++
		}
	}
	testutil.AssertEqual(t, dead, 1)
	testutil.AssertBoardConsistent(t, g.Board())
}

func TestGame_RejectedMoves(t *testing.T) {
	tests := []struct {
		name     string
		player   chess.Colour
		from, to string
		wantErr  error
		wantMsg  string
	}{
		{"black moves first", chess.Black, "e7", "e5", chesserrors.ErrNotYourTurn, "Not your turn"},
		{"enemy piece", chess.White, "e7", "e5", chesserrors.ErrNotYourPiece, "Not one of your pieces"},
		{"empty square", chess.White, "e4", "e5", chesserrors.ErrNotYourPiece, "Not one of your pieces"},
		{"short token", chess.White, "e2", "e", chesserrors.ErrInvalidMoveFormat, "Invalid move"},
		{"long token", chess.White, "e2x", "e4", chesserrors.ErrInvalidMoveFormat, "Invalid move"},
		{"source off board", chess.White, "z9", "e4", chesserrors.ErrOutOfBounds, "Number out of bounds"},
		{"destination off board", chess.White, "e2", "e9", chesserrors.ErrOutOfBounds, "Number out of bounds"},
		{"illegal pawn move", chess.White, "e2", "e5", chesserrors.ErrIllegalMove, "Piece can't move there"},
		{"bishop blocked", chess.White, "f1", "c4", chesserrors.ErrIllegalMove, "Piece can't move there"},
		{"castle blocked", chess.White, "h1", CastleToken, chesserrors.ErrCannotCastle, "Cannot castle"},
		{"castle with king", chess.White, "e1", CastleToken, chesserrors.ErrCannotCastle, "Cannot castle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame()
			before := g.FEN()

			result, err := g.Play(tt.player, tt.from, tt.to)

			if result != nil {
				t.Errorf("Play() result = %+v, want nil", result)
			}
			testutil.AssertErrorIs(t, err, tt.wantErr)
			var moveErr *chesserrors.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("Play() error %T is not a *MoveError", err)
			}
			testutil.AssertEqual(t, moveErr.Player, tt.player.String())
			testutil.AssertEqual(t, chesserrors.Message(err), tt.wantMsg)

			testutil.AssertEqual(t, g.FEN(), before, "board changed by rejected move")
			testutil.AssertEqual(t, g.ToMove(), chess.White)
			testutil.AssertEqual(t, g.Plies(), 0)
		})
	}
}

func TestGame_SelfCheckRollsBack(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
	}{
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e2", "d3"},
		{"pinned bishop captures", "4k3/4r3/8/8/8/3p4/4B3/4K3 w - - 0 1", "e2", "d3"},
		{"castle into check", "4k1r1/8/8/8/8/8/8/4K2R w K - 0 1", "h1", CastleToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			before := g.Board().Snapshot()

			_, err := g.Play(chess.White, tt.from, tt.to)

			testutil.AssertErrorIs(t, err, chesserrors.ErrSelfCheck)
			testutil.AssertEqual(t, chesserrors.Message(err), "That would be check!")
			testutil.AssertTrue(t, g.Board().Snapshot() == before, "board not restored")
			testutil.AssertEqual(t, g.FEN(), tt.fen)
			testutil.AssertEqual(t, g.ToMove(), chess.White)
			testutil.AssertEqual(t, g.Snapshot().Notification, "", "capture notification leaked")
			testutil.AssertBoardConsistent(t, g.Board())
		})
	}
}

func TestGame_Castling(t *testing.T) {
	g := mustGame(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")

	playAll(t, g, []ply{{chess.White, "h1", CastleToken}})
	testutil.AssertEqual(t, g.FEN(), "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 0 1")

	playAll(t, g, []ply{{chess.Black, "a8", CastleToken}})
	testutil.AssertEqual(t, g.FEN(), "2kr3r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 w - - 0 1")
	testutil.AssertBoardConsistent(t, g.Board())
}

func TestGame_CastlingPreconditions(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		rook string
	}{
		{"rook has moved", "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", "h1"},
		{"path blocked", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", "a1"},
		{"rook not in a corner", "r3k2r/8/8/8/8/8/8/1R2K2R w Kkq - 0 1", "b1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)

			_, err := g.Play(chess.White, tt.rook, CastleToken)

			testutil.AssertErrorIs(t, err, chesserrors.ErrCannotCastle)
			testutil.AssertEqual(t, g.FEN(), tt.fen)
			testutil.AssertTrue(t, g.Board().LastTransition() == nil, "failed castle left a transition")
		})
	}
}

func TestGame_Promotion(t *testing.T) {
	g := mustGame(t, "8/1P6/8/8/7k/8/8/4K3 w - - 0 1")
	pawn := g.Board().Get(chess.MustParseSquare("b7"))

	result := playAll(t, g, []ply{{chess.White, "b7", "b8"}})

	testutil.AssertEqual(t, result.Board.Cells[0][1].Kind, chess.Queen)
	testutil.AssertEqual(t, result.Board.Cells[0][1].Colour, chess.White)
	testutil.AssertFalse(t, pawn.Alive)
	testutil.AssertEqual(t, g.FEN(), "1Q6/8/8/8/7k/8/8/4K3 b - - 0 1")
	testutil.AssertBoardConsistent(t, g.Board())
}

func TestGame_Check(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")

	result := playAll(t, g, []ply{{chess.White, "a1", "a8"}})

	testutil.AssertEqual(t, result.Status, Continue)
	testutil.AssertEqual(t, result.Next, chess.Black)
	testutil.AssertEqual(t, result.Notification, "Black in check!")
	rook := g.Board().Get(chess.MustParseSquare("a8"))
	testutil.AssertTrue(t, g.Board().Checking() == rook, "checking piece not recorded")

	// Black must get out of check.
	_, err := g.Play(chess.Black, "e8", "d8")
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)

	result = playAll(t, g, []ply{{chess.Black, "e8", "e7"}})
	testutil.AssertEqual(t, result.Notification, "")
	testutil.AssertTrue(t, g.Board().Checking() == nil, "checking piece not cleared")
}

func TestGame_BackRankMate(t *testing.T) {
	g := mustGame(t, "6k1/5ppp/8/8/8/8/8/3R2K1 w - - 0 1")

	result := playAll(t, g, []ply{{chess.White, "d1", "d8"}})

	testutil.AssertEqual(t, result.Status, GameOver)
	testutil.AssertEqual(t, result.Winner, chess.White)
	testutil.AssertEqual(t, result.Next, chess.NoColour)
	testutil.AssertEqual(t, result.Notification, "Checkmate Black!\nWhite wins!")
	testutil.AssertTrue(t, g.Over())
	testutil.AssertEqual(t, g.Winner(), chess.White)
	testutil.AssertTrue(t, IsCheckmate(g.Board(), chess.Black))

	_, err := g.Play(chess.Black, "g8", "h8")
	testutil.AssertErrorIs(t, err, chesserrors.ErrGameOver)
}

func TestGame_ScholarsMate(t *testing.T) {
	g := NewGame()

	result := playAll(t, g, []ply{
		{chess.White, "e2", "e4"},
		{chess.Black, "e7", "e5"},
		{chess.White, "f1", "c4"},
		{chess.Black, "b8", "c6"},
		{chess.White, "d1", "h5"},
		{chess.Black, "g8", "f6"},
		{chess.White, "h5", "f7"},
	})

	testutil.AssertEqual(t, result.Status, GameOver)
	testutil.AssertEqual(t, result.Winner, chess.White)
	testutil.AssertEqual(t, result.Notification, "Checkmate Black!\nWhite wins!")
	testutil.AssertEqual(t, g.Plies(), 7)
}

func TestGame_BlockableCheckIsNotMate(t *testing.T) {
	g := mustGame(t, "r3k3/8/8/8/8/4N3/3PPP2/4K3 b - - 0 1")

	result := playAll(t, g, []ply{{chess.Black, "a8", "a1"}})

	testutil.AssertEqual(t, result.Status, Continue)
	testutil.AssertEqual(t, result.Notification, "White in check!")

	result = playAll(t, g, []ply{{chess.White, "e3", "d1"}})
	testutil.AssertEqual(t, result.Notification, "")
	testutil.AssertEqual(t, result.Next, chess.Black)
}

func TestGame_Stalemate(t *testing.T) {
	g := mustGame(t, "7k/4Q3/6K1/8/8/8/8/8 w - - 0 1")

	result := playAll(t, g, []ply{{chess.White, "e7", "f7"}})

	testutil.AssertEqual(t, result.Status, GameOver)
	testutil.AssertEqual(t, result.Winner, chess.NoColour)
	testutil.AssertEqual(t, result.Notification, "Stalemate! It's a draw")
	testutil.AssertTrue(t, g.Over())
}

func TestGame_Isolation(t *testing.T) {
	first := NewGame()
	second := NewGame()

	playAll(t, first, []ply{{chess.White, "e2", "e4"}})

	testutil.AssertEqual(t, second.FEN(), InitialFEN)
	testutil.AssertEqual(t, second.ToMove(), chess.White)
}

func TestNewGameFromFEN_Invalid(t *testing.T) {
	_, err := NewGameFromFEN("not a fen")
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
}

func TestStatusString(t *testing.T) {
	testutil.AssertEqual(t, Continue.String(), "continue")
	testutil.AssertEqual(t, GameOver.String(), "game over")
}
