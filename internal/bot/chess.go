package bot

import (
	"strings"

	"github.com/joeggg/discord-bot-2/internal/errors"
	"github.com/joeggg/discord-bot-2/internal/session"
)

// chessCommand drives the session:
//
//	%chess               start a game
//	%chess e2 e4         move
//	%chess h1 castle     castle with the rook on h1
//	%chess moves e2      list legal destinations
//	%chess fen           show the position as FEN
//	%chess stop          cancel the game
func chessCommand(games *session.Manager) Command {
	return Command{
		Usage: "chess [from to | moves <square> | fen | stop]",
		Help:  "play two-player chess",
		Run: func(args []string) (*session.Reply, error) {
			if len(args) == 0 {
				return games.Start()
			}
			switch strings.ToLower(args[0]) {
			case "stop":
				return games.Cancel()
			case "fen":
				fen, err := games.FEN()
				if err != nil {
					return nil, err
				}
				return &session.Reply{Text: fen}, nil
			case "moves":
				if len(args) != 2 {
					return nil, errors.ErrInvalidMoveFormat
				}
				return games.Hint(strings.ToLower(args[1]))
			}
			if len(args) != 2 {
				return nil, errors.ErrInvalidMoveFormat
			}
			return games.Move(strings.ToLower(args[0]), strings.ToLower(args[1]))
		},
	}
}
