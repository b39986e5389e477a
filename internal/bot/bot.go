// Package bot turns chat messages of the form "%command args..." into
// replies.
package bot

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/joeggg/discord-bot-2/internal/config"
	"github.com/joeggg/discord-bot-2/internal/errors"
	"github.com/joeggg/discord-bot-2/internal/session"
)

// InternalErrorMessage replies to a handler failure that is not a player
// mistake.
const InternalErrorMessage = "A fatal internal error occurred"

// Handler runs one command with the words that followed it.
type Handler func(args []string) (*session.Reply, error)

// Command is a registered command.
type Command struct {
	Usage string
	Help  string
	Run   Handler
}

// Dispatcher routes prefixed messages to commands.
type Dispatcher struct {
	prefix  string
	phrases []string
	logger  *zap.Logger

	mu       sync.Mutex
	commands map[string]Command
	next     int
}

// NewDispatcher returns a Dispatcher with the chess and help commands
// registered. A nil logger discards all log output.
func NewDispatcher(cfg *config.Config, games *session.Manager, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Dispatcher{
		prefix:   cfg.Prefix,
		phrases:  cfg.Phrases.WrongCommand,
		logger:   logger,
		commands: make(map[string]Command),
	}
	d.Register(map[string]Command{
		"chess": chessCommand(games),
		"help": {
			Usage: "help",
			Help:  "list commands",
			Run:   d.help,
		},
	})
	return d
}

// Register adds or replaces commands.
func (d *Dispatcher) Register(cmds map[string]Command) {
	d.mu.Lock()
	defer d.mu.Unlock()
	maps.Copy(d.commands, cmds)
}

// Handle answers msg. It returns false when msg does not start with the
// command prefix and should be ignored.
func (d *Dispatcher) Handle(msg string) (*session.Reply, bool) {
	if !strings.HasPrefix(msg, d.prefix) {
		return nil, false
	}
	args := strings.Fields(strings.TrimPrefix(msg, d.prefix))
	name := ""
	if len(args) > 0 {
		name = strings.ToLower(args[0])
		args = args[1:]
	}

	d.mu.Lock()
	cmd, ok := d.commands[name]
	d.mu.Unlock()
	if !ok {
		return &session.Reply{Text: d.wrongCommand()}, true
	}

	reply, err := cmd.Run(args)
	if err == nil {
		return reply, true
	}
	if text, ok := errors.PlayerMessage(err); ok {
		return &session.Reply{Text: text}, true
	}
	d.logger.Error("command failed",
		zap.Error(err),
		zap.String("command", name),
		zap.Strings("args", args))
	return &session.Reply{Text: InternalErrorMessage}, true
}

// wrongCommand returns the configured phrases in turn.
func (d *Dispatcher) wrongCommand() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.phrases) == 0 {
		return "Unknown command"
	}
	phrase := d.phrases[d.next%len(d.phrases)]
	d.next++
	return phrase
}

func (d *Dispatcher) help([]string) (*session.Reply, error) {
	d.mu.Lock()
	names := make([]string, 0, len(d.commands))
	for name := range d.commands {
		names = append(names, name)
	}
	usage := make(map[string]Command, len(d.commands))
	maps.Copy(usage, d.commands)
	d.mu.Unlock()

	slices.Sort(names)
	var sb strings.Builder
	for _, name := range names {
		cmd := usage[name]
		fmt.Fprintf(&sb, "%s%s: %s\n", d.prefix, cmd.Usage, cmd.Help)
	}
	return &session.Reply{Text: strings.TrimSuffix(sb.String(), "\n")}, nil
}
