package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/joeggg/discord-bot-2/internal/bot"
	"github.com/joeggg/discord-bot-2/internal/config"
	"github.com/joeggg/discord-bot-2/internal/logging"
	"github.com/joeggg/discord-bot-2/internal/render"
	"github.com/joeggg/discord-bot-2/internal/session"
)

const prompt = "> "

func newPlayCmd(opts *rootOptions) *cobra.Command {
	var script string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Read bot commands from stdin and print the replies",
		Long: `Read bot commands such as "%chess" or "%chess e2 e4" one per line and
print each reply. Board images are written to render.output_dir. Blank
lines and lines starting with # are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			d, err := newDispatcher(cfg, logger)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if script != "" {
				f, err := os.Open(script)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			r := &repl{
				dispatcher: d,
				out:        cmd.OutOrStdout(),
				outputDir:  cfg.Render.OutputDir,
				prompt:     isTerminal(in),
			}
			return r.run(in)
		},
	}
	cmd.Flags().StringVar(&script, "script", "", "read commands from a file instead of stdin")
	return cmd
}

func newDispatcher(cfg *config.Config, logger *zap.Logger) (*bot.Dispatcher, error) {
	renderer, err := render.New(cfg.Render.Format, cfg.Render.SquareSize)
	if err != nil {
		return nil, err
	}
	games, err := session.NewManager(renderer, logger)
	if err != nil {
		return nil, err
	}
	return bot.NewDispatcher(cfg, games, logger), nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// repl feeds input lines to the dispatcher.
type repl struct {
	dispatcher *bot.Dispatcher
	out        io.Writer
	outputDir  string
	prompt     bool
	images     int
}

func (r *repl) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if r.prompt {
			fmt.Fprint(r.out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		reply, ok := r.dispatcher.Handle(line)
		if !ok {
			continue
		}
		if err := r.print(reply); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// print writes the reply text and saves any attachment, numbering the files
// so that earlier boards are kept.
func (r *repl) print(reply *session.Reply) error {
	fmt.Fprintln(r.out, reply.Text)
	if reply.Image == nil {
		return nil
	}
	r.images++
	path := filepath.Join(r.outputDir, fmt.Sprintf("%03d-%s", r.images, reply.ImageName))
	if err := os.WriteFile(path, reply.Image, 0o644); err != nil {
		return fmt.Errorf("save board image: %w", err)
	}
	fmt.Fprintf(r.out, "[attachment: %s]\n", path)
	return nil
}
