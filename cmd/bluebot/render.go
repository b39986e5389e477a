package main

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joeggg/discord-bot-2/internal/config"
	"github.com/joeggg/discord-bot-2/internal/engine"
	"github.com/joeggg/discord-bot-2/internal/render"
)

type renderOptions struct {
	fen        string
	format     string
	squareSize int
	output     string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a position given as FEN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				opts.format = cfg.Render.Format
			}
			if !cmd.Flags().Changed("size") {
				opts.squareSize = cfg.Render.SquareSize
			}
			return runRender(opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.fen, "fen", engine.InitialFEN, "position to render")
	cmd.Flags().StringVar(&opts.format, "format", config.FormatText, "output format: text, svg or png")
	cmd.Flags().IntVar(&opts.squareSize, "size", render.DefaultSquareSize, "square size in pixels for images")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func runRender(opts *renderOptions, stdout io.Writer) error {
	game, err := engine.NewGameFromFEN(opts.fen)
	if err != nil {
		return err
	}
	renderer, err := render.New(opts.format, opts.squareSize)
	if err != nil {
		return err
	}

	w := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	bw := bufio.NewWriter(w)
	if err := renderer.Render(bw, game.Snapshot()); err != nil {
		return err
	}
	return bw.Flush()
}
