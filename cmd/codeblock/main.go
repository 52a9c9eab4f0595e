package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/animkit/codeblock"
	"github.com/animkit/codeblock/bubbletea"
	"github.com/animkit/codeblock/chroma"
	"github.com/animkit/codeblock/lipgloss"
)

// ErrUnknownLanguage is returned when no language flag is given and none
// can be detected from the file extension.
var ErrUnknownLanguage = errors.New("cannot detect language; use --language")

// App encapsulates the command logic for testing.
type App struct {
	Stdout   io.Writer
	Language codeblock.Language // empty means detect from the file extension
	RunTime  time.Duration
	Static   bool

	// Play overrides how a block is played; nil uses a terminal player.
	Play func(ctx context.Context, block bubbletea.Block) error
}

// Run highlights the file at path and either prints it (static mode) or
// plays the create animation.
func (a *App) Run(ctx context.Context, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	lang := a.Language
	if lang == "" {
		detected, ok := codeblock.DetectLanguage(path)
		if !ok {
			return ErrUnknownLanguage
		}
		lang = detected
	}

	highlighter, err := codeblock.NewHighlighter(chroma.NewTokenizer())
	if err != nil {
		return err
	}

	theme := codeblock.OneDark()
	runs, err := highlighter.Highlight(string(source), lang, theme)
	if err != nil {
		return err
	}

	renderer := lipgloss.NewRenderer(theme, nil)
	if a.Static {
		fmt.Fprintln(a.Stdout, renderer.TitleBar(lang))
		fmt.Fprintln(a.Stdout, renderer.RenderBlock(runs))
		return nil
	}

	block := bubbletea.NewBlock(lang, runs,
		bubbletea.WithRunTime(a.RunTime),
		bubbletea.WithBlockRenderer(renderer),
	)
	play := a.Play
	if play == nil {
		play = bubbletea.NewPlayer().Play
	}
	return play(ctx, block)
}

func main() {
	var (
		language string
		runTime  time.Duration
		static   bool
	)

	rootCmd := &cobra.Command{
		Use:   "codeblock FILE",
		Short: "Render a source file as an animated, syntax highlighted code block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := &App{
				Stdout:   cmd.OutOrStdout(),
				Language: codeblock.Language(strings.ToLower(language)),
				RunTime:  runTime,
				Static:   static,
			}
			return app.Run(cmd.Context(), args[0])
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&language, "language", "l", "",
		"language of the source file (default: detect from extension)")
	rootCmd.Flags().DurationVar(&runTime, "run-time", bubbletea.DefaultRunTime,
		"duration of the create animation")
	rootCmd.Flags().BoolVar(&static, "static", false,
		"print the highlighted block once instead of animating")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
