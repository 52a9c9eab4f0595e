// Package bubbletea provides an animated terminal code block built on the
// Bubble Tea framework.
package bubbletea

import (
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	lipglosslib "github.com/charmbracelet/lipgloss"

	"github.com/animkit/codeblock"
	"github.com/animkit/codeblock/lipgloss"
)

// DefaultRunTime is how long the create animation takes when no run time
// is configured.
const DefaultRunTime = 2 * time.Second

// frameInterval is the typewriter tick rate.
const frameInterval = time.Second / 30

// tickMsg advances the typewriter animation by one frame.
type tickMsg time.Time

// phase tracks the animation state of a block.
type phase int

const (
	phaseCreating phase = iota
	phaseIdle
	phaseUncreating
)

// Block is a Bubble Tea model that reveals highlighted source code glyph
// by glyph, with a language title card above it. Pressing r replays the
// create animation and u plays it in reverse.
type Block struct {
	lang     codeblock.Language
	runs     []codeblock.StyledRun
	renderer *lipgloss.Renderer
	keymap   KeyMap
	viewport viewport.Model
	runTime  time.Duration
	total    int // rune count across all runs
	visible  int // revealed rune count
	phase    phase
	ready    bool
}

// BlockOption configures a Block.
type BlockOption func(*blockConfig)

type blockConfig struct {
	runTime  time.Duration
	renderer *lipgloss.Renderer
	keymap   *KeyMap
}

// WithRunTime sets how long the create animation takes. A zero or
// negative duration reveals the block immediately.
func WithRunTime(d time.Duration) BlockOption {
	return func(cfg *blockConfig) {
		cfg.runTime = d
	}
}

// WithBlockRenderer sets the renderer used to draw the block.
func WithBlockRenderer(r *lipgloss.Renderer) BlockOption {
	return func(cfg *blockConfig) {
		cfg.renderer = r
	}
}

// WithKeyMap sets custom key bindings for the block.
func WithKeyMap(km KeyMap) BlockOption {
	return func(cfg *blockConfig) {
		cfg.keymap = &km
	}
}

// NewBlock creates a Block for the given language and styled runs.
func NewBlock(lang codeblock.Language, runs []codeblock.StyledRun, opts ...BlockOption) Block {
	cfg := &blockConfig{runTime: DefaultRunTime}
	for _, opt := range opts {
		opt(cfg)
	}

	renderer := cfg.renderer
	if renderer == nil {
		renderer = lipgloss.NewRenderer(codeblock.OneDark(), nil)
	}

	keymap := DefaultKeyMap()
	if cfg.keymap != nil {
		keymap = *cfg.keymap
	}

	b := Block{
		lang:     lang,
		runs:     runs,
		renderer: renderer,
		keymap:   keymap,
		runTime:  cfg.runTime,
		total:    runeCount(runs),
	}
	if b.runTime <= 0 {
		b.visible = b.total
		b.phase = phaseIdle
	}
	return b
}

// Init implements tea.Model.
func (b Block) Init() tea.Cmd {
	if b.phase == phaseCreating && b.total > 0 {
		return tick()
	}
	return nil
}

// Update implements tea.Model.
func (b Block) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.Quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.Replay):
			// Ignored mid-animation: a second tick chain would double
			// the reveal speed.
			if b.phase != phaseIdle {
				return b, nil
			}
			b.visible = 0
			b.phase = phaseCreating
			b.syncContent()
			return b, tick()
		case key.Matches(msg, b.keymap.Uncreate):
			if b.phase != phaseIdle || b.visible == 0 {
				return b, nil
			}
			b.phase = phaseUncreating
			return b, tick()
		}

	case tea.WindowSizeMsg:
		headerHeight := lipglosslib.Height(b.titleView()) + 1 // title + help line
		if !b.ready {
			b.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			b.ready = true
		} else {
			b.viewport.Width = msg.Width
			b.viewport.Height = msg.Height - headerHeight
		}
		b.syncContent()

	case tickMsg:
		switch b.phase {
		case phaseCreating:
			b.visible += b.step()
			if b.visible >= b.total {
				b.visible = b.total
				b.phase = phaseIdle
			}
		case phaseUncreating:
			b.visible -= b.step()
			if b.visible <= 0 {
				b.visible = 0
				b.phase = phaseIdle
			}
		}
		b.syncContent()
		if b.phase != phaseIdle {
			return b, tick()
		}
		return b, nil
	}

	var cmd tea.Cmd
	b.viewport, cmd = b.viewport.Update(msg)
	return b, cmd
}

// View implements tea.Model.
func (b Block) View() string {
	if !b.ready {
		return "Loading..."
	}
	return b.titleView() + "\n" + b.viewport.View() + "\n" + b.helpView()
}

// Visible returns how many of the block's runes are currently revealed.
func (b Block) Visible() int {
	return b.visible
}

func (b Block) titleView() string {
	return b.renderer.TitleBar(b.lang)
}

func (b Block) helpView() string {
	return " r replay · u uncreate · q quit"
}

// step returns how many runes to reveal per frame so the full reveal
// takes roughly the configured run time.
func (b Block) step() int {
	if b.runTime <= 0 {
		return b.total
	}
	step := int(float64(b.total) * float64(frameInterval) / float64(b.runTime))
	if step < 1 {
		step = 1
	}
	return step
}

// syncContent re-renders the revealed prefix into the viewport.
func (b *Block) syncContent() {
	if !b.ready {
		return
	}
	b.viewport.SetContent(b.renderer.RenderBlock(VisibleRuns(b.runs, b.visible)))
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// VisibleRuns returns the prefix of runs containing the first n runes.
// Only the boundary run is cut, and only its text; styles are never
// altered, so the result is a tiling prefix of the input.
func VisibleRuns(runs []codeblock.StyledRun, n int) []codeblock.StyledRun {
	if n <= 0 {
		return nil
	}
	var out []codeblock.StyledRun
	remaining := n
	for _, run := range runs {
		rc := utf8.RuneCountInString(run.Text)
		if rc <= remaining {
			out = append(out, run)
			remaining -= rc
			if remaining == 0 {
				break
			}
			continue
		}
		runes := []rune(run.Text)
		out = append(out, codeblock.StyledRun{Text: string(runes[:remaining]), Style: run.Style})
		break
	}
	return out
}

// runeCount returns the total number of runes across all runs.
func runeCount(runs []codeblock.StyledRun) int {
	total := 0
	for _, run := range runs {
		total += utf8.RuneCountInString(run.Text)
	}
	return total
}
