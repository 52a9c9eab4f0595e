// Package lipgloss renders styled runs as terminal text using the
// Lipgloss styling library.
package lipgloss

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/animkit/codeblock"
)

// Renderer converts styled runs into terminal output for a single theme.
type Renderer struct {
	renderer *lipgloss.Renderer
	theme    *codeblock.Theme
}

// NewRenderer creates a Renderer for the given theme. If renderer is nil,
// the default lipgloss renderer is used; tests inject one with a fixed
// color profile.
func NewRenderer(theme *codeblock.Theme, renderer *lipgloss.Renderer) *Renderer {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return &Renderer{renderer: renderer, theme: theme}
}

// Render returns the runs as a single styled string, preserving run order
// and text exactly.
func (r *Renderer) Render(runs []codeblock.StyledRun) string {
	var sb strings.Builder
	for _, run := range runs {
		sb.WriteString(r.styleFor(run.Style).Render(run.Text))
	}
	return sb.String()
}

// RenderBlock renders the runs line by line on the theme background with
// padding, the terminal analog of drawing code over a background
// rectangle.
func (r *Renderer) RenderBlock(runs []codeblock.StyledRun) string {
	lines := SplitLines(runs)
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = r.Render(line)
	}

	blockStyle := r.renderer.NewStyle().Padding(1, 2)
	if bg := r.theme.Background(); bg != "" {
		blockStyle = blockStyle.Background(lipgloss.Color(bg))
	}
	return blockStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rendered...))
}

// TitleBar renders the language name in its GitHub color, the title card
// shown above a block.
func (r *Renderer) TitleBar(lang codeblock.Language) string {
	style := r.renderer.NewStyle().Bold(true).Padding(0, 1)
	if c := lang.Color(); c != "" {
		style = style.Foreground(lipgloss.Color(c))
	}
	if bg := r.theme.Background(); bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	return style.Render(lang.Name())
}

// styleFor converts a codeblock style into a lipgloss style scoped to this
// renderer. The theme background is applied per run so that backgrounds
// stay continuous across style boundaries.
func (r *Renderer) styleFor(s codeblock.Style) lipgloss.Style {
	style := r.renderer.NewStyle()
	if s.Foreground != "" {
		style = style.Foreground(lipgloss.Color(s.Foreground))
	}
	if bg := r.theme.Background(); bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Italic {
		style = style.Italic(true)
	}
	return style
}

// SplitLines splits a flat run sequence into per-line run slices, cutting
// runs at newline boundaries. The newline characters themselves are
// dropped; empty lines come back as empty slices.
func SplitLines(runs []codeblock.StyledRun) [][]codeblock.StyledRun {
	lines := [][]codeblock.StyledRun{}
	var current []codeblock.StyledRun

	for _, run := range runs {
		rest := run.Text
		for {
			head, tail, cut := strings.Cut(rest, "\n")
			if head != "" {
				current = append(current, codeblock.StyledRun{Text: head, Style: run.Style})
			}
			if !cut {
				break
			}
			lines = append(lines, current)
			current = nil
			rest = tail
		}
	}

	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}
