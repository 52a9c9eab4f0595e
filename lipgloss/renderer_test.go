package lipgloss_test

import (
	"io"
	"strings"
	"testing"

	lipglosslib "github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animkit/codeblock"
	"github.com/animkit/codeblock/lipgloss"
)

// trueColorRenderer creates a lipgloss renderer that outputs true colors.
// This is useful for testing color output without affecting global state.
func trueColorRenderer() *lipglosslib.Renderer {
	r := lipglosslib.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders run text with foreground colors", func(t *testing.T) {
		t.Parallel()

		r := lipgloss.NewRenderer(codeblock.OneDark(), trueColorRenderer())
		runs := []codeblock.StyledRun{
			{Text: "package", Style: codeblock.Style{Foreground: "#C678DD"}},
			{Text: " ", Style: codeblock.Style{Foreground: "#FFFFFF"}},
			{Text: "main", Style: codeblock.Style{Foreground: "#FFFFFF"}},
		}

		out := r.Render(runs)

		assert.Contains(t, out, "package")
		assert.Contains(t, out, "main")
		// #C678DD as a truecolor foreground sequence
		assert.Contains(t, out, "198;120;221")
	})

	t.Run("applies bold and italic", func(t *testing.T) {
		t.Parallel()

		r := lipgloss.NewRenderer(codeblock.OneDark(), trueColorRenderer())
		plain := r.Render([]codeblock.StyledRun{{Text: "x", Style: codeblock.Style{Foreground: "#FFFFFF"}}})
		bold := r.Render([]codeblock.StyledRun{{Text: "x", Style: codeblock.Style{Foreground: "#FFFFFF", Bold: true}}})

		assert.NotEqual(t, plain, bold)
	})

	t.Run("empty runs render empty", func(t *testing.T) {
		t.Parallel()

		r := lipgloss.NewRenderer(codeblock.OneDark(), trueColorRenderer())

		assert.Empty(t, r.Render(nil))
	})
}

func TestRenderer_RenderBlock(t *testing.T) {
	t.Parallel()

	r := lipgloss.NewRenderer(codeblock.OneDark(), trueColorRenderer())
	runs := []codeblock.StyledRun{
		{Text: "package main\n", Style: codeblock.Style{Foreground: "#FFFFFF"}},
		{Text: "func main() {}\n", Style: codeblock.Style{Foreground: "#FFFFFF"}},
	}

	out := r.RenderBlock(runs)

	assert.Contains(t, out, "package main")
	assert.Contains(t, out, "func main() {}")
	// #282C34 block background as a truecolor sequence
	assert.Contains(t, out, "40;44;52")
}

func TestRenderer_TitleBar(t *testing.T) {
	t.Parallel()

	r := lipgloss.NewRenderer(codeblock.OneDark(), trueColorRenderer())

	out := r.TitleBar(codeblock.Go)

	assert.Contains(t, out, "Go")
	// Go's GitHub color #00ADD8
	assert.Contains(t, out, "0;173;216")
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	style := codeblock.Style{Foreground: "#FFFFFF"}

	t.Run("splits a run at newline boundaries", func(t *testing.T) {
		t.Parallel()

		runs := []codeblock.StyledRun{
			{Text: "a\nb\nc", Style: style},
		}

		lines := lipgloss.SplitLines(runs)

		require.Len(t, lines, 3)
		assert.Equal(t, "a", lines[0][0].Text)
		assert.Equal(t, "b", lines[1][0].Text)
		assert.Equal(t, "c", lines[2][0].Text)
	})

	t.Run("keeps runs on the same line together", func(t *testing.T) {
		t.Parallel()

		keyword := codeblock.Style{Foreground: "#C678DD"}
		runs := []codeblock.StyledRun{
			{Text: "if", Style: keyword},
			{Text: " ok ", Style: style},
			{Text: "{", Style: style},
			{Text: "\n", Style: style},
			{Text: "}", Style: style},
		}

		lines := lipgloss.SplitLines(runs)

		require.Len(t, lines, 2)
		require.Len(t, lines[0], 3)
		assert.Equal(t, keyword, lines[0][0].Style, "styles survive the split")
		assert.Equal(t, "}", lines[1][0].Text)
	})

	t.Run("preserves empty lines", func(t *testing.T) {
		t.Parallel()

		runs := []codeblock.StyledRun{
			{Text: "a\n\nb", Style: style},
		}

		lines := lipgloss.SplitLines(runs)

		require.Len(t, lines, 3)
		assert.Empty(t, lines[1])
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, lipgloss.SplitLines(nil))
	})

	t.Run("line text matches joined source lines", func(t *testing.T) {
		t.Parallel()

		source := "one\ntwo three\nfour\n"
		runs := []codeblock.StyledRun{{Text: source, Style: style}}

		lines := lipgloss.SplitLines(runs)

		var got []string
		for _, line := range lines {
			var text string
			for _, run := range line {
				text += run.Text
			}
			got = append(got, text)
		}
		assert.Equal(t, strings.Split(strings.TrimSuffix(source, "\n"), "\n"), got)
	})
}
