package codeblock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animkit/codeblock"
)

func TestNewTheme(t *testing.T) {
	t.Parallel()

	t.Run("rejects a table missing required categories", func(t *testing.T) {
		t.Parallel()

		styles := map[codeblock.Category]codeblock.Style{
			codeblock.CategoryKeyword: {Foreground: "#ff0000"},
		}

		theme, err := codeblock.NewTheme(styles, codeblock.Style{})

		assert.Nil(t, theme)
		var themeErr *codeblock.IncompleteThemeError
		require.ErrorAs(t, err, &themeErr)
		assert.NotContains(t, themeErr.Missing, codeblock.CategoryKeyword)
		assert.Contains(t, themeErr.Missing, codeblock.CategoryString)
		assert.Contains(t, themeErr.Missing, codeblock.CategoryComment)
		assert.Len(t, themeErr.Missing, len(codeblock.Categories())-1)
	})

	t.Run("accepts a complete table", func(t *testing.T) {
		t.Parallel()

		theme := testTheme(t)

		for _, cat := range codeblock.Categories() {
			style, ok := theme.StyleFor(cat)
			assert.True(t, ok)
			assert.NotEmpty(t, style.Foreground, "category %s", cat)
		}
	})

	t.Run("unknown categories resolve to the fallback", func(t *testing.T) {
		t.Parallel()

		theme := testTheme(t)

		for _, cat := range []codeblock.Category{
			codeblock.CategoryWhitespace,
			codeblock.CategoryPlain,
			codeblock.Category("from-a-future-tokenizer"),
		} {
			style, ok := theme.StyleFor(cat)
			assert.True(t, ok)
			assert.Equal(t, theme.Fallback(), style, "category %s", cat)
		}
	})

	t.Run("copies the style table", func(t *testing.T) {
		t.Parallel()

		styles := map[codeblock.Category]codeblock.Style{}
		for _, cat := range codeblock.Categories() {
			styles[cat] = codeblock.Style{Foreground: "#111111"}
		}
		theme, err := codeblock.NewTheme(styles, codeblock.Style{Foreground: "#222222"})
		require.NoError(t, err)

		styles[codeblock.CategoryKeyword] = codeblock.Style{Foreground: "#999999"}

		style, ok := theme.StyleFor(codeblock.CategoryKeyword)
		require.True(t, ok)
		assert.Equal(t, "#111111", style.Foreground, "theme is immutable after construction")
	})

	t.Run("background option", func(t *testing.T) {
		t.Parallel()

		styles := map[codeblock.Category]codeblock.Style{}
		for _, cat := range codeblock.Categories() {
			styles[cat] = codeblock.Style{Foreground: "#111111"}
		}

		plain, err := codeblock.NewTheme(styles, codeblock.Style{})
		require.NoError(t, err)
		assert.Empty(t, plain.Background())

		dark, err := codeblock.NewTheme(styles, codeblock.Style{}, codeblock.WithBackground("#101010"))
		require.NoError(t, err)
		assert.Equal(t, "#101010", dark.Background())
	})
}

func TestIncompleteThemeError_Error(t *testing.T) {
	t.Parallel()

	err := &codeblock.IncompleteThemeError{
		Missing: []codeblock.Category{codeblock.CategoryKeyword, codeblock.CategoryString},
	}

	assert.Equal(t, "theme is missing styles for: keyword, string", err.Error())
}

func TestOneDark(t *testing.T) {
	t.Parallel()

	theme := codeblock.OneDark()

	t.Run("covers every required category", func(t *testing.T) {
		t.Parallel()

		for _, cat := range codeblock.Categories() {
			style, ok := theme.StyleFor(cat)
			assert.True(t, ok)
			assert.NotEmpty(t, style.Foreground, "category %s", cat)
		}
	})

	t.Run("uses the One Dark palette", func(t *testing.T) {
		t.Parallel()

		keyword, _ := theme.StyleFor(codeblock.CategoryKeyword)
		assert.Equal(t, "#C678DD", keyword.Foreground)

		str, _ := theme.StyleFor(codeblock.CategoryString)
		assert.Equal(t, "#98C379", str.Foreground)

		assert.Equal(t, "#FFFFFF", theme.Fallback().Foreground)
		assert.Equal(t, "#282C34", theme.Background())
	})

	t.Run("returns the shared instance", func(t *testing.T) {
		t.Parallel()

		assert.Same(t, theme, codeblock.OneDark())
	})
}
