package codeblock

import (
	"fmt"
	"strings"
	"sync"
)

// Theme maps syntax categories to visual styles. A theme built with
// NewTheme covers every category in Categories and carries a fallback
// style for anything else a tokenizer emits. Themes are immutable after
// construction and safe for concurrent reads.
type Theme struct {
	styles      map[Category]Style
	fallback    Style
	hasFallback bool
	background  string
}

// ThemeOption configures a Theme during construction.
type ThemeOption func(*Theme)

// WithBackground sets the block background color for the theme.
func WithBackground(hex string) ThemeOption {
	return func(t *Theme) {
		t.background = hex
	}
}

// NewTheme creates a Theme from a category→style table and a mandatory
// fallback style. It returns *IncompleteThemeError if the table is missing
// an entry for any category in Categories.
func NewTheme(styles map[Category]Style, fallback Style, opts ...ThemeOption) (*Theme, error) {
	var missing []Category
	for _, cat := range Categories() {
		if _, ok := styles[cat]; !ok {
			missing = append(missing, cat)
		}
	}
	if len(missing) > 0 {
		return nil, &IncompleteThemeError{Missing: missing}
	}

	copied := make(map[Category]Style, len(styles))
	for cat, style := range styles {
		copied[cat] = style
	}

	t := &Theme{
		styles:      copied,
		fallback:    fallback,
		hasFallback: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// StyleFor resolves the style for a category: the specific entry when
// present, else the fallback. The boolean is false only when the theme has
// neither, which cannot happen for themes built with NewTheme.
func (t *Theme) StyleFor(cat Category) (Style, bool) {
	if s, ok := t.styles[cat]; ok {
		return s, true
	}
	if t.hasFallback {
		return t.fallback, true
	}
	return Style{}, false
}

// Fallback returns the style used for categories without a specific entry.
func (t *Theme) Fallback() Style {
	return t.fallback
}

// Background returns the block background color, or an empty string when
// the theme does not set one.
func (t *Theme) Background() string {
	return t.background
}

// IncompleteThemeError reports categories a theme defines no style for.
type IncompleteThemeError struct {
	Missing []Category
}

// Error implements the error interface.
func (e *IncompleteThemeError) Error() string {
	names := make([]string, len(e.Missing))
	for i, cat := range e.Missing {
		names[i] = string(cat)
	}
	return fmt.Sprintf("theme is missing styles for: %s", strings.Join(names, ", "))
}

// OneDark returns the built-in dark theme, the 'One Dark' scheme from the
// Atom editor. The returned value is shared and must not be modified;
// callers wanting variation construct their own theme with NewTheme.
var OneDark = sync.OnceValue(func() *Theme {
	theme, err := NewTheme(map[Category]Style{
		CategoryKeyword:     {Foreground: "#C678DD"}, // Purple
		CategoryDirective:   {Foreground: "#C678DD"}, // Purple
		CategoryConstant:    {Foreground: "#D19A66"}, // Orange
		CategoryFunction:    {Foreground: "#61AFEF"}, // Blue
		CategoryClass:       {Foreground: "#E5C07B"}, // Yellow
		CategoryIdentifier:  {Foreground: "#E06C75"}, // Red
		CategoryString:      {Foreground: "#98C379"}, // Green
		CategoryNumber:      {Foreground: "#D19A66"}, // Orange
		CategoryOperator:    {Foreground: "#56B6C2"}, // Cyan
		CategoryPunctuation: {Foreground: "#56B6C2"}, // Cyan
		CategoryComment:     {Foreground: "#888888"}, // Gray
	},
		Style{Foreground: "#FFFFFF"},
		WithBackground("#282C34"),
	)
	if err != nil {
		// The built-in table covers every category.
		panic(err)
	}
	return theme
})
