package codeblock

import "errors"

// Highlighter converts source code into styled runs by pairing a
// Tokenizer's output with a Theme.
type Highlighter struct {
	tokenizer Tokenizer
}

// NewHighlighter creates a Highlighter backed by the given tokenizer.
func NewHighlighter(tokenizer Tokenizer) (*Highlighter, error) {
	if tokenizer == nil {
		return nil, errors.New("codeblock: tokenizer cannot be nil")
	}
	return &Highlighter{tokenizer: tokenizer}, nil
}

// Highlight tokenizes source and resolves each token's category against
// theme, returning one run per token in source order. Concatenating the
// run texts reproduces source exactly; tokens are never merged or split.
// Empty source yields an empty run slice. On error no partial output is
// returned.
func (h *Highlighter) Highlight(source string, lang Language, theme *Theme) ([]StyledRun, error) {
	tokens, err := h.tokenizer.Tokenize(lang, source)
	if err != nil {
		return nil, err
	}

	runs := make([]StyledRun, 0, len(tokens))
	for _, tok := range tokens {
		style, ok := theme.StyleFor(tok.Category)
		if !ok {
			// Unreachable for themes built with NewTheme, which require
			// a fallback.
			return nil, &IncompleteThemeError{Missing: []Category{tok.Category}}
		}
		runs = append(runs, StyledRun{Text: tok.Text, Style: style})
	}
	return runs, nil
}
