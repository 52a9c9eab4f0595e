// Package chroma provides a tokenizer backed by the chroma syntax
// highlighting library.
package chroma

import (
	"fmt"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/animkit/codeblock"
)

// Compile-time interface verification.
var _ codeblock.Tokenizer = (*Tokenizer)(nil)

// Tokenizer extracts syntax tokens using chroma lexers.
type Tokenizer struct{}

// NewTokenizer creates a new chroma-based tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits source code into classified tokens for the given
// language. Returns *codeblock.UnsupportedLanguageError if the language is
// outside the supported set or has no chroma lexer, and an empty slice for
// empty source. The returned token texts tile the input exactly.
func (t *Tokenizer) Tokenize(lang codeblock.Language, source string) ([]codeblock.Token, error) {
	if !lang.Supported() {
		return nil, &codeblock.UnsupportedLanguageError{Language: lang}
	}

	lexer := lexers.Get(string(lang))
	if lexer == nil {
		return nil, &codeblock.UnsupportedLanguageError{Language: lang}
	}

	if source == "" {
		return []codeblock.Token{}, nil
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil, fmt.Errorf("chroma: tokenizing %s source: %w", lang.Name(), err)
	}

	var tokens []codeblock.Token
	total := 0
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, codeblock.Token{
			Text:     token.Value,
			Category: categoryFor(token.Type),
		})
		total += len(token.Value)
	}

	return trimEnsuredNewline(tokens, total, source), nil
}

// trimEnsuredNewline drops the trailing newline some lexers append to
// input that does not end with one (chroma's EnsureNL), keeping the
// tiling guarantee: token texts must reconstruct the source exactly.
func trimEnsuredNewline(tokens []codeblock.Token, total int, source string) []codeblock.Token {
	if total != len(source)+1 || len(tokens) == 0 {
		return tokens
	}
	last := &tokens[len(tokens)-1]
	if !strings.HasSuffix(last.Text, "\n") {
		return tokens
	}
	last.Text = strings.TrimSuffix(last.Text, "\n")
	if last.Text == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}
