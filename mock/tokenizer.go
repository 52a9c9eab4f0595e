// Package mock provides test doubles for codeblock interfaces.
package mock

import "github.com/animkit/codeblock"

// Compile-time interface verification.
var _ codeblock.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of codeblock.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(lang codeblock.Language, source string) ([]codeblock.Token, error)
}

func (t *Tokenizer) Tokenize(lang codeblock.Language, source string) ([]codeblock.Token, error) {
	return t.TokenizeFn(lang, source)
}
