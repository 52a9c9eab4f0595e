// Package codeblock turns blocks of source code into styled text runs for
// animated rendering in the terminal.
package codeblock

// Category classifies a token by its syntactic role.
type Category string

// Categories emitted by tokenizers.
const (
	CategoryKeyword     Category = "keyword"
	CategoryDirective   Category = "directive"
	CategoryConstant    Category = "constant"
	CategoryFunction    Category = "function"
	CategoryClass       Category = "class"
	CategoryIdentifier  Category = "identifier"
	CategoryString      Category = "string"
	CategoryNumber      Category = "number"
	CategoryOperator    Category = "operator"
	CategoryPunctuation Category = "punctuation"
	CategoryComment     Category = "comment"

	// Whitespace and plain text resolve through a theme's fallback style
	// and are not part of the required category set.
	CategoryWhitespace Category = "whitespace"
	CategoryPlain      Category = "plain"
)

// Categories returns the categories every theme must define a style for.
func Categories() []Category {
	return []Category{
		CategoryKeyword,
		CategoryDirective,
		CategoryConstant,
		CategoryFunction,
		CategoryClass,
		CategoryIdentifier,
		CategoryString,
		CategoryNumber,
		CategoryOperator,
		CategoryPunctuation,
		CategoryComment,
	}
}

// Token is a classified substring of source code. Tokens are emitted in
// source order; concatenating their text reconstructs the input exactly.
type Token struct {
	Text     string   // The text content of this token
	Category Category // Syntactic role assigned by the tokenizer
}

// Style represents the visual styling for a run of text.
type Style struct {
	Foreground string // Hex color code (e.g., "#ff0000") or empty for default
	Bold       bool   // Whether the text should be bold
	Italic     bool   // Whether the text should be italic
}

// StyledRun pairs a substring with its resolved style. It is the unit
// handed to the rendering layer.
type StyledRun struct {
	Text  string
	Style Style
}

// Tokenizer extracts syntax tokens from source code.
type Tokenizer interface {
	// Tokenize splits source code into classified tokens for the given
	// language. Returns *UnsupportedLanguageError if the language has no
	// tokenizer support, and an empty slice for empty source.
	Tokenize(lang Language, source string) ([]Token, error)
}
