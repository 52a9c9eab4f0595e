package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"

	"github.com/animkit/codeblock"
)

// categoryFor maps chroma token types to codeblock categories.
func categoryFor(tt chromalib.TokenType) codeblock.Category {
	switch tt {
	// Keywords, including type keywords like C's "int"
	case chromalib.Keyword, chromalib.KeywordDeclaration, chromalib.KeywordNamespace,
		chromalib.KeywordPseudo, chromalib.KeywordReserved, chromalib.KeywordType:
		return codeblock.CategoryKeyword

	// Preprocessor and compiler directives
	case chromalib.CommentPreproc, chromalib.CommentPreprocFile:
		return codeblock.CategoryDirective

	// Literal keywords (true, false, nil) and named constants
	case chromalib.KeywordConstant, chromalib.NameConstant:
		return codeblock.CategoryConstant

	// Comments
	case chromalib.Comment, chromalib.CommentHashbang, chromalib.CommentMultiline,
		chromalib.CommentSingle, chromalib.CommentSpecial:
		return codeblock.CategoryComment

	// Function names, including builtins
	case chromalib.NameFunction, chromalib.NameFunctionMagic,
		chromalib.NameBuiltin, chromalib.NameBuiltinPseudo:
		return codeblock.CategoryFunction

	// Class-like names
	case chromalib.NameClass, chromalib.NameException, chromalib.NameEntity:
		return codeblock.CategoryClass

	// Other names
	case chromalib.Name, chromalib.NameAttribute, chromalib.NameDecorator,
		chromalib.NameLabel, chromalib.NameNamespace, chromalib.NameOther,
		chromalib.NameProperty, chromalib.NameTag, chromalib.NameVariable,
		chromalib.NameVariableClass, chromalib.NameVariableGlobal,
		chromalib.NameVariableInstance, chromalib.NameVariableMagic:
		return codeblock.CategoryIdentifier

	// Strings
	case chromalib.String, chromalib.StringAffix, chromalib.StringBacktick,
		chromalib.StringChar, chromalib.StringDelimiter, chromalib.StringDoc,
		chromalib.StringDouble, chromalib.StringEscape, chromalib.StringHeredoc,
		chromalib.StringInterpol, chromalib.StringOther, chromalib.StringRegex,
		chromalib.StringSingle, chromalib.StringSymbol:
		return codeblock.CategoryString

	// Numbers
	case chromalib.Number, chromalib.NumberBin, chromalib.NumberFloat,
		chromalib.NumberHex, chromalib.NumberInteger, chromalib.NumberIntegerLong,
		chromalib.NumberOct:
		return codeblock.CategoryNumber

	// Operators
	case chromalib.Operator, chromalib.OperatorWord:
		return codeblock.CategoryOperator

	// Punctuation
	case chromalib.Punctuation:
		return codeblock.CategoryPunctuation

	// Whitespace resolves through the theme fallback
	case chromalib.TextWhitespace:
		return codeblock.CategoryWhitespace

	default:
		return codeblock.CategoryPlain
	}
}
