package codeblock

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Language identifies one of the supported programming languages.
type Language string

// Supported languages.
const (
	C          Language = "c"
	CPP        Language = "c++"
	CSharp     Language = "c#"
	Fortran    Language = "fortran"
	Go         Language = "go"
	Haskell    Language = "haskell"
	Java       Language = "java"
	JavaScript Language = "javascript"
	Lua        Language = "lua"
	Python     Language = "python"
	Ruby       Language = "ruby"
	Rust       Language = "rust"
	SQL        Language = "sql"
	TypeScript Language = "typescript"
)

// languageInfo holds per-language display metadata.
type languageInfo struct {
	name       string   // display name for the title card
	color      string   // GitHub language color
	extensions []string // file extensions for detection
}

// Colors follow github.com/ozh/github-colors.
var languages = map[Language]languageInfo{
	C:          {name: "C", color: "#555555", extensions: []string{".c", ".h"}},
	CPP:        {name: "C++", color: "#f34b7d", extensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh"}},
	CSharp:     {name: "C#", color: "#178600", extensions: []string{".cs"}},
	Fortran:    {name: "Fortran", color: "#4d41b1", extensions: []string{".f", ".f90", ".f95", ".f03"}},
	Go:         {name: "Go", color: "#00ADD8", extensions: []string{".go"}},
	Haskell:    {name: "Haskell", color: "#5e5086", extensions: []string{".hs"}},
	Java:       {name: "Java", color: "#b07219", extensions: []string{".java"}},
	JavaScript: {name: "JavaScript", color: "#f1e05a", extensions: []string{".js", ".mjs", ".cjs"}},
	Lua:        {name: "Lua", color: "#000080", extensions: []string{".lua"}},
	Python:     {name: "Python", color: "#3572A5", extensions: []string{".py"}},
	Ruby:       {name: "Ruby", color: "#701516", extensions: []string{".rb"}},
	Rust:       {name: "Rust", color: "#dea584", extensions: []string{".rs"}},
	SQL:        {name: "SQL", color: "#e38c00", extensions: []string{".sql"}},
	TypeScript: {name: "TypeScript", color: "#3178c6", extensions: []string{".ts"}},
}

// Supported reports whether the language is part of the supported set.
func (l Language) Supported() bool {
	_, ok := languages[l]
	return ok
}

// Name returns the display name shown on the title card above a block.
// Unknown languages return their raw tag.
func (l Language) Name() string {
	if info, ok := languages[l]; ok {
		return info.name
	}
	return string(l)
}

// Color returns the GitHub language color used for the title card, or an
// empty string for unknown languages.
func (l Language) Color() string {
	return languages[l].color
}

// Languages returns all supported languages in display-name order.
func Languages() []Language {
	return []Language{
		C, CPP, CSharp, Fortran, Go, Haskell, Java,
		JavaScript, Lua, Python, Ruby, Rust, SQL, TypeScript,
	}
}

// DetectLanguage guesses the language from a file path's extension.
// Returns false if no supported language matches.
func DetectLanguage(path string) (Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "", false
	}
	for _, lang := range Languages() {
		for _, e := range languages[lang].extensions {
			if e == ext {
				return lang, true
			}
		}
	}
	return "", false
}

// UnsupportedLanguageError reports a request for a language the tokenizer
// has no support for.
type UnsupportedLanguageError struct {
	Language Language
}

// Error implements the error interface.
func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("language %q is not supported", string(e.Language))
}
