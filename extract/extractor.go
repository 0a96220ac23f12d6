// Package extract discovers statically declared imports in JavaScript and
// TypeScript module sources.
package extract

import (
	"strings"

	"github.com/viant/parsly"
)

// Extractor returns the raw import specifiers of source in declaration order.
// Implementations must not perform I/O.
type Extractor interface {
	Extract(source string) ([]string, error)
}

// Func adapts a function to Extractor.
type Func func(source string) ([]string, error)

func (f Func) Extract(source string) ([]string, error) {
	return f(source)
}

type (
	// Service extracts module specifiers from import and re-export declarations:
	//
	//	import x, { y as z } from "./a.ts"
	//	import * as ns from "./b.ts"
	//	import type { T } from "./c.ts"
	//	import "./d.ts"
	//	export { y } from "./e.ts"
	//	export * from "./f.ts"
	//
	// Dynamic import("...") calls, import.meta and require are not static
	// declarations and are ignored.
	Service struct{}

	token struct {
		code int
		text string
	}
)

// New creates an import extractor.
func New() *Service {
	return &Service{}
}

// Extract returns import specifiers declared in source.
func (s *Service) Extract(source string) ([]string, error) {
	tokens, err := tokenize(source)
	if err != nil {
		return nil, err
	}
	var result []string
	for i := 0; i < len(tokens); i++ {
		if tokens[i].code != identifierToken {
			continue
		}
		if i > 0 && isPunct(tokens[i-1], '.') {
			continue // member access like foo.import
		}
		var specifier string
		var ok bool
		switch tokens[i].text {
		case "import":
			specifier, i, ok = importDeclaration(tokens, i+1)
		case "export":
			specifier, i, ok = exportDeclaration(tokens, i+1)
		default:
			continue
		}
		if ok {
			result = append(result, specifier)
		}
	}
	return result, nil
}

func tokenize(source string) ([]*token, error) {
	cursor := parsly.NewCursor("", []byte(source), 0)
	var tokens []*token
	for cursor.Pos < cursor.InputSize {
		candidates := expressionTokens
		if regexAllowed(tokens) {
			candidates = operandTokens
		}
		matched := cursor.MatchAfterOptional(whitespaceMatcher, candidates...)
		switch matched.Code {
		case parsly.EOF:
			return tokens, nil
		case parsly.Invalid:
			return nil, &ExtractionError{Offset: cursor.Pos, Err: cursor.NewError(punctMatcher)}
		case lineCommentToken, blockCommentToken:
			continue
		}
		tokens = append(tokens, &token{code: matched.Code, text: matched.Text(cursor)})
	}
	return tokens, nil
}

// regexAllowed reports whether a slash after the last token can only start
// a regular expression literal, that is the last token cannot end an operand.
func regexAllowed(tokens []*token) bool {
	if len(tokens) == 0 {
		return true
	}
	last := tokens[len(tokens)-1]
	switch last.code {
	case identifierToken:
		return operandKeywords[last.text]
	case punctToken:
		b := last.text[0]
		switch {
		case b == ')' || b == ']':
			return false
		case b >= '0' && b <= '9', b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
			return false
		case b == '_' || b == '$' || b >= 0x80:
			return false
		}
		return true
	}
	return false
}

var operandKeywords = map[string]bool{
	"return": true, "typeof": true, "instanceof": true, "in": true, "of": true, "new": true,
	"delete": true, "void": true, "throw": true, "case": true, "do": true, "else": true,
	"yield": true, "await": true,
}

// importDeclaration parses tokens following the import keyword. It returns
// the index of the last consumed token.
func importDeclaration(tokens []*token, i int) (string, int, bool) {
	if i >= len(tokens) {
		return "", i, false
	}
	if specifier, ok := stringValue(tokens[i]); ok {
		return specifier, i, true
	}
	if isPunct(tokens[i], '(') || isPunct(tokens[i], '.') {
		return "", i - 1, false
	}
	return fromClause(tokens, i)
}

func exportDeclaration(tokens []*token, i int) (string, int, bool) {
	if i >= len(tokens) {
		return "", i, false
	}
	start := i
	if tokens[i].code == identifierToken && tokens[i].text == "type" {
		i++
	}
	if i >= len(tokens) || !(isPunct(tokens[i], '*') || isPunct(tokens[i], '{')) {
		return "", start - 1, false
	}
	return fromClause(tokens, i)
}

// fromClause scans an import/export clause up to `from "specifier"`.
func fromClause(tokens []*token, i int) (string, int, bool) {
	start := i
	for ; i < len(tokens); i++ {
		current := tokens[i]
		if current.code == identifierToken {
			if current.text == "from" && i+1 < len(tokens) {
				if specifier, ok := stringValue(tokens[i+1]); ok {
					return specifier, i + 1, true
				}
			}
			continue
		}
		if current.code == punctToken && strings.ContainsAny(current.text, "{},*") {
			continue
		}
		break
	}
	return "", start - 1, false
}

func stringValue(t *token) (string, bool) {
	switch t.code {
	case doubleQuotedToken, singleQuotedToken:
	default:
		return "", false
	}
	if len(t.text) < 2 {
		return "", false
	}
	return t.text[1 : len(t.text)-1], true
}

func isPunct(t *token, b byte) bool {
	return t.code == punctToken && len(t.text) == 1 && t.text[0] == b
}
