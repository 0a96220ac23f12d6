package matchers

import (
	"github.com/viant/parsly"
)

// punct consumes a single byte that no other token claims: operators,
// braces, separators and any UTF-8 continuation byte.
type punct struct{}

func (p *punct) Match(cursor *parsly.Cursor) int {
	if cursor.Pos >= cursor.InputSize {
		return 0
	}
	return 1
}

func NewPunct() parsly.Matcher {
	return &punct{}
}
