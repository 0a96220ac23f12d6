package matchers

import (
	"github.com/viant/parsly"
)

type lineComment struct{}

// Match matches "//" up to, but excluding, the line break or the end of input.
func (l *lineComment) Match(cursor *parsly.Cursor) (matched int) {
	if cursor.Pos+1 >= cursor.InputSize {
		return 0
	}
	if cursor.Input[cursor.Pos] != '/' || cursor.Input[cursor.Pos+1] != '/' {
		return 0
	}
	for i := cursor.Pos; i < cursor.InputSize; i++ {
		if cursor.Input[i] == '\n' {
			return matched
		}
		matched++
	}
	return matched
}

func NewLineComment() parsly.Matcher {
	return &lineComment{}
}
