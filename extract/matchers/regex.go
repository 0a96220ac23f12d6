package matchers

import (
	"github.com/viant/parsly"
)

type regex struct{}

// Match matches a regular expression literal with its flags. A line break
// before the closing slash means the input is not a literal.
func (r *regex) Match(cursor *parsly.Cursor) (matched int) {
	input := cursor.Input
	if cursor.Pos+1 >= cursor.InputSize || input[cursor.Pos] != '/' {
		return 0
	}
	if next := input[cursor.Pos+1]; next == '/' || next == '*' {
		return 0
	}
	inClass := false
	i := cursor.Pos + 1
	for ; i < cursor.InputSize; i++ {
		switch input[i] {
		case '\\':
			i++
			continue
		case '\n', '\r':
			return 0
		case '[':
			inClass = true
			continue
		case ']':
			inClass = false
			continue
		case '/':
			if inClass {
				continue
			}
		default:
			continue
		}
		break
	}
	if i >= cursor.InputSize {
		return 0
	}
	for i++; i < cursor.InputSize; i++ {
		if b := input[i]; !(b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z') {
			break
		}
	}
	return i - cursor.Pos
}

func NewRegex() parsly.Matcher {
	return &regex{}
}
