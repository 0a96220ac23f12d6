package matchers

import (
	"github.com/viant/parsly"
)

type identifier struct{}

func (p *identifier) Match(cursor *parsly.Cursor) (matched int) {
	for i := cursor.Pos; i < cursor.InputSize; i++ {
		currByte := cursor.Input[i]
		switch {
		case currByte == '_' || currByte == '$':
		case (currByte >= 'a' && currByte <= 'z') || (currByte >= 'A' && currByte <= 'Z'):
		case currByte >= '0' && currByte <= '9':
			if matched == 0 {
				return 0
			}
		case currByte >= 0x80:
			// non ASCII identifier parts
		default:
			return matched
		}
		matched++
	}
	return matched
}

func NewIdentifier() parsly.Matcher {
	return &identifier{}
}
