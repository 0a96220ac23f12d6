package location

import (
	"errors"
	"fmt"
)

var errNotFileURL = errors.New("location: not a file URL")

// ParseError reports a location or specifier that can not be turned into a URL.
type ParseError struct {
	Location string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("location: failed to parse %q: %v", e.Location, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
