package fetch

import (
	"errors"
	"fmt"
)

var errInvalidUTF8 = errors.New("fetch: content is not valid UTF-8 text")

// FetchError reports a location whose content could not be retrieved.
type FetchError struct {
	Location string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch: %v: %v", e.Location, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
