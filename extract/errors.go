package extract

import "fmt"

// ExtractionError reports source text the extractor could not tokenize.
type ExtractionError struct {
	Location string
	Offset   int
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Location == "" {
		return fmt.Sprintf("extract: failed at offset %v: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("extract: failed to extract imports from %v at offset %v: %v", e.Location, e.Offset, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
