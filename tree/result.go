package tree

import (
	"fmt"
	"iter"
)

// Failure records a location whose resolution failed.
type Failure struct {
	Location string
	Err      error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%v: %v", f.Location, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Result represents dependency tree with diagnostics collected while building it.
type Result struct {
	Tree     Tree
	Circular bool
	// Count is the number of distinct non circular dependencies, the root excluded.
	Count  int
	Errors []*Failure
	// Visited lists every registered location in registration order.
	Visited []string
}

// Locations returns an iterator over visited locations, each call starts over.
func (r *Result) Locations() iter.Seq[string] {
	visited := r.Visited
	return func(yield func(string) bool) {
		for _, location := range visited {
			if !yield(location) {
				return
			}
		}
	}
}
