package tree

import "sync"

// visitTable maps registered locations to their import handles. A location is
// registered by the resolver that discovers it first, before it is fetched.
type visitTable struct {
	mux     sync.Mutex
	entries map[string]*Imports
	order   []string
	// edges records which handles embed which, tracked in full tree mode only
	edges map[string][]string
}

func newVisitTable(trackEdges bool) *visitTable {
	ret := &visitTable{entries: map[string]*Imports{}}
	if trackEdges {
		ret.edges = map[string][]string{}
	}
	return ret
}

// register inserts location if absent, it returns the location handle and
// true when the caller became its owner.
func (t *visitTable) register(parent, location string) (*Imports, bool) {
	t.mux.Lock()
	defer t.mux.Unlock()
	if imports, ok := t.entries[location]; ok {
		return imports, false
	}
	imports := &Imports{}
	t.entries[location] = imports
	t.order = append(t.order, location)
	t.link(parent, location)
	return imports, true
}

// reuse returns registered location handle to be embedded under parent. It
// returns false when embedding would make the handle contain itself.
func (t *visitTable) reuse(parent, location string) (*Imports, bool) {
	t.mux.Lock()
	defer t.mux.Unlock()
	imports := t.entries[location]
	if t.reaches(location, parent) {
		return nil, false
	}
	t.link(parent, location)
	return imports, true
}

func (t *visitTable) link(parent, location string) {
	if t.edges == nil || parent == "" {
		return
	}
	t.edges[parent] = append(t.edges[parent], location)
}

func (t *visitTable) reaches(from, to string) bool {
	if from == to {
		return true
	}
	visited := map[string]bool{from: true}
	pending := []string{from}
	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for _, next := range t.edges[current] {
			if next == to {
				return true
			}
			if !visited[next] {
				visited[next] = true
				pending = append(pending, next)
			}
		}
	}
	return false
}

func (t *visitTable) keys() []string {
	t.mux.Lock()
	defer t.mux.Unlock()
	return append([]string(nil), t.order...)
}
