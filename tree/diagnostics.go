package tree

import "sync"

// diagnostics aggregates run facts shared by concurrently resolving branches.
type diagnostics struct {
	mux      sync.Mutex
	circular bool
	count    int
	errors   []*Failure
}

func (d *diagnostics) markCircular() {
	d.mux.Lock()
	d.circular = true
	d.mux.Unlock()
}

func (d *diagnostics) increment() {
	d.mux.Lock()
	d.count++
	d.mux.Unlock()
}

func (d *diagnostics) addError(location string, err error) {
	d.mux.Lock()
	d.errors = append(d.errors, &Failure{Location: location, Err: err})
	d.mux.Unlock()
}

// progress serializes found/resolved callbacks so that each observes a
// strictly increasing counter.
type progress struct {
	mux        sync.Mutex
	found      int
	resolved   int
	onFound    func(count int)
	onResolved func(count int)
}

func (p *progress) dependencyFound() {
	p.mux.Lock()
	defer p.mux.Unlock()
	p.found++
	p.onFound(p.found)
}

func (p *progress) dependencyResolved() {
	p.mux.Lock()
	defer p.mux.Unlock()
	p.resolved++
	p.onResolved(p.resolved)
}
