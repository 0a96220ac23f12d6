package shared

import "sync"

//Errors collect errors, supports parallel errors collecting.
type Errors struct {
	locker sync.Mutex
	errors []error
}

//NewErrors creates and allocates errors collector with given size
func NewErrors(size int) *Errors {
	return &Errors{
		locker: sync.Mutex{},
		errors: make([]error, size),
	}
}

//AddError add error on given index, each index is expected to be written by one goroutine only
func (r *Errors) AddError(err error, index int) {
	r.errors[index] = err
}

//At returns error recorded at given index
func (r *Errors) At(index int) error {
	r.locker.Lock()
	defer r.locker.Unlock()
	return r.errors[index]
}
