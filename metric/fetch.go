package metric

import (
	"strings"
	"time"
)

//Fetch represents single source fetch metrics
type Fetch struct {
	Location   string
	Scheme     string
	Bytes      int    `json:",omitempty" yaml:",omitempty"`
	TimeMs     int    `json:",omitempty" yaml:",omitempty"`
	Error      string `json:",omitempty" yaml:",omitempty"`
	checkpoint time.Time
}

//SetFetchTime sets fetch time
func (f *Fetch) SetFetchTime() {
	f.TimeMs = ElapsedInMs(f.checkpoint)
}

//Done records fetch outcome
func (f *Fetch) Done(size int, err error) {
	f.SetFetchTime()
	f.Bytes = size
	if err != nil {
		f.Error = err.Error()
	}
}

//NewFetch returns new fetch
func NewFetch(location string) *Fetch {
	scheme := "file"
	if index := strings.Index(location, "://"); index != -1 {
		scheme = location[:index]
	}
	return &Fetch{
		Location:   location,
		Scheme:     scheme,
		checkpoint: time.Now(),
	}
}

//ElapsedInMs returns elapsed time in ms since start
func ElapsedInMs(start time.Time) int {
	return int(time.Since(start) / time.Millisecond)
}
