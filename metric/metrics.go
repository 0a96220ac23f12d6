package metric

import (
	"sort"
	"sync"
)

//Metrics represents per run fetch metrics
type Metrics struct {
	Fetches []*Fetch `json:",omitempty" yaml:",omitempty"`
	mux     *sync.Mutex
}

//Summary represents aggregated fetch metrics of one scheme
type Summary struct {
	Scheme  string
	Count   int
	Failed  int
	Bytes   int
	TimeMs  int
	Slowest string
}

//AddFetch adds fetch
func (m *Metrics) AddFetch(fetch *Fetch) {
	m.mux.Lock()
	defer m.mux.Unlock()
	if len(m.Fetches) == 0 {
		m.Fetches = make([]*Fetch, 0)
	}
	m.Fetches = append(m.Fetches, fetch)
}

func (m *Metrics) Clone() *Metrics {
	m.mux.Lock()
	defer m.mux.Unlock()
	var result = &Metrics{
		Fetches: make([]*Fetch, 0, len(m.Fetches)),
		mux:     &sync.Mutex{},
	}
	for i := range m.Fetches {
		fetch := *m.Fetches[i]
		result.Fetches = append(result.Fetches, &fetch)
	}
	return result
}

//Summaries aggregates fetches by scheme, sorted by scheme
func (m *Metrics) Summaries() []*Summary {
	m.mux.Lock()
	defer m.mux.Unlock()
	index := map[string]*Summary{}
	slowest := map[string]int{}
	for _, fetch := range m.Fetches {
		summary, ok := index[fetch.Scheme]
		if !ok {
			summary = &Summary{Scheme: fetch.Scheme}
			index[fetch.Scheme] = summary
			slowest[fetch.Scheme] = -1
		}
		summary.Count++
		summary.Bytes += fetch.Bytes
		summary.TimeMs += fetch.TimeMs
		if fetch.Error != "" {
			summary.Failed++
		}
		if fetch.TimeMs > slowest[fetch.Scheme] {
			slowest[fetch.Scheme] = fetch.TimeMs
			summary.Slowest = fetch.Location
		}
	}
	var result = make([]*Summary, 0, len(index))
	for _, summary := range index {
		result = append(result, summary)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Scheme < result[j].Scheme
	})
	return result
}

//NewMetrics creates a metrics
func NewMetrics() *Metrics {
	return &Metrics{
		mux: &sync.Mutex{},
	}
}
