// Package fetch retrieves the text content of canonical locations.
package fetch

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/gmetric"

	"github.com/nestdotland/nest-analyzer/location"
	"github.com/nestdotland/nest-analyzer/metric"
)

// Fetcher returns the text content of a location. Implementations must not retry.
type Fetcher interface {
	Fetch(ctx context.Context, location string) (string, error)
}

// Func adapts a function to Fetcher.
type Func func(ctx context.Context, location string) (string, error)

func (f Func) Fetch(ctx context.Context, location string) (string, error) {
	return f(ctx, location)
}

type (
	// Service fetches file:// locations from the local file system and
	// http(s):// locations with a GET request. Response status codes are not
	// validated, the returned body is the content.
	Service struct {
		fs      afs.Service
		counter *metric.CounterAdapter
		metrics *metric.Metrics
	}

	// Option represents a service option
	Option func(s *Service)
)

// WithFS sets the storage service
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithMetrics registers a "fetch" operation counter on the metrics service
func WithMetrics(metrics *gmetric.Service) Option {
	return func(s *Service) {
		s.counter = metric.NewOperationCounter(metrics, "fetch", "source fetch")
	}
}

// WithStats collects per fetch statistics
func WithStats(metrics *metric.Metrics) Option {
	return func(s *Service) {
		s.metrics = metrics
	}
}

// New creates a fetch service
func New(options ...Option) *Service {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.counter == nil {
		ret.counter = metric.NewCounter(nil)
	}
	return ret
}

// Fetch returns location content as UTF-8 text
func (s *Service) Fetch(ctx context.Context, URL string) (string, error) {
	stats := metric.NewFetch(URL)
	onDone := s.counter.Begin(time.Now())
	data, err := s.download(ctx, URL)
	if err != nil {
		onDone(time.Now(), err)
	} else {
		onDone(time.Now())
	}
	if s.metrics != nil {
		stats.Done(len(data), err)
		s.metrics.AddFetch(stats)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Service) download(ctx context.Context, URL string) ([]byte, error) {
	source := URL
	if !location.IsRemote(URL) {
		path, err := location.ToPath(URL)
		if err != nil {
			return nil, &FetchError{Location: URL, Err: err}
		}
		source = path
	}
	data, err := s.fs.DownloadWithURL(ctx, source)
	if err != nil {
		return nil, &FetchError{Location: URL, Err: errors.Wrapf(err, "failed to load resource: %v", source)}
	}
	if !utf8.Valid(data) {
		return nil, &FetchError{Location: URL, Err: errInvalidUTF8}
	}
	return data, nil
}
