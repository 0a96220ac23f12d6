// Package analyzer builds module dependency trees of JavaScript and TypeScript
// sources located on the local file system or served over http(s).
package analyzer

import (
	"context"

	"github.com/nestdotland/nest-analyzer/extract"
	"github.com/nestdotland/nest-analyzer/fetch"
	"github.com/nestdotland/nest-analyzer/tree"
)

type (
	// Service builds dependency trees
	Service struct {
		fetcher   fetch.Fetcher
		extractor extract.Extractor
		fetchOpts []fetch.Option
		tree      *tree.Service
	}

	// Option represents a service option
	Option func(s *Service)
)

// WithFetcher replaces the default file system and http fetcher
func WithFetcher(fetcher fetch.Fetcher) Option {
	return func(s *Service) {
		s.fetcher = fetcher
	}
}

// WithExtractor replaces the default JavaScript/TypeScript import extractor
func WithExtractor(extractor extract.Extractor) Option {
	return func(s *Service) {
		s.extractor = extractor
	}
}

// WithFetchOptions configures the default fetcher
func WithFetchOptions(options ...fetch.Option) Option {
	return func(s *Service) {
		s.fetchOpts = append(s.fetchOpts, options...)
	}
}

// BuildDependencyTree resolves root, a file system path or http(s) URL, into
// a dependency tree
func (s *Service) BuildDependencyTree(ctx context.Context, root string, opts ...tree.Option) (*tree.Result, error) {
	return s.tree.Build(ctx, root, opts...)
}

// New creates an analyzer service
func New(options ...Option) *Service {
	ret := &Service{}
	for _, opt := range options {
		opt(ret)
	}
	if ret.fetcher == nil {
		ret.fetcher = fetch.New(ret.fetchOpts...)
	}
	if ret.extractor == nil {
		ret.extractor = extract.New()
	}
	ret.tree = tree.New(ret.fetcher, ret.extractor)
	return ret
}

// BuildDependencyTree resolves root with the default fetcher and extractor
func BuildDependencyTree(ctx context.Context, root string, opts ...tree.Option) (*tree.Result, error) {
	return New().BuildDependencyTree(ctx, root, opts...)
}
