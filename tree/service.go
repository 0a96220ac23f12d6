// Package tree builds module dependency trees.
package tree

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/nestdotland/nest-analyzer/extract"
	"github.com/nestdotland/nest-analyzer/fetch"
	"github.com/nestdotland/nest-analyzer/location"
	"github.com/nestdotland/nest-analyzer/shared"
	"github.com/nestdotland/nest-analyzer/shared/logging"
)

// Service resolves dependency trees, it is safe for concurrent use; each
// Build call owns its visit table and diagnostics.
type Service struct {
	fetcher   fetch.Fetcher
	extractor extract.Extractor
}

// Build resolves root, a file system path or http(s) URL, into a dependency
// tree. Only a malformed root location fails the call, every other failure is
// embedded in the tree as an error leaf and listed in Result.Errors.
//
// Dependencies are registered by the importing node before any of them is
// fetched, so for root -> [a, b] with a -> [b] the root owns b and the
// Redundant leaf lands under a.
func (s *Service) Build(ctx context.Context, root string, opts ...Option) (*Result, error) {
	options := NewOptions(opts...)
	URL, err := location.Resolve(root, "")
	if err != nil {
		return nil, err
	}
	ctx = logging.WithRunID(ctx, uuid.New().String())
	sess := s.newSession(ctx, options)
	started := time.Now()
	sess.logger.Info("resolving dependency tree", "root", URL, "fullTree", options.FullTree)

	imports, _ := sess.visits.register("", URL)
	if err = sess.resolve(ctx, URL, nil, imports); err != nil {
		sess.fail(URL, imports, err)
	}
	ret := &Result{
		Tree:     Tree{{Location: URL, Imports: imports}},
		Circular: sess.diagnostics.circular,
		Count:    sess.diagnostics.count,
		Errors:   sess.diagnostics.errors,
		Visited:  sess.visits.keys(),
	}
	sess.logger.Info("resolved dependency tree", "root", URL, "count", ret.Count,
		"circular", ret.Circular, "errors", len(ret.Errors), "elapsedMs", time.Since(started).Milliseconds())
	return ret, nil
}

type session struct {
	*Service
	options     *Options
	logger      *slog.Logger
	visits      *visitTable
	diagnostics *diagnostics
	progress    *progress
	limiter     *semaphore.Weighted
}

func (s *Service) newSession(ctx context.Context, options *Options) *session {
	ret := &session{
		Service:     s,
		options:     options,
		logger:      logging.FromContext(ctx, options.Logger),
		visits:      newVisitTable(options.FullTree),
		diagnostics: &diagnostics{},
		progress:    &progress{onFound: options.OnDependencyFound, onResolved: options.OnDependencyResolved},
	}
	if options.Concurrency > 0 {
		ret.limiter = semaphore.NewWeighted(int64(options.Concurrency))
	}
	return ret
}

// position is one import slot of a resolving node.
type position struct {
	location string
	sentinel *Sentinel
	imports  *Imports
	owned    bool
}

// resolve fills imports with loc dependencies, parents lists loc ancestors.
func (s *session) resolve(ctx context.Context, loc string, parents []string, imports *Imports) error {
	source, err := s.fetch(ctx, loc)
	if err != nil {
		return err
	}
	specifiers, err := s.extractor.Extract(source)
	if err != nil {
		return extractionError(loc, err)
	}
	deps := make([]string, len(specifiers))
	for i, specifier := range specifiers {
		if deps[i], err = location.Resolve(specifier, loc); err != nil {
			return err
		}
	}
	for range deps {
		s.progress.dependencyFound()
	}

	positions := s.classify(loc, parents, deps)
	chain := append([]string{loc}, parents...)
	errs := shared.NewErrors(len(positions))
	wg := sync.WaitGroup{}
	for i, pos := range positions {
		if !pos.owned {
			continue
		}
		wg.Add(1)
		go func(index int, pos *position) {
			defer wg.Done()
			errs.AddError(s.resolve(ctx, pos.location, chain, pos.imports), index)
		}(i, pos)
	}
	wg.Wait()

	for i, pos := range positions {
		switch {
		case pos.sentinel != nil:
			pos.imports = newLeaf(pos.sentinel)
		case pos.owned:
			if err := errs.At(i); err != nil {
				s.fail(pos.location, pos.imports, err)
			}
		}
		imports.append(&Node{Location: pos.location, Imports: pos.imports})
		s.progress.dependencyResolved()
	}
	return nil
}

// classify decides, in extraction order, which positions are cycles,
// duplicates or first time discoveries to be resolved by this node.
func (s *session) classify(loc string, parents []string, deps []string) []*position {
	ret := make([]*position, len(deps))
	for i, dep := range deps {
		pos := &position{location: dep}
		ret[i] = pos
		if slices.Contains(parents, dep) {
			s.diagnostics.markCircular()
			pos.sentinel = circular(dep)
			continue
		}
		imports, owned := s.visits.register(loc, dep)
		if owned {
			s.diagnostics.increment()
			pos.imports, pos.owned = imports, true
			continue
		}
		if !s.options.FullTree {
			pos.sentinel = redundant(dep)
			continue
		}
		if pos.imports, owned = s.visits.reuse(loc, dep); !owned {
			s.diagnostics.markCircular()
			pos.sentinel = circular(dep)
		}
	}
	return ret
}

func (s *session) fetch(ctx context.Context, loc string) (string, error) {
	if s.limiter != nil {
		if err := s.limiter.Acquire(ctx, 1); err != nil {
			return "", err
		}
		defer s.limiter.Release(1)
	}
	s.logger.Debug("fetching", "location", loc)
	return s.fetcher.Fetch(ctx, loc)
}

// fail replaces loc imports with a single error leaf and records the failure.
func (s *session) fail(loc string, imports *Imports, err error) {
	imports.nodes = []*Node{{Sentinel: failure(loc, err), Imports: &Imports{}}}
	s.diagnostics.addError(loc, err)
	s.logger.Warn("failed to resolve dependency", "location", loc, "error", err.Error())
}

func extractionError(loc string, err error) error {
	if extractErr, ok := err.(*extract.ExtractionError); ok {
		if extractErr.Location == "" {
			extractErr.Location = loc
		}
		return extractErr
	}
	return &extract.ExtractionError{Location: loc, Err: err}
}

// New creates a tree service
func New(fetcher fetch.Fetcher, extractor extract.Extractor) *Service {
	return &Service{fetcher: fetcher, extractor: extractor}
}
