package command

import (
	"context"
	"fmt"
	"io"

	"github.com/viant/gmetric"

	analyzer "github.com/nestdotland/nest-analyzer"
	"github.com/nestdotland/nest-analyzer/cmd/options"
	"github.com/nestdotland/nest-analyzer/fetch"
	"github.com/nestdotland/nest-analyzer/metric"
	"github.com/nestdotland/nest-analyzer/report"
	"github.com/nestdotland/nest-analyzer/shared/logging"
	"github.com/nestdotland/nest-analyzer/tree"
)

type Service struct {
	stdout  io.Writer
	stderr  io.Writer
	metrics *gmetric.Service
}

// Exec prints the dependency tree to stdout and its summary to stderr
func (s *Service) Exec(ctx context.Context, opts *options.Options) error {
	if opts.Tree == nil {
		return fmt.Errorf("command was empty")
	}
	return s.tree(ctx, opts.Tree)
}

func (s *Service) tree(ctx context.Context, opts *options.Tree) error {
	cfg := opts.Config
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, s.stderr)
	stats := metric.NewMetrics()
	fetchOptions := []fetch.Option{fetch.WithMetrics(s.metrics)}
	if cfg.Metrics {
		fetchOptions = append(fetchOptions, fetch.WithStats(stats))
	}
	service := analyzer.New(analyzer.WithFetchOptions(fetchOptions...))
	treeOptions := append(cfg.Options(),
		tree.WithLogger(logger),
		tree.WithOnDependencyFound(func(count int) {
			logger.Debug("dependency found", "found", count)
		}),
		tree.WithOnDependencyResolved(func(count int) {
			logger.Debug("dependency resolved", "resolved", count)
		}),
	)
	result, err := service.BuildDependencyTree(ctx, opts.Args.Root, treeOptions...)
	if err != nil {
		return err
	}
	aReport := report.New(result)
	if err = aReport.Write(s.stdout, cfg.Format); err != nil {
		return err
	}
	if err = aReport.Summary(s.stderr); err != nil {
		return err
	}
	if cfg.Metrics {
		s.printMetrics(stats)
	}
	return nil
}

func (s *Service) printMetrics(stats *metric.Metrics) {
	for _, summary := range stats.Summaries() {
		fmt.Fprintf(s.stderr, "fetch %v: count: %d, failed: %d, bytes: %d, timeMs: %d, slowest: %v\n",
			summary.Scheme, summary.Count, summary.Failed, summary.Bytes, summary.TimeMs, summary.Slowest)
	}
}

func New(stdout, stderr io.Writer) *Service {
	return &Service{stdout: stdout, stderr: stderr, metrics: gmetric.New()}
}
