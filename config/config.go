// Package config loads analyzer settings from a JSON or YAML document.
package config

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/toolbox"

	"github.com/nestdotland/nest-analyzer/report"
	"github.com/nestdotland/nest-analyzer/shared"
	"github.com/nestdotland/nest-analyzer/shared/logging"
	"github.com/nestdotland/nest-analyzer/tree"
)

// Config defines analyzer settings
type Config struct {
	URL         string
	FullTree    bool
	Concurrency int
	Format      string
	LogLevel    string
	LogFormat   string
	//Metrics prints fetch statistics after the tree
	Metrics bool
}

// Init sets defaults
func (c *Config) Init() {
	if c.Format == "" {
		c.Format = report.FormatText
	}
	if c.LogLevel == "" {
		c.LogLevel = logging.WARN
	}
	if c.LogFormat == "" {
		c.LogFormat = logging.FormatText
	}
}

// Validate checks config values
func (c *Config) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("invalid Concurrency: %v, expected 0 (unbounded) or positive", c.Concurrency)
	}
	if !report.IsSupported(c.Format) {
		return fmt.Errorf("unsupported Format: %v, supported: %v", c.Format, strings.Join(report.Formats, ", "))
	}
	switch strings.ToLower(c.LogFormat) {
	case logging.FormatJSON, logging.FormatText:
	default:
		return fmt.Errorf("unsupported LogFormat: %v", c.LogFormat)
	}
	return nil
}

// Options returns tree build options
func (c *Config) Options() []tree.Option {
	return []tree.Option{
		tree.WithFullTree(c.FullTree),
		tree.WithConcurrency(c.Concurrency),
	}
}

// NewConfigFromURL loads config from URL, documents with yaml/yml extension
// are parsed as YAML, any other as JSON
func NewConfigFromURL(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config: %v", URL)
	}
	aMap := map[string]interface{}{}
	if err = shared.UnmarshalWithExt(data, &aMap, path.Ext(URL)); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config: %v", URL)
	}
	cfg := &Config{}
	if err = toolbox.DefaultConverter.AssignConverted(cfg, aMap); err != nil {
		return nil, err
	}
	cfg.URL = URL
	cfg.Init()
	return cfg, cfg.Validate()
}
