package options

import (
	"context"
	"fmt"

	"github.com/nestdotland/nest-analyzer/config"
	"github.com/nestdotland/nest-analyzer/location"
)

type Tree struct {
	FullTree    bool   `short:"f" long:"full" description:"repeats shared subtrees instead of marking them redundant"`
	Concurrency int    `short:"c" long:"concurrency" description:"max simultaneous fetches, 0 for unbounded"`
	Format      string `short:"o" long:"output" description:"output format" choice:"text" choice:"json" choice:"yaml"`
	ConfigURL   string `long:"conf" description:"analyzer config (JSON or YAML)"`
	LogLevel    string `short:"l" long:"log" description:"log level" choice:"DEBUG" choice:"INFO" choice:"WARN" choice:"ERROR"`
	Metrics     bool   `short:"m" long:"metrics" description:"prints fetch metrics"`
	Args        struct {
		Root string `positional-arg-name:"root" description:"module path or http(s) URL"`
	} `positional-args:"yes" required:"yes"`
	Config *config.Config `no-flag:"true"`
}

// Init merges config file settings with flags, flags take precedence
func (t *Tree) Init(ctx context.Context) error {
	if t.Args.Root == "" {
		return fmt.Errorf("root module was empty")
	}
	if !location.IsRemote(t.Args.Root) {
		t.Args.Root = expandHomeDir(t.Args.Root)
	}
	cfg := &config.Config{}
	if t.ConfigURL != "" {
		t.ConfigURL = ensureAbsPath(t.ConfigURL)
		var err error
		if cfg, err = config.NewConfigFromURL(ctx, t.ConfigURL); err != nil {
			return err
		}
	}
	if t.FullTree {
		cfg.FullTree = true
	}
	if t.Concurrency != 0 {
		cfg.Concurrency = t.Concurrency
	}
	if t.Format != "" {
		cfg.Format = t.Format
	}
	if t.LogLevel != "" {
		cfg.LogLevel = t.LogLevel
	}
	if t.Metrics {
		cfg.Metrics = true
	}
	cfg.Init()
	t.Config = cfg
	return cfg.Validate()
}
