package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/gops/agent"
	"github.com/jessevdk/go-flags"

	"github.com/nestdotland/nest-analyzer/cmd/command"
	"github.com/nestdotland/nest-analyzer/cmd/options"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// RunApp runs analyzer with process standard streams and returns exit code
func RunApp(version string, args []string) int {
	return Run(context.Background(), version, args, os.Stdout, os.Stderr)
}

// Run executes command line, per module failures are reported in the output
// and do not change the exit code
func Run(ctx context.Context, version string, args []string, stdout, stderr io.Writer) int {
	opts, err := buildOptions(args)
	if err != nil {
		flagsErr := &flags.Error{}
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return ExitOK
		}
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	if opts.Version {
		fmt.Fprintf(stdout, "analyzer: version: %v\n", version)
		return ExitOK
	}
	if err = opts.Init(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	if opts.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(stderr, "failed to start gops agent: %v\n", err)
		} else {
			defer agent.Close()
		}
	}
	if err = command.New(stdout, stderr).Exec(ctx, opts); err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	return ExitOK
}

func buildOptions(args []string) (*options.Options, error) {
	opts := options.NewOptions(args)
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	if parser.Active == nil {
		opts.Tree = nil
	}
	return opts, nil
}
