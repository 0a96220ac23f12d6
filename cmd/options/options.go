package options

import (
	"context"
	"fmt"
)

type Options struct {
	Tree    *Tree `command:"tree" description:"prints module dependency tree"`
	Version bool  `short:"v" long:"version" description:"prints analyzer version"`
	Gops    bool  `long:"gops" description:"starts gops diagnostics agent"`
}

func (o *Options) Init(ctx context.Context) error {
	if o.Tree != nil {
		return o.Tree.Init(ctx)
	}
	if !o.Version {
		return fmt.Errorf("command was empty, supported: tree")
	}
	return nil
}

func NewOptions(args []string) *Options {
	ret := &Options{}
	if len(args) > 0 && args[0] == "tree" {
		ret.Tree = &Tree{}
	}
	return ret
}
