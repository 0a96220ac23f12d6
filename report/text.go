package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	branch     = "├── "
	lastBranch = "└── "
	pipe       = "│   "
	indent     = "    "
)

// Text writes report tree with box drawing connectors
func (r *Report) Text(writer io.Writer) error {
	w := bufio.NewWriter(writer)
	for _, node := range r.Tree {
		fmt.Fprintln(w, node.Path)
		writeImports(w, node.Imports, "")
	}
	return w.Flush()
}

// Summary writes dependency count, cycle flag and failures
func (r *Report) Summary(writer io.Writer) error {
	w := bufio.NewWriter(writer)
	fmt.Fprintf(w, "dependencies: %d\n", r.Count)
	if r.Circular {
		fmt.Fprintln(w, "circular imports detected")
	}
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "errors: %d\n", len(r.Errors))
		for _, failure := range r.Errors {
			fmt.Fprintf(w, "  %v: %v\n", failure.Location, failure.Error)
		}
	}
	return w.Flush()
}

func writeImports(w io.Writer, imports []*Node, prefix string) {
	for i, node := range imports {
		connector, nested := branch, pipe
		if i == len(imports)-1 {
			connector, nested = lastBranch, indent
		}
		fmt.Fprintln(w, prefix+connector+strings.TrimSpace(node.Path))
		writeImports(w, node.Imports, prefix+nested)
	}
}
