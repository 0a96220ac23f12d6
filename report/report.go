// Package report renders dependency trees as text, JSON or YAML.
package report

import (
	"github.com/nestdotland/nest-analyzer/tree"
)

type (
	// Report is a serializable view of a dependency tree result
	Report struct {
		Tree     []*Node    `yaml:"tree"`
		Circular bool       `yaml:"circular"`
		Count    int        `yaml:"count"`
		Errors   []*Failure `yaml:"errors,omitempty"`
	}

	// Node represents a tree node, sentinel leaves set Kind and keep the
	// location they stand in for
	Node struct {
		Path     string  `yaml:"path"`
		Kind     string  `yaml:"kind,omitempty"`
		Location string  `yaml:"location,omitempty"`
		Imports  []*Node `yaml:"imports"`
	}

	Failure struct {
		Location string `yaml:"location"`
		Error    string `yaml:"error"`
	}
)

// New creates a report from result
func New(result *tree.Result) *Report {
	ret := &Report{Circular: result.Circular, Count: result.Count}
	for _, node := range result.Tree {
		ret.Tree = append(ret.Tree, newNode(node))
	}
	for _, failure := range result.Errors {
		ret.Errors = append(ret.Errors, &Failure{Location: failure.Location, Error: failure.Err.Error()})
	}
	return ret
}

func newNode(node *tree.Node) *Node {
	ret := &Node{Path: node.Path(), Imports: []*Node{}}
	if node.Sentinel != nil {
		ret.Kind = node.Sentinel.Kind.String()
		ret.Location = node.Sentinel.Location
	}
	for _, child := range node.Children() {
		ret.Imports = append(ret.Imports, newNode(child))
	}
	return ret
}
