package tree

import "fmt"

// Kind identifies a synthetic leaf.
type Kind int

const (
	// KindCircular marks an import of a location already present on the current path.
	KindCircular Kind = iota + 1
	// KindRedundant marks an import of a location resolved elsewhere in the tree.
	KindRedundant
	// KindError marks an import whose resolution failed.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindCircular:
		return "Circular"
	case KindRedundant:
		return "Redundant"
	case KindError:
		return "Error"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type (
	// Sentinel stands in for a suppressed or failed recursion. It is never
	// resolved; Location keeps the location it stands in for.
	Sentinel struct {
		Kind     Kind
		Location string
		Detail   string
	}

	// Node is a dependency tree node. Sentinel leaves carry no imports.
	Node struct {
		Location string
		Sentinel *Sentinel
		Imports  *Imports
	}

	// Imports is the ordered import sequence of one resolved location. The
	// same instance is shared by every occurrence of the location in full
	// tree mode; only the resolver that registered the location appends to it.
	Imports struct {
		nodes []*Node
	}

	// Tree is the traversal result, it always wraps a single root node.
	Tree []*Node
)

// String returns display form: [Circular], [Redundant] or [Error: detail]
func (s *Sentinel) String() string {
	if s.Kind == KindError {
		return "[Error: " + s.Detail + "]"
	}
	return "[" + s.Kind.String() + "]"
}

// Path returns the node location, or the sentinel display form for leaves.
func (n *Node) Path() string {
	if n.Sentinel != nil {
		return n.Sentinel.String()
	}
	return n.Location
}

// Children returns node imports.
func (n *Node) Children() []*Node {
	if n.Imports == nil {
		return nil
	}
	return n.Imports.nodes
}

// Nodes returns imported nodes in declaration order.
func (i *Imports) Nodes() []*Node {
	if i == nil {
		return nil
	}
	return i.nodes
}

// Len returns number of imports.
func (i *Imports) Len() int {
	if i == nil {
		return 0
	}
	return len(i.nodes)
}

func (i *Imports) append(node *Node) {
	i.nodes = append(i.nodes, node)
}

// Root returns the root node or nil for an empty tree.
func (t Tree) Root() *Node {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

func newLeaf(sentinel *Sentinel) *Imports {
	return &Imports{nodes: []*Node{{Sentinel: sentinel, Imports: &Imports{}}}}
}

func circular(location string) *Sentinel {
	return &Sentinel{Kind: KindCircular, Location: location}
}

func redundant(location string) *Sentinel {
	return &Sentinel{Kind: KindRedundant, Location: location}
}

func failure(location string, err error) *Sentinel {
	return &Sentinel{Kind: KindError, Location: location, Detail: err.Error()}
}
