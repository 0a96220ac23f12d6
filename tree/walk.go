package tree

// Visitor is called for every node in depth first order, depth is 0 for the
// root and last reports whether node is the final child of its parent.
type Visitor func(node *Node, depth int, last bool) (bool, error)

// Walk visits tree nodes depth first, returning false from the visitor skips
// node imports.
func (t Tree) Walk(visitor Visitor) error {
	for i, node := range t {
		if err := walk(node, 0, i == len(t)-1, visitor); err != nil {
			return err
		}
	}
	return nil
}

func walk(node *Node, depth int, last bool, visitor Visitor) error {
	toContinue, err := visitor(node, depth, last)
	if err != nil || !toContinue {
		return err
	}
	children := node.Children()
	for i, child := range children {
		if err = walk(child, depth+1, i == len(children)-1, visitor); err != nil {
			return err
		}
	}
	return nil
}
