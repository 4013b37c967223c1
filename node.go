package trie

import "sort"

// node is a single position in the key space. The rune labelling a node is
// the key in its parent's children map; the node itself only holds its own
// children and the optional payload.
type node[V any] struct {
	children map[rune]*node[V]
	// value is set iff some stored key ends exactly at this node.
	// Intermediate nodes carry nil.
	value *V
}

func newNode[V any]() *node[V] {
	return &node[V]{children: make(map[rune]*node[V])}
}

// child returns the child labelled c, if any.
func (n *node[V]) child(c rune) (*node[V], bool) {
	next, ok := n.children[c]
	return next, ok
}

// ensureChild returns the child labelled c, creating an empty one first if
// it is absent.
func (n *node[V]) ensureChild(c rune) *node[V] {
	next, ok := n.children[c]
	if !ok {
		next = newNode[V]()
		n.children[c] = next
	}
	return next
}

// removeChild drops the child labelled c. No-op when absent.
func (n *node[V]) removeChild(c rune) {
	delete(n.children, c)
}

func (n *node[V]) hasChildren() bool {
	return len(n.children) > 0
}

// isTerminal reports whether this node marks the end of a stored key.
func (n *node[V]) isTerminal() bool {
	return n.value != nil
}

func (n *node[V]) setValue(v V) {
	n.value = &v
}

func (n *node[V]) getValue() (V, bool) {
	if n.value == nil {
		var zero V
		return zero, false
	}
	return *n.value, true
}

// clearValue unmarks the node as a key end and returns the old payload.
func (n *node[V]) clearValue() (V, bool) {
	v, ok := n.getValue()
	n.value = nil
	return v, ok
}

// sortedChildRunes returns the child labels in ascending code-point order.
// Traversals iterate children through this so that suggestion order stays
// deterministic even though the backing map is not.
func (n *node[V]) sortedChildRunes() []rune {
	labels := make([]rune, 0, len(n.children))
	for c := range n.children {
		labels = append(labels, c)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}
