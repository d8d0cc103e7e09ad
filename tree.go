package hufftree

import (
	"container/heap"
)

// node is one node of the Huffman tree: either a leaf carrying a symbol, or
// an internal node owning exactly two children.  An internal node's weight
// is the sum of its children's weights.  The tree is the sole owner of the
// whole subtree structure; there are no shared or back references.
type node struct {
	symbol Symbol
	weight uint64
	left   *node
	right  *node
}

func (n *node) isLeaf() bool {
	return n.left == nil
}

// Tree is a Huffman prefix-code tree whose leaves are exactly the symbols
// that occur in one input, plus the PseudoEOF marker.  Each leaf's symbol
// is unique across the tree.
type Tree struct {
	root *node
}

// BuildTree constructs the Huffman tree for the given frequency table.
//
// A leaf is created for every symbol with a nonzero count, plus PseudoEOF
// even when its count is zero (the empty input).  The two lowest-weight
// subtrees are repeatedly merged, the first extracted becoming the left
// child, until a single root remains.  Ties by weight are broken by
// insertion order — leaves in ascending symbol order, then merged nodes in
// creation order — so repeated runs over the same input produce the same
// shape.  No particular tie-break is canonical; the serialized header
// re-communicates whatever shape was built.
//
// A lone leaf (the empty input) is wrapped under a forced internal root so
// that its code still has nonzero length; a naive single-node root would
// assign the empty bit string, which no decoder can consume.
//
func BuildTree(ft *FrequencyTable) *Tree {
	h := new(nodeHeap)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		freq := ft.counts[symbol]
		if freq == 0 && symbol != PseudoEOF {
			continue
		}
		h.append(&node{symbol: symbol, weight: freq})
	}
	heap.Init(h)

	for h.Len() > 1 {
		a := heap.Pop(h).(*node)
		b := heap.Pop(h).(*node)
		merged := &node{
			symbol: InvalidSymbol,
			weight: a.weight + b.weight,
			left:   a,
			right:  b,
		}
		heap.Push(h, merged)
	}

	root := heap.Pop(h).(*node)
	if root.isLeaf() {
		filler := &node{symbol: 0, weight: 0}
		root = &node{
			symbol: InvalidSymbol,
			weight: root.weight,
			left:   root,
			right:  filler,
		}
	}
	return &Tree{root: root}
}

// type heapEntry + type nodeHeap {{{

type heapEntry struct {
	node *node
	seq  uint32
}

type nodeHeap struct {
	list []heapEntry
	next uint32
}

func (h *nodeHeap) append(n *node) {
	h.list = append(h.list, heapEntry{n, h.next})
	h.next++
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.weight != b.node.weight {
		return a.node.weight < b.node.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.append(x.(*node))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = heapEntry{}
	h.list = h.list[:last]
	return x.node
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
