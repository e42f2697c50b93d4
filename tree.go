package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman Tree.  A leaf node carries a Symbol and the
// frequency of that Symbol.  An internal node carries InvalidSymbol, the sum
// of its children's frequencies, and exactly two children.
type Node struct {
	symbol Symbol
	freq   float64
	left   *Node
	right  *Node
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Symbol returns the Symbol of a leaf node, or InvalidSymbol for an internal
// node.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Frequency returns the frequency of this node.
func (n *Node) Frequency() float64 {
	return n.freq
}

// Left returns the child reached by OneBit, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the child reached by ZeroBit, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Tree is a Huffman tree built by Build.  The zero Tree, and any Tree built
// from an empty FrequencyMap, has no root.
type Tree struct {
	root       *Node
	numSymbols int
	depth      int
}

// Build constructs the Huffman tree for the given frequencies.
//
// Nodes are merged lowest frequency first.  Ties are broken by age: leaves are
// numbered in ascending Symbol order, and each internal node is numbered after
// every node created before it, so the same FrequencyMap always produces the
// same Tree.  The first node popped becomes the left child of the merged node
// and the second becomes the right child.
//
// Build panics if any Symbol is invalid or any frequency is not positive.
//
func Build(freqs FrequencyMap) *Tree {
	symbols := freqs.Symbols()
	numSymbols := len(symbols)
	if numSymbols == 0 {
		return &Tree{}
	}

	// Step 1: build a minheap of leaves.

	list := make([]nodeAndSeq, 0, numSymbols)
	for index, symbol := range symbols {
		freq := freqs[symbol]
		assert.Assertf(symbol.IsValid(), "symbol %d is not a valid code point", int32(symbol))
		assert.Assertf(freq > 0, "frequency %g for symbol %s must be > 0", freq, symbol)
		list = append(list, nodeAndSeq{&Node{symbol: symbol, freq: freq}, uint(index)})
	}

	h := nodeHeap{list}
	h.Init()

	// Step 2: pop the two lowest nodes, merge them, and push the merged
	// node, until a single node remains.  A lone leaf is never merged.

	nextSeq := uint(numSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)
		parent := &Node{
			symbol: InvalidSymbol,
			freq:   a.node.freq + b.node.freq,
			left:   a.node,
			right:  b.node,
		}
		heap.Push(&h, nodeAndSeq{parent, nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(nodeAndSeq).node
	assert.Assertf(nextSeq == uint(2*numSymbols-1), "expected %d nodes, built %d", 2*numSymbols-1, nextSeq)

	t := &Tree{root: root, numSymbols: numSymbols}
	t.walk(func(n *Node, path Code) {
		if n.IsLeaf() && path.Len() > t.depth {
			t.depth = path.Len()
		}
	})
	return t
}

// Root returns the root node, or nil if this Tree is empty.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty returns true iff this Tree has no root.
func (t *Tree) IsEmpty() bool {
	return t.Root() == nil
}

// NumSymbols returns the number of leaves in this Tree.
func (t *Tree) NumSymbols() int {
	if t == nil {
		return 0
	}
	return t.numSymbols
}

// Depth returns the distance from the root to the deepest leaf.
func (t *Tree) Depth() int {
	if t == nil {
		return 0
	}
	return t.depth
}

// String returns a brief description of this Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, with depth %d)", t.NumSymbols(), t.Depth())
}

// Dump writes a programmer-readable debugging dump of the Tree's structure to
// the given writer.  Each node is listed with its path from the root.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	t.walk(func(n *Node, path Code) {
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "\t%s = {%s, %g}\n", path, n.symbol, n.freq)
		} else {
			fmt.Fprintf(&buf, "\t%s = {%g}\n", path, n.freq)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walk visits every node in preorder, ZeroBit branch first, along with the
// path from the root to that node.
func (t *Tree) walk(fn func(n *Node, path Code)) {
	root := t.Root()
	if root == nil {
		return
	}

	type stackItem struct {
		node *Node
		path Code
	}

	stack := make([]stackItem, 0, 2*log2uint(uint(t.numSymbols))+1)
	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		last := len(stack) - 1
		top := stack[last]
		stack[last] = stackItem{}
		stack = stack[:last]

		fn(top.node, top.path)
		if top.node.IsLeaf() {
			continue
		}
		stack = append(stack, stackItem{top.node.left, top.path.Append(OneBit)})
		stack = append(stack, stackItem{top.node.right, top.path.Append(ZeroBit)})
	}
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  uint
}

type nodeHeap struct {
	list []nodeAndSeq
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.freq != b.node.freq {
		return a.node.freq < b.node.freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
