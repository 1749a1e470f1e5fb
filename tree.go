package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// NodeID is a handle to a node within a Tree.
type NodeID int32

// NoNode is the NodeID of an absent child.
const NoNode = NodeID(-1)

// Tree is a Huffman code tree.  Leaves hold symbols, internal nodes hold the
// merge points.  A Tree is immutable once built.
//
// The root of a Tree is always an internal node.  When the alphabet has only
// one symbol, the root has that symbol's leaf as its left child and no right
// child, so that the symbol's code is "0".
//
type Tree struct {
	nodes []node
	root  NodeID
}

type node struct {
	symbol Symbol
	weight uint64
	left   NodeID
	right  NodeID
}

func (n node) isLeaf() bool {
	return n.left == NoNode && n.right == NoNode
}

// NewTree builds the Huffman tree for the given frequencies.
//
// Nodes are merged lowest weight first.  Ties are broken by insertion order:
// leaves are inserted in ascending symbol order, and each merged node is
// inserted after every node that came before it.  Of the two nodes removed
// for a merge, the first becomes the left child.
//
func NewTree(freqs FrequencyTable) (*Tree, error) {
	numLeaves := freqs.Distinct()
	if numLeaves == 0 {
		return nil, ErrEmptyAlphabet
	}

	// A full binary tree with n leaves has 2n-1 nodes, plus one more for the
	// synthetic root of a single-symbol alphabet.
	t := &Tree{nodes: make([]node, 0, 2*numLeaves)}

	// Step 1: build a minheap of leaves.

	h := nodeHeap{tree: t, list: make([]heapItem, 0, numLeaves)}
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if freq := freqs[symbol]; freq != 0 {
			id := t.addNode(node{symbol: symbol, weight: freq, left: NoNode, right: NoNode})
			h.list = append(h.list, heapItem{id: id, order: uint32(symbol)})
		}
	}
	h.Init()

	// Step 2: process the minheap by popping two nodes, combining them into
	// a new internal node, and pushing the new node back onto the minheap.
	//
	// Internal nodes take orders starting from NumSymbols, so that they sort
	// after every leaf of equal weight.

	nextOrder := uint32(NumSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)

		// Compute weightSum using saturating addition
		aw, bw := t.nodes[a.id].weight, t.nodes[b.id].weight
		weightSum := aw + bw
		if weightSum < aw {
			weightSum = math.MaxUint64
		}

		id := t.addNode(node{symbol: InvalidSymbol, weight: weightSum, left: a.id, right: b.id})
		heap.Push(&h, heapItem{id: id, order: nextOrder})
		nextOrder++
	}

	root := heap.Pop(&h).(heapItem).id
	if t.nodes[root].isLeaf() {
		root = t.addNode(node{symbol: InvalidSymbol, weight: t.nodes[root].weight, left: root, right: NoNode})
	}
	t.root = root
	return t, nil
}

// BuildTree analyzes data and constructs both its Huffman tree and the
// corresponding code table.
func BuildTree(data []byte) (*Tree, CodeTable, error) {
	t, err := NewTree(CountFrequencies(data))
	if err != nil {
		return nil, CodeTable{}, err
	}
	return t, t.Codes(), nil
}

// Root returns the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Weight returns the weight of the root, which equals the total number of
// symbols the tree was built from.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].weight
}

// NumNodes returns the number of nodes in the tree.
func (t *Tree) NumNodes() int {
	return len(t.nodes)
}

// IsLeaf returns true iff id is a leaf.
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.at(id).isLeaf()
}

// Symbol returns the symbol held by leaf id, or InvalidSymbol if id is an
// internal node.
func (t *Tree) Symbol(id NodeID) Symbol {
	return t.at(id).symbol
}

// NodeWeight returns the weight of node id.
func (t *Tree) NodeWeight(id NodeID) uint64 {
	return t.at(id).weight
}

// Left returns the left child of id, or NoNode.
func (t *Tree) Left(id NodeID) NodeID {
	return t.at(id).left
}

// Right returns the right child of id, or NoNode.
func (t *Tree) Right(id NodeID) NodeID {
	return t.at(id).right
}

// Child returns the right child of id if bit is true, else the left child.
func (t *Tree) Child(id NodeID, bit bool) NodeID {
	n := t.at(id)
	if bit {
		return n.right
	}
	return n.left
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line in depth-first order.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.Weight())
	t.walk(func(id NodeID, path BitSequence) {
		n := t.nodes[id]
		if n.isLeaf() {
			fmt.Fprintf(&buf, "\tNode(%q) = leaf{%d, %d}\n", path.String(), n.symbol, n.weight)
		} else {
			fmt.Fprintf(&buf, "\tNode(%q) = internal{%d}\n", path.String(), n.weight)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree) at(id NodeID) node {
	assert.Assertf(id >= 0 && int(id) < len(t.nodes), "NodeID %d out of range [0, %d)", id, len(t.nodes))
	return t.nodes[id]
}

func (t *Tree) addNode(n node) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return id
}

// walk visits every node in depth-first order, left before right, passing
// each node's path from the root.  The root's path is empty.
func (t *Tree) walk(fn func(id NodeID, path BitSequence)) {
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Only internal nodes are pushed onto the stack.

	type stackItem struct {
		id   NodeID
		path BitSequence
		x    byte
	}

	fn(t.root, BitSequence{})
	if t.nodes[t.root].isLeaf() {
		return
	}

	stack := make([]stackItem, 0, 16)
	stack = append(stack, stackItem{id: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++

		var child NodeID
		var bit bool
		switch x {
		case 0:
			child, bit = t.nodes[top.id].left, false
		case 1:
			child, bit = t.nodes[top.id].right, true
		default:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
			continue
		}
		if child == NoNode {
			continue
		}

		path := top.path.Clone()
		path.AppendBit(bit)
		fn(child, path)
		if !t.nodes[child].isLeaf() {
			stack = append(stack, stackItem{id: child, path: path})
		}
	}
}

// type heapItem + type nodeHeap {{{

type heapItem struct {
	id    NodeID
	order uint32
}

type nodeHeap struct {
	tree *Tree
	list []heapItem
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
	aw, bw := h.tree.nodes[a.id].weight, h.tree.nodes[b.id].weight
	if aw != bw {
		return aw < bw
	}
	return a.order < b.order
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
