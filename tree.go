package huffzip

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"strings"
)

// node is the variant type for Huffman tree nodes.  Exactly two concrete
// types implement it: *leafNode and *innerNode.  Traversal sites use type
// switches rather than virtual dispatch.
type node interface {
	frequency() uint64
}

// leafNode carries one distinct byte value and its frequency.
type leafNode struct {
	sym  byte
	freq uint64
}

func (n *leafNode) frequency() uint64 {
	return n.freq
}

// innerNode carries two children and the sum of their frequencies.  The
// left child is nil only in the degenerate single-symbol tree, whose root
// is an innerNode holding the sole leaf on its right.
type innerNode struct {
	left  node
	right node
	freq  uint64
}

func (n *innerNode) frequency() uint64 {
	return n.freq
}

// Tree is an immutable Huffman prefix-code tree.  Build it with BuildTree;
// after construction it is only ever read, by DeriveCodes and Decode.
type Tree struct {
	root  node
	total uint64
}

// BuildTree constructs the Huffman tree for the given frequency table.  The
// construction is fully deterministic: the same table always produces the
// same tree, no matter the table's iteration order.  This is what allows the
// decoder to regenerate the exact tree the encoder used from the frequency
// table alone.
//
// A table with zero entries produces a tree whose root is a single sentinel
// leaf with byte 0 and frequency 0.  A table with one entry produces a root
// with no left child and the sole leaf on the right, so that decoding
// consumes one bit per output byte via right transitions only.
//
func BuildTree(ft FreqTable) Tree {
	if len(ft) == 0 {
		return Tree{root: &leafNode{sym: 0, freq: 0}, total: 0}
	}

	if len(ft) == 1 {
		var tree Tree
		for sym, freq := range ft {
			leaf := &leafNode{sym: sym, freq: freq}
			tree = Tree{root: &innerNode{left: nil, right: leaf, freq: freq}, total: freq}
		}
		return tree
	}

	h := treeHeap{list: make([]node, 0, len(ft))}
	for sym, freq := range ft {
		h.list = append(h.list, &leafNode{sym: sym, freq: freq})
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(node)
		b := heap.Pop(&h).(node)

		// The tree that compares less becomes the left child.
		left, right := a, b
		if compareTrees(a, b) > 0 {
			left, right = b, a
		}

		merged := &innerNode{
			left:  left,
			right: right,
			freq:  left.frequency() + right.frequency(),
		}
		heap.Push(&h, merged)
	}

	root := heap.Pop(&h).(node)
	return Tree{root: root, total: root.frequency()}
}

// Total returns the sum of the frequencies of all leaves, which equals the
// length of the input the source frequency table was built from.
func (t Tree) Total() uint64 {
	return t.total
}

// Dump writes a programmer-readable debugging dump of the Tree's leaves, in
// left-to-right order with their root paths, to the given writer.
func (t Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", t.total)
	var walk func(cur node, path BitSeq)
	walk = func(cur node, path BitSeq) {
		switch cur := cur.(type) {
		case *leafNode:
			fmt.Fprintf(&buf, "\tLeaf(0x%02x) = {freq %d, path %s}\n", cur.sym, cur.freq, path)
		case *innerNode:
			if cur.left != nil {
				next := path.Clone()
				next.AppendBit(0)
				walk(cur.left, next)
			}
			next := path.Clone()
			next.AppendBit(1)
			walk(cur.right, next)
		}
	}
	walk(t.root, BitSeq{})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns Dump's output as a string.
func (t Tree) DebugString() string {
	var buf strings.Builder
	_, _ = t.Dump(&buf)
	return buf.String()
}

// compareTrees is the total order over trees used both for heap ordering and
// for left/right assignment when two trees merge.  It orders by frequency
// ascending; on an exact tie it descends both left spines in lockstep until
// either side reaches a leaf, and the side reaching a leaf first is smaller;
// if both reach a leaf at the same depth, the lower byte value is smaller.
//
// The tie-break is a fixed wire-compatibility contract: decoders rebuild the
// encoding tree from frequencies alone, so every rebuild must break ties the
// same way.
//
func compareTrees(a, b node) int {
	af, bf := a.frequency(), b.frequency()
	if af != bf {
		if af < bf {
			return -1
		}
		return 1
	}

	x, y := a, b
	for {
		xi, xInner := x.(*innerNode)
		yi, yInner := y.(*innerNode)
		if !xInner || !yInner {
			break
		}
		x, y = xi.left, yi.left
	}

	xl, xLeaf := x.(*leafNode)
	yl, yLeaf := y.(*leafNode)
	if xLeaf != yLeaf {
		if xLeaf {
			return -1
		}
		return 1
	}

	switch {
	case xl.sym < yl.sym:
		return -1
	case xl.sym > yl.sym:
		return 1
	default:
		return 0
	}
}

// type treeHeap {{{

type treeHeap struct {
	list []node
}

func (h *treeHeap) Init() {
	heap.Init(h)
}

func (h *treeHeap) Len() int {
	return len(h.list)
}

func (h *treeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *treeHeap) Less(i, j int) bool {
	return compareTrees(h.list[i], h.list[j]) < 0
}

func (h *treeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(node))
}

func (h *treeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*treeHeap)(nil)

// }}}
