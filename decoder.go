package huffzip

import (
	"errors"
	"fmt"
)

// ErrMalformedStream is returned by Decode when the bit sequence does not
// describe a whole number of symbols under the given tree: a transition with
// no target, or bits that run out in the middle of a code.
var ErrMalformedStream = errors.New("huffzip: malformed bit stream")

// Decode walks the tree once per encoded symbol and returns the original
// bytes.  A cursor starts at the root; each bit moves it to the left child
// on 0 or the right child on 1, and reaching a leaf emits that leaf's byte
// and resets the cursor to the root.  The sequence must exhaust exactly at a
// leaf boundary.
func Decode(seq BitSeq, t Tree) ([]byte, error) {
	out := make([]byte, 0, t.total)
	cur := t.root
	for i := 0; i < seq.Len(); i++ {
		inner, ok := cur.(*innerNode)
		if !ok {
			return nil, fmt.Errorf("bit %d: no transition from a leaf-only tree: %w", i, ErrMalformedStream)
		}

		var next node
		if seq.Bit(i) == 0 {
			next = inner.left
		} else {
			next = inner.right
		}
		if next == nil {
			return nil, fmt.Errorf("bit %d: transition on 0 has no target: %w", i, ErrMalformedStream)
		}

		if leaf, isLeaf := next.(*leafNode); isLeaf {
			out = append(out, leaf.sym)
			cur = t.root
		} else {
			cur = next
		}
	}
	if cur != t.root {
		return nil, fmt.Errorf("bit sequence of length %d ends mid-code: %w", seq.Len(), ErrMalformedStream)
	}
	return out, nil
}
