package huffzip

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each distinct byte value to its prefix-free bit-string
// code.  Derive one with DeriveCodes; it holds exactly one entry per
// distinct byte in the frequency table the tree was built from.
type CodeTable map[byte]BitSeq

// DeriveCodes walks the tree and returns the byte-to-code mapping, appending
// a 0 for each left transition and a 1 for each right transition.  Only
// leaves carry codes, so the resulting set of codes is prefix-free by
// construction.
//
// The sentinel tree for empty input yields an empty table.
//
func DeriveCodes(t Tree) CodeTable {
	ct := make(CodeTable)
	if _, sentinel := t.root.(*leafNode); sentinel {
		return ct
	}

	var walk func(cur node, path BitSeq)
	walk = func(cur node, path BitSeq) {
		switch cur := cur.(type) {
		case *leafNode:
			ct[cur.sym] = path
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
	return ct
}

// Code returns the code for the given byte.  The byte must have an entry;
// asking for a byte absent from the table is a contract violation, not a
// recoverable condition.
func (ct CodeTable) Code(b byte) BitSeq {
	code, found := ct[b]
	assert.Assertf(found, "no code for byte 0x%02x", b)
	return code
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer, in ascending byte order.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, b := range ct.symbols() {
		fmt.Fprintf(&buf, "\tCode(0x%02x) = %s\n", b, ct[b])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns Dump's output as a string.
func (ct CodeTable) DebugString() string {
	var buf strings.Builder
	_, _ = ct.Dump(&buf)
	return buf.String()
}

func (ct CodeTable) symbols() []byte {
	out := make([]byte, 0, len(ct))
	for i := 0; i < 256; i++ {
		if _, found := ct[byte(i)]; found {
			out = append(out, byte(i))
		}
	}
	return out
}
