package huffzip

import (
	"bytes"
	"testing"
)

func TestBitSeq_AppendBit(t *testing.T) {
	var seq BitSeq
	for _, bit := range []uint{1, 1, 0, 1, 0, 0, 0, 1, 1} {
		seq.AppendBit(bit)
	}

	if seq.Len() != 9 {
		t.Errorf("expected Len() 9, got %d", seq.Len())
	}

	expectString := "\"110100011\""
	actualString := seq.String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}

	expectBytes := []byte{0xd1, 0x80}
	actualBytes := seq.Bytes()
	if !bytes.Equal(expectBytes, actualBytes) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expectBytes, actualBytes)
	}
}

func TestBitSeq_Bit(t *testing.T) {
	seq := MakeBitSeq(1, 0, 0, 1, 0, 1, 1, 1, 0, 1)
	expect := []uint{1, 0, 0, 1, 0, 1, 1, 1, 0, 1}
	for i, bit := range expect {
		if actual := seq.Bit(i); actual != bit {
			t.Errorf("Bit(%d): expected %d, got %d", i, bit, actual)
		}
	}
}

func TestBitSeq_Append(t *testing.T) {
	seq := MakeBitSeq(1, 0)
	seq.Append(MakeBitSeq(0, 1, 1))
	seq.Append(MakeBitSeq())
	seq.Append(MakeBitSeq(1, 1, 1, 1, 0, 0, 0, 0, 1))

	expectString := "\"10011111100001\""
	actualString := seq.String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}

func TestBitSeq_FromBytes(t *testing.T) {
	type testRow struct {
		name   string
		data   []byte
		size   int
		expect string
	}

	testData := [...]testRow{
		{name: "Empty", data: nil, size: 0, expect: "\"\""},
		{name: "WholeByte", data: []byte{0xa5}, size: 8, expect: "\"10100101\""},
		{name: "PartialByte", data: []byte{0xa5}, size: 3, expect: "\"101\""},
		{name: "PartialTail", data: []byte{0xff, 0xc0}, size: 10, expect: "\"1111111111\""},
		{name: "IgnoresSparePaddingBits", data: []byte{0xff, 0xff}, size: 10, expect: "\"1111111111\""},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			seq := BitSeqFromBytes(row.data, row.size)
			if actual := seq.String(); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestBitSeq_PaddingIsZeroed(t *testing.T) {
	seq := BitSeqFromBytes([]byte{0xff}, 3)
	expectBytes := []byte{0xe0}
	actualBytes := seq.Bytes()
	if !bytes.Equal(expectBytes, actualBytes) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expectBytes, actualBytes)
	}
}

func TestBitSeq_Equal(t *testing.T) {
	a := MakeBitSeq(1, 0, 1)
	b := BitSeqFromBytes([]byte{0xa0}, 3)
	c := MakeBitSeq(1, 0, 1, 0)

	if !a.Equal(b) {
		t.Errorf("expected %s == %s", a, b)
	}
	if a.Equal(c) {
		t.Errorf("expected %s != %s", a, c)
	}
	if !a.Equal(a.Clone()) {
		t.Errorf("expected %s == its own clone", a)
	}
}

func TestBitSeq_CloneIsIndependent(t *testing.T) {
	orig := MakeBitSeq(1, 0, 1)
	dupe := orig.Clone()
	dupe.AppendBit(1)

	if orig.Len() != 3 {
		t.Errorf("expected original Len() 3 after mutating clone, got %d", orig.Len())
	}
	if dupe.Len() != 4 {
		t.Errorf("expected clone Len() 4, got %d", dupe.Len())
	}
}
