package huffzip

import (
	"testing"
)

func TestEncode(t *testing.T) {
	type testRow struct {
		name   string
		input  []byte
		expect string
	}

	testData := [...]testRow{
		{name: "Empty", input: nil, expect: "\"\""},
		{name: "RepeatedByte", input: []byte{0x41, 0x41, 0x41}, expect: "\"111\""},
		{name: "AAB", input: []byte("aab"), expect: "\"110\""},
		{name: "ABA", input: []byte("aba"), expect: "\"101\""},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			ct := DeriveCodes(BuildTree(CountBytes(row.input)))
			seq := Encode(row.input, ct)
			if actual := seq.String(); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestEncode_PreservesInputOrder(t *testing.T) {
	input := []byte("fffffcdcdcde")
	ct := DeriveCodes(BuildTree(CountBytes(input)))

	seq := Encode(input, ct)

	var expect BitSeq
	for _, b := range input {
		expect.Append(ct.Code(b))
	}
	if !seq.Equal(expect) {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, seq)
	}
}

func TestEncode_LengthMatchesCodeLengths(t *testing.T) {
	input := []byte("the quick brown fox jumps over the lazy dog")
	ft := CountBytes(input)
	ct := DeriveCodes(BuildTree(ft))

	var expectLen uint64
	for b, count := range ft {
		expectLen += count * uint64(ct.Code(b).Len())
	}

	seq := Encode(input, ct)
	if uint64(seq.Len()) != expectLen {
		t.Errorf("expected Len() %d, got %d", expectLen, seq.Len())
	}
}
