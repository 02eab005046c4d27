package huffzip

import (
	"fmt"
)

// Compress builds the frequency table for data, constructs the Huffman tree
// and code table from it, encodes data, and bundles the frequency table with
// the encoded bits into an Archive ready for persistence.
func Compress(data []byte) Archive {
	freqs := CountBytes(data)
	tree := BuildTree(freqs)
	codes := DeriveCodes(tree)
	seq := Encode(data, codes)
	return NewArchive(freqs, seq)
}

// Decompress rebuilds the Huffman tree from the archive's frequency table
// and decodes the archive's bit sequence back into the original bytes.
//
// The tree is always rebuilt from frequencies, never loaded; combined with
// the deterministic construction in BuildTree this guarantees the decode
// walks the identical tree the encoder used.
//
func Decompress(a Archive) ([]byte, error) {
	freqs := a.Frequencies()
	tree := BuildTree(freqs)
	out, err := Decode(a.Encoding(), tree)
	if err != nil {
		return nil, err
	}
	if total := freqs.Total(); uint64(len(out)) != total {
		return nil, fmt.Errorf("decoded %d bytes but the frequency table promises %d: %w", len(out), total, ErrMalformedStream)
	}
	return out, nil
}
