package huffzip

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/icza/bitio"
)

// Archive bundles a frequency table with the bit sequence its input encodes
// to.  It is the only entity that crosses the persistence boundary: the code
// table and the tree are deliberately absent and are rederived from the
// frequency table on load, so the decoder is guaranteed to reconstruct the
// identical tree the encoder used.
//
// An Archive is immutable once constructed; the accessors return copies.
type Archive struct {
	freqs FreqTable
	seq   BitSeq
}

// Serialized layout, all integers big-endian:
//
//	magic "hZ" + version        3 bytes
//	symbol count                uint16 (0..256)
//	per symbol, ascending:      byte + count (uint64)
//	payload length in bits      uint64
//	payload bits                MSB-first, zero-padded to a byte boundary
//	xxhash64 of the above       uint64
//
const (
	archiveMagic0  = 'h'
	archiveMagic1  = 'Z'
	archiveVersion = 0x01

	archiveFixedSize = 3 + 2 + 8 + 8 // magic+version, symbol count, bit length, checksum
	archiveEntrySize = 1 + 8
)

// Errors returned by ReadArchive.
var (
	ErrBadMagic    = errors.New("huffzip: not an archive")
	ErrBadVersion  = errors.New("huffzip: unsupported archive version")
	ErrBadChecksum = errors.New("huffzip: archive checksum mismatch")
	ErrTruncated   = errors.New("huffzip: archive is truncated")
	ErrCorrupt     = errors.New("huffzip: archive is corrupt")
)

// NewArchive constructs an Archive from a frequency table and the bit
// sequence encoded under that table's tree.  Both arguments are copied.
func NewArchive(freqs FreqTable, seq BitSeq) Archive {
	return Archive{freqs: freqs.Clone(), seq: seq.Clone()}
}

// Frequencies returns a copy of the archive's frequency table.
func (a Archive) Frequencies() FreqTable {
	return a.freqs.Clone()
}

// Encoding returns a copy of the archive's encoded bit sequence.
func (a Archive) Encoding() BitSeq {
	return a.seq.Clone()
}

// WriteTo serializes the archive.  The exact key/count pairs of the
// frequency table and the exact order and length of the bit sequence
// round-trip through ReadArchive bit-for-bit; the trailing byte-alignment
// padding is excluded by the stored bit length and is never readable by the
// decoder.
func (a Archive) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)

	bw.TryWriteByte(archiveMagic0)
	bw.TryWriteByte(archiveMagic1)
	bw.TryWriteByte(archiveVersion)

	syms := a.freqs.Symbols()
	bw.TryWriteBits(uint64(len(syms)), 16)
	for _, sym := range syms {
		bw.TryWriteByte(sym)
		bw.TryWriteBits(a.freqs[sym], 64)
	}

	bw.TryWriteBits(uint64(a.seq.Len()), 64)
	if _, err := bw.Write(a.seq.Bytes()); err != nil {
		return 0, err
	}
	if err := bw.Close(); err != nil {
		return 0, err
	}
	if bw.TryError != nil {
		return 0, bw.TryError
	}

	var sum [8]byte
	binary.BigEndian.PutUint64(sum[:], xxhash.Sum64(buf.Bytes()))
	buf.Write(sum[:])

	return buf.WriteTo(w)
}

// ReadArchive deserializes an archive previously written with WriteTo.  It
// verifies the magic, version, structure, and checksum before returning;
// failures are reported with the Err* sentinels in this package, wrapped
// with context.
func ReadArchive(r io.Reader) (Archive, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Archive{}, fmt.Errorf("huffzip: reading archive: %w", err)
	}
	if len(raw) < archiveFixedSize {
		return Archive{}, fmt.Errorf("%d bytes is smaller than any archive: %w", len(raw), ErrTruncated)
	}
	if raw[0] != archiveMagic0 || raw[1] != archiveMagic1 {
		return Archive{}, ErrBadMagic
	}
	if raw[2] != archiveVersion {
		return Archive{}, fmt.Errorf("version 0x%02x: %w", raw[2], ErrBadVersion)
	}

	body, tail := raw[:len(raw)-8], raw[len(raw)-8:]
	if xxhash.Sum64(body) != binary.BigEndian.Uint64(tail) {
		return Archive{}, ErrBadChecksum
	}

	br := bitio.NewReader(bytes.NewReader(body[3:]))

	numSyms := int(br.TryReadBits(16))
	if numSyms > 256 {
		return Archive{}, fmt.Errorf("%d distinct symbols: %w", numSyms, ErrCorrupt)
	}

	freqs := make(FreqTable, numSyms)
	lastSym := -1
	for i := 0; i < numSyms; i++ {
		sym := br.TryReadByte()
		count := br.TryReadBits(64)
		if br.TryError != nil {
			break
		}
		if int(sym) <= lastSym {
			return Archive{}, fmt.Errorf("symbol 0x%02x out of order: %w", sym, ErrCorrupt)
		}
		if count == 0 {
			return Archive{}, fmt.Errorf("symbol 0x%02x has zero count: %w", sym, ErrCorrupt)
		}
		lastSym = int(sym)
		freqs[sym] = count
	}

	bitLen := br.TryReadBits(64)
	if br.TryError != nil {
		return Archive{}, fmt.Errorf("reading archive header: %w", ErrTruncated)
	}

	payloadLen := len(body) - (archiveFixedSize - 8) - numSyms*archiveEntrySize
	if payloadLen < 0 || bitLen > uint64(payloadLen)*8 || uint64(payloadLen)*8-bitLen >= 8 {
		return Archive{}, fmt.Errorf("payload of %d bytes cannot hold %d bits: %w", payloadLen, bitLen, ErrCorrupt)
	}

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(br, payload); err != nil {
		return Archive{}, fmt.Errorf("reading archive payload: %w", ErrTruncated)
	}

	return Archive{freqs: freqs, seq: BitSeqFromBytes(payload, int(bitLen))}, nil
}

var _ io.WriterTo = Archive{}
