// Package huffzip implements a lossless byte-stream compressor built on a
// Huffman prefix code.  The code tree is constructed deterministically from
// the byte frequencies of the input, so only the frequency table needs to be
// persisted alongside the encoded bits: the decoder rebuilds the exact tree
// the encoder used and never sees the code table itself.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://opendsa-server.cs.vt.edu/ODSA/Books/CS3/html/Huffman.html>
//
package huffzip
