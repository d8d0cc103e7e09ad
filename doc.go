// Package hufftree implements a lossless compressor and decompressor for
// byte streams, using a Huffman prefix code built from the exact symbol
// distribution of each input.  The compressed stream is self-describing: a
// pre-order serialization of the code tree precedes the bit-packed payload,
// and an artificial end-of-stream symbol marks the logical end of the
// payload, so no external length metadata is needed.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Prefix_code>
//
package hufftree
