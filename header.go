package hufftree

import (
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// WriteHeader serializes the tree shape to the sink in pre-order: a single
// 0 bit introduces an internal node, whose two children follow recursively;
// a single 1 bit introduces a leaf, followed by its symbol as a fixed 9-bit
// integer.  The ninth bit is what lets the symbol space reach PseudoEOF.
func (t *Tree) WriteHeader(dst BitWriter) error {
	return t.root.writeTo(dst)
}

func (n *node) writeTo(dst BitWriter) error {
	if !n.isLeaf() {
		if err := dst.WriteBits(0, 1); err != nil {
			return err
		}
		if err := n.left.writeTo(dst); err != nil {
			return err
		}
		return n.right.writeTo(dst)
	}
	assert.Assertf(n.symbol >= 0 && n.symbol <= PseudoEOF, "leaf symbol %d out of range", n.symbol)
	if err := dst.WriteBits(1, 1); err != nil {
		return err
	}
	return dst.WriteBits(uint64(n.symbol), leafSymbolBits)
}

// ReadHeader reconstructs a tree from the bit sequence produced by
// WriteHeader.  The reconstructed tree has the same shape, with the same
// leaf symbols at the same positions; weights are not transmitted and are
// left zero.
//
// A source that runs out of bits while the header is still structurally
// incomplete yields ErrTreeCorrupt.
//
func ReadHeader(src BitReader) (*Tree, error) {
	root, err := readNode(src)
	if err != nil {
		return nil, err
	}
	return &Tree{root: root}, nil
}

func readNode(src BitReader) (*node, error) {
	bit, err := src.ReadBits(1)
	if err != nil {
		return nil, corruptHeader(err)
	}
	if bit == 0 {
		left, err := readNode(src)
		if err != nil {
			return nil, err
		}
		right, err := readNode(src)
		if err != nil {
			return nil, err
		}
		return &node{symbol: InvalidSymbol, left: left, right: right}, nil
	}
	val, err := src.ReadBits(leafSymbolBits)
	if err != nil {
		return nil, corruptHeader(err)
	}
	if val > uint64(PseudoEOF) {
		return nil, fmt.Errorf("%w: leaf symbol %d out of range", ErrTreeCorrupt, val)
	}
	return &node{symbol: Symbol(val)}, nil
}

func corruptHeader(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: reading bits failed", ErrTreeCorrupt)
	}
	return fmt.Errorf("hufftree: reading tree header: %w", err)
}
