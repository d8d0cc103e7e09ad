package hufftree

import (
	"errors"
	"fmt"
	"io"
)

// writeCompressed performs the encoding pass: it rereads the source byte by
// byte, emits each byte's code as a contiguous run of bits, and terminates
// the payload with the PseudoEOF code.  The table must come from a tree
// that includes every symbol present in the source; a mismatched table
// produces undefined output, not a managed error.
func writeCompressed(ct *CodeTable, src BitReader, dst BitWriter) error {
	for {
		val, err := src.ReadBits(BitsPerWord)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("hufftree: encoding pass: %w", err)
		}
		if err := writeCode(dst, ct.codes[val]); err != nil {
			return err
		}
	}
	return writeCode(dst, ct.codes[PseudoEOF])
}

func writeCode(dst BitWriter, hc Code) error {
	return dst.WriteBits(hc.Bits, hc.Size)
}

// readCompressed walks the tree against the remaining source bits: a 0 bit
// descends left and a 1 bit descends right.  Each leaf reached emits its
// symbol as one output byte and resets the walk to the root, except the
// PseudoEOF leaf, which terminates decoding successfully.
//
// A source that runs out of bits before PseudoEOF is reached yields
// ErrBadInput, as does a walk that steps off the tree.
//
func readCompressed(t *Tree, src BitReader, dst BitWriter) error {
	current := t.root
	for {
		bit, err := src.ReadBits(1)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("%w: unexpected end of stream", ErrBadInput)
			}
			return fmt.Errorf("hufftree: reading payload: %w", err)
		}

		if bit == 0 {
			current = current.left
		} else {
			current = current.right
		}
		if current == nil {
			return fmt.Errorf("%w: walked off the tree", ErrBadInput)
		}

		if current.isLeaf() {
			if current.symbol == PseudoEOF {
				return nil
			}
			if err := dst.WriteBits(uint64(current.symbol), BitsPerWord); err != nil {
				return err
			}
			current = t.root
		}
	}
}
