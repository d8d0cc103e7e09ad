package hufftree

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// maxCodeSize is the longest code word the generator will assign.  A real
// counting pass cannot come close: forcing a code of length L requires a
// total weight that grows like fib(L), so length 64 would need more input
// bytes than a uint64 can count.
const maxCodeSize = 64

// Code represents a sequence of bits: the root-to-leaf path assigned to one
// symbol.  The most significant of the Size valid bits is the first bit of
// the path, which is also the order the bits appear on the wire.
type Code struct {
	// Size holds the number of valid bits.
	Size uint8

	// Bits holds the actual values of the bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size uint8, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

// CodeTable maps each symbol to its assigned Code.  A Code with Size 0
// means the symbol has no leaf in the tree.  A table is built fresh per
// compression run and discarded afterward.
type CodeTable struct {
	codes [NumSymbols]Code
}

// Code returns the code assigned to the given symbol.
func (ct *CodeTable) Code(symbol Symbol) Code {
	return ct.codes[symbol]
}

// Dump writes a programmer-readable debugging dump of the code table to the
// given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		hc := ct.codes[symbol]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tCode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Codes walks the tree and returns its code table: descending to a left
// child appends a 0 bit, descending to a right child appends a 1 bit, and
// the accumulated path is recorded at each leaf.  The codes form a prefix
// code by construction.
//
// Every leaf has a code of at least one bit; BuildTree never produces a
// bare single-leaf root.
//
func (t *Tree) Codes() *CodeTable {
	ct := new(CodeTable)
	t.root.appendCodes(ct, 0, 0)
	return ct
}

func (n *node) appendCodes(ct *CodeTable, bits uint64, size uint8) {
	if n.isLeaf() {
		assert.Assertf(size > 0, "leaf %d reached with an empty code", n.symbol)
		ct.codes[n.symbol] = MakeCode(size, bits)
		return
	}
	assert.Assertf(size < maxCodeSize, "code longer than %d bits", maxCodeSize)
	n.left.appendCodes(ct, bits<<1, size+1)
	n.right.appendCodes(ct, bits<<1|1, size+1)
}
