package hufftree

// Symbol represents a symbol in the compressor's alphabet: a byte value in
// [0, 255], or the artificial end-of-stream marker PseudoEOF.
type Symbol int32

const (
	// BitsPerWord is the width in bits of one input or output byte.
	BitsPerWord = 8

	// AlphabetSize is the number of natural byte-valued symbols.
	AlphabetSize = 1 << BitsPerWord

	// PseudoEOF is the artificial end-of-stream symbol.  It never occurs
	// literally in the input; the counting pass injects it so that the
	// decoder can detect the logical end of the payload.
	PseudoEOF = Symbol(AlphabetSize)

	// NumSymbols is the size of the full symbol space, PseudoEOF included.
	NumSymbols = AlphabetSize + 1
)

// InvalidSymbol marks internal tree nodes, which carry no symbol.
const InvalidSymbol = Symbol(-1)

const (
	huffNumber uint32 = 0xface8200
	huffTree          = huffNumber | 1

	magicBits      = 32
	leafSymbolBits = BitsPerWord + 1
)
