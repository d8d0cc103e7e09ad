package hufftree

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Error kinds reported by decompression.  All three are terminal for the
// current run; callers can match them with errors.Is.
var (
	// ErrIllegalHeader reports that the stream does not begin with the
	// tree-header format's magic word.
	ErrIllegalHeader = errors.New("hufftree: illegal header")

	// ErrTreeCorrupt reports that the stream ended while the serialized
	// tree header was still structurally incomplete.
	ErrTreeCorrupt = errors.New("hufftree: corrupt tree header")

	// ErrBadInput reports that the payload ended before the end-of-stream
	// marker was reached.
	ErrBadInput = errors.New("hufftree: bad input")
)

// Verbosity selects how much debug reporting a Processor performs.  It has
// no effect on the produced stream.
type Verbosity int

const (
	// VerbosityNone disables debug reporting.
	VerbosityNone Verbosity = iota

	// VerbosityLow reports a one-line alphabet summary per compression.
	VerbosityLow

	// VerbosityHigh additionally reports each symbol's assigned code.
	VerbosityHigh
)

// Processor compresses and decompresses byte streams.  Every run constructs
// its own frequency table, tree, and code table from scratch; a Processor
// carries only its debug configuration and is therefore reusable across
// runs.
type Processor struct {
	verbosity Verbosity
	debugW    io.Writer
}

// Option configures a Processor.
type Option func(*Processor)

// WithVerbosity sets the Processor's debug verbosity.
func WithVerbosity(v Verbosity) Option {
	return func(p *Processor) { p.verbosity = v }
}

// WithDebugWriter sets the writer that receives debug reports.  The
// default is io.Discard.
func WithDebugWriter(w io.Writer) Option {
	return func(p *Processor) { p.debugW = w }
}

// New constructs a Processor.
func New(opts ...Option) *Processor {
	p := &Processor{debugW: io.Discard}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Compress reads the source twice — a full counting pass, then a full
// encoding pass, separated by one Reset — and writes the magic word, the
// serialized tree header, and the bit-packed payload to the sink.  The
// process is reversible and lossless.  The sink is closed on every exit
// path.
func (p *Processor) Compress(src Source, dst BitWriter) (err error) {
	defer closeSink(dst, &err)

	var ft FrequencyTable
	if err := ft.Count(src); err != nil {
		return err
	}
	t := BuildTree(&ft)
	ct := t.Codes()
	p.report(&ft, ct)

	if err := dst.WriteBits(uint64(huffTree), magicBits); err != nil {
		return err
	}
	if err := t.WriteHeader(dst); err != nil {
		return err
	}
	if err := src.Reset(); err != nil {
		return fmt.Errorf("hufftree: rewinding input: %w", err)
	}
	return writeCompressed(ct, src, dst)
}

// Decompress checks the magic word, reconstructs the tree from the
// serialized header, and walks it against the remaining bits to recover
// the original bytes, written to the sink 8 bits at a time.  The sink is
// closed on every exit path.
func (p *Processor) Decompress(src BitReader, dst BitWriter) (err error) {
	defer closeSink(dst, &err)

	magic, merr := src.ReadBits(magicBits)
	if merr != nil {
		return fmt.Errorf("%w: %v", ErrIllegalHeader, merr)
	}
	if uint32(magic) != huffTree {
		return fmt.Errorf("%w: starts with %#08x", ErrIllegalHeader, magic)
	}

	t, terr := ReadHeader(src)
	if terr != nil {
		return terr
	}
	return readCompressed(t, src, dst)
}

// CompressBytes compresses data in memory and returns the framed
// compressed stream.
func (p *Processor) CompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := p.Compress(NewByteSource(data), w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes decompresses a stream produced by CompressBytes (or any
// stream in the same wire format) and returns the original bytes.
func (p *Processor) DecompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := p.Decompress(bitio.NewReader(bytes.NewReader(data)), w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func closeSink(dst BitWriter, err *error) {
	if cerr := dst.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}

func (p *Processor) report(ft *FrequencyTable, ct *CodeTable) {
	if p.verbosity < VerbosityLow {
		return
	}
	var distinct int
	var total uint64
	for symbol := Symbol(0); symbol < PseudoEOF; symbol++ {
		if n := ft.Get(symbol); n != 0 {
			distinct++
			total += n
		}
	}
	fmt.Fprintf(p.debugW, "hufftree: %d bytes over %d distinct symbols\n", total, distinct)
	if p.verbosity < VerbosityHigh {
		return
	}
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if hc := ct.Code(symbol); hc.Size != 0 {
			fmt.Fprintf(p.debugW, "encoding for %d is %s\n", symbol, hc)
		}
	}
}
