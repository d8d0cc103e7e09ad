package hufftree

import (
	"bytes"
	"io"

	"github.com/icza/bitio"
)

// BitReader is the source-of-bits port.  ReadBits returns the next n bits
// of the stream as the low-order bits of an unsigned integer; exhaustion is
// reported as io.EOF.
type BitReader interface {
	ReadBits(n uint8) (uint64, error)
}

// BitWriter is the sink-of-bits port.  Close flushes any partial trailing
// byte, padding it with zero bits, and releases the sink; it is called on
// every exit path so partial output is never silently lost.
type BitWriter interface {
	WriteBits(r uint64, n uint8) error
	Close() error
}

// Source is a rewindable BitReader.  Compression consumes its input twice,
// a counting pass and then an encoding pass, with a single Reset between
// the two.
type Source interface {
	BitReader
	Reset() error
}

var (
	_ BitReader = (*bitio.Reader)(nil)
	_ BitWriter = (*bitio.Writer)(nil)
)

type seekSource struct {
	rs io.ReadSeeker
	br *bitio.Reader
}

// NewSource returns a Source that reads the given stream from its current
// position.  Reset seeks back to the start of the stream.
func NewSource(rs io.ReadSeeker) Source {
	return &seekSource{rs: rs, br: bitio.NewReader(rs)}
}

// NewByteSource returns a Source over an in-memory byte slice.
func NewByteSource(data []byte) Source {
	return NewSource(bytes.NewReader(data))
}

func (s *seekSource) ReadBits(n uint8) (uint64, error) {
	return s.br.ReadBits(n)
}

func (s *seekSource) Reset() error {
	if _, err := s.rs.Seek(0, io.SeekStart); err != nil {
		return err
	}
	s.br = bitio.NewReader(s.rs)
	return nil
}
