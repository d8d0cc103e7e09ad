package hufftree

import (
	"errors"
	"fmt"
	"io"
)

// FrequencyTable records the number of occurrences of each symbol over one
// full pass of an input stream.
type FrequencyTable struct {
	counts [NumSymbols]uint64
}

// Count performs the counting pass: it reads the source byte by byte, start
// to finish, with no rewinding, and records one count per occurrence.  When
// the input is nonempty the PseudoEOF slot is pinned to exactly 1, since
// PseudoEOF never occurs literally in the input.  When the input is empty
// the table stays all zero.
//
// Exhaustion of the source is the expected termination and is not an error.
//
func (ft *FrequencyTable) Count(src BitReader) error {
	for {
		val, err := src.ReadBits(BitsPerWord)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("hufftree: counting pass: %w", err)
		}
		ft.counts[val]++
		ft.counts[PseudoEOF] = 1
	}
}

// Get returns the recorded count for the given symbol.
func (ft *FrequencyTable) Get(symbol Symbol) uint64 {
	return ft.counts[symbol]
}

// Add increases the recorded count for the given symbol by n.  It exists
// for callers that build a distribution from something other than a single
// byte-stream pass.
func (ft *FrequencyTable) Add(symbol Symbol, n uint64) {
	ft.counts[symbol] += n
}
