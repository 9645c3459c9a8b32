package compress

import "fmt"

func init() {
	Register(CodeRTIME, func() Decoder { return rtimeDecoder{} })
}

// rtimeDecoder implements JFFS2's RTIME codec, a small repetition-based
// coder keyed on a per-byte-value position table. There is no off-the-shelf
// Go library for it; the pack carries nothing comparable, so this is
// written from scratch against the JFFS2 on-disk scheme (see DESIGN.md).
type rtimeDecoder struct{}

// Decompress runs the RTIME decode loop: one literal byte, then one repeat
// length byte, alternating until expectedLen output bytes are produced.
// positions[v] tracks the output offset just after the most recent literal
// byte with value v; a nonzero repeat length L copies L bytes starting at
// the position recorded for the *previous* occurrence of v (before this
// literal's position overwrites it), letting overlapping source/destination
// ranges produce run-length repetition.
func (rtimeDecoder) Decompress(compressed []byte, expectedLen int) ([]byte, error) {
	out := make([]byte, expectedLen)
	var positions [256]int

	in, outPos := 0, 0
	for outPos < expectedLen {
		if in >= len(compressed) {
			return nil, fmt.Errorf("%w: rtime: input exhausted at output offset %d of %d", ErrDecompress, outPos, expectedLen)
		}
		literal := compressed[in]
		in++
		out[outPos] = literal
		outPos++

		if in >= len(compressed) {
			return nil, fmt.Errorf("%w: rtime: missing repeat length at output offset %d", ErrDecompress, outPos)
		}
		repeat := int(compressed[in])
		in++

		backoff := positions[literal]
		positions[literal] = outPos

		if repeat == 0 {
			continue
		}
		if outPos+repeat > expectedLen {
			return nil, fmt.Errorf("%w: rtime: repeat of %d bytes overruns expected length %d", ErrDecompress, repeat, expectedLen)
		}
		for range repeat {
			out[outPos] = out[backoff]
			outPos++
			backoff++
		}
	}

	return out, nil
}
