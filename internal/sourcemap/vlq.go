package sourcemap

import (
	"errors"
	"fmt"
	"strings"

	"fortio.org/safecast"
)

const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const (
	vlqBaseShift       = 5
	vlqBase            = 1 << vlqBaseShift
	vlqBaseMask        = vlqBase - 1
	vlqContinuationBit = vlqBase
)

var base64Index = func() [128]int8 {
	var idx [128]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := range len(base64Chars) {
		idx[base64Chars[i]] = int8(i)
	}
	return idx
}()

var errVLQ = errors.New("sourcemap: invalid VLQ")

// encodeVLQ appends the base64 VLQ form of v to sb.
func encodeVLQ(sb *strings.Builder, v int) {
	var vlq uint64
	if v < 0 {
		vlq = uint64(-v)<<1 | 1
	} else {
		vlq = uint64(v) << 1
	}
	for {
		digit := vlq & vlqBaseMask
		vlq >>= vlqBaseShift
		if vlq > 0 {
			digit |= vlqContinuationBit
		}
		sb.WriteByte(base64Chars[digit])
		if vlq == 0 {
			return
		}
	}
}

// decodeSegment decodes all VLQ values of one comma-separated segment.
func decodeSegment(seg string, out []int) ([]int, error) {
	out = out[:0]
	var (
		value uint64
		shift uint
	)
	for i := range len(seg) {
		ch := seg[i]
		if ch >= 128 || base64Index[ch] < 0 {
			return nil, fmt.Errorf("%w: unexpected %q in %q", errVLQ, ch, seg)
		}
		digit := uint64(base64Index[ch])
		if shift > 60 {
			return nil, fmt.Errorf("%w: value overflow in %q", errVLQ, seg)
		}
		value |= (digit & vlqBaseMask) << shift
		if digit&vlqContinuationBit != 0 {
			shift += vlqBaseShift
			continue
		}
		magnitude, err := safecast.Conv[int](value >> 1)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errVLQ, err)
		}
		if value&1 == 1 {
			magnitude = -magnitude
		}
		out = append(out, magnitude)
		value, shift = 0, 0
	}
	if shift != 0 {
		return nil, fmt.Errorf("%w: truncated segment %q", errVLQ, seg)
	}
	return out, nil
}
