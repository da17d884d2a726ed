package codec

import (
	"encoding/binary"
	"math"
)

// readCompactSize reads one compact-size integer from b and returns the
// value and the number of bytes consumed.
func readCompactSize(b []byte) (uint64, int, bool) {
	if len(b) == 0 {
		return 0, 0, false
	}
	switch prefix := b[0]; {
	case prefix < 0xfd:
		return uint64(prefix), 1, true
	case prefix == 0xfd:
		if len(b) < 3 {
			return 0, 0, false
		}
		return uint64(binary.LittleEndian.Uint16(b[1:3])), 3, true
	case prefix == 0xfe:
		if len(b) < 5 {
			return 0, 0, false
		}
		return uint64(binary.LittleEndian.Uint32(b[1:5])), 5, true
	default:
		if len(b) < 9 {
			return 0, 0, false
		}
		return binary.LittleEndian.Uint64(b[1:9]), 9, true
	}
}

// appendCompactSize appends v in its shortest compact-size form.
func appendCompactSize(b []byte, v uint64) []byte {
	switch {
	case v < 0xfd:
		return append(b, byte(v))
	case v <= math.MaxUint16:
		b = append(b, 0xfd)
		return binary.LittleEndian.AppendUint16(b, uint16(v))
	case v <= math.MaxUint32:
		b = append(b, 0xfe)
		return binary.LittleEndian.AppendUint32(b, uint32(v))
	default:
		b = append(b, 0xff)
		return binary.LittleEndian.AppendUint64(b, v)
	}
}
