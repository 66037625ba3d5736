package frame

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// Fingerprints are cheap content hashes over a container's data, names, and
// ordering. Two containers with equal content produce the same fingerprint,
// so callers (and tests) can assert that a validation pass did not disturb a
// container without a deep comparison.

// Fingerprint returns a content hash of the index: its names and labels, in order.
func (ix Index) Fingerprint() uint64 {
	buf := make([]byte, 0, 16*(len(ix.labels)+len(ix.names)))

	for _, name := range ix.names {
		buf = appendString(buf, name)
	}

	for _, label := range ix.labels {
		buf = appendValue(buf, label)
	}

	return xxh3.Hash(buf)
}

// Fingerprint returns a content hash of the series: its name, values, and index.
func (s Series) Fingerprint() uint64 {
	buf := make([]byte, 0, 16*(len(s.values)+1))
	buf = appendString(buf, s.name)

	for _, v := range s.values {
		buf = appendValue(buf, v)
	}

	buf = binary.LittleEndian.AppendUint64(buf, s.index.Fingerprint())

	return xxh3.Hash(buf)
}

// Fingerprint returns a content hash of the frame: column order, column
// contents, and the row index.
func (f Frame) Fingerprint() uint64 {
	buf := make([]byte, 0, 16*(len(f.colNames)+1))

	for _, name := range f.colNames {
		buf = appendString(buf, name)
		buf = binary.LittleEndian.AppendUint64(buf, f.cols[name].Fingerprint())
	}

	buf = binary.LittleEndian.AppendUint64(buf, f.index.Fingerprint())

	return xxh3.Hash(buf)
}

// appendValue encodes a cell into buf with a kind tag so that, for example,
// Int(0) and Bool(false) never collide. Numerically equal ints and floats
// are folded together, matching Equals.
func appendValue(buf []byte, v Value) []byte {
	c := v.canonical()
	buf = append(buf, byte(c.kind))

	switch c.kind {
	case KindNull:
	case KindBool:
		if c.b {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	case KindInt:
		buf = binary.LittleEndian.AppendUint64(buf, uint64(c.i))
	case KindFloat:
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(c.f))
	case KindString:
		buf = appendString(buf, c.s)
	}

	return buf
}

// appendString length-prefixes the string to keep encodings unambiguous.
func appendString(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(s)))

	return append(buf, s...)
}
