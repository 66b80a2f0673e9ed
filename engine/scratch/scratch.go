package scratch

import "strconv"

// Package-level reusable buffer (single-threaded usage). Initialize once
// with Init(capacity), Reset() every frame, build text with the chainable
// Builder. Keeps per-frame debug text off the heap.
var buf []byte

// Init sets up the global scratch buffer. Call once at startup.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1024
	}
	buf = make([]byte, 0, capacity)
}

// Reset clears the buffer length without freeing memory. Call once per
// frame before building overlay text.
func Reset() { buf = buf[:0] }

// Cap returns the current capacity. Useful for tuning.
func Cap() int { return cap(buf) }

// Len returns the current length.
func Len() int { return len(buf) }

// Mark returns a bookmark to later slice the output.
func Mark() int { return len(buf) }

// StringFrom copies the bytes produced since mark into a string.
func StringFrom(mark int) string { return string(buf[mark:]) }

// String copies the whole buffer into a string.
func String() string { return string(buf) }

// ----- Chainable builder over the global buffer -----

type Builder struct{}

// F returns a builder bound to the global buffer.
func F() Builder { return Builder{} }

func (Builder) S(s string) Builder {
	buf = append(buf, s...)
	return Builder{}
}

func (Builder) C(c byte) Builder {
	buf = append(buf, c)
	return Builder{}
}

// I appends a base-10 integer.
func (Builder) I(v int) Builder {
	buf = strconv.AppendInt(buf, int64(v), 10)
	return Builder{}
}

// U appends an unsigned base-10 integer.
func (Builder) U(v uint64) Builder {
	buf = strconv.AppendUint(buf, v, 10)
	return Builder{}
}

// F64 appends a float with the given precision (digits after decimal).
func (Builder) F64(v float64, prec int) Builder {
	buf = strconv.AppendFloat(buf, v, 'f', prec, 64)
	return Builder{}
}
