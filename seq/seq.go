package seq

import (
	"math/bits"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("seq")

// Capacity is the number of characters a Seq can hold.
const Capacity = 8

// Seq is a sequence of up to eight characters packed into a word. The
// sequence ends at the first zero byte; bytes after it are ignored.
type Seq uint64

// Byte lane constants for finding a zero byte in a word.
const (
	lows  = 0x0101010101010101
	highs = 0x8080808080808080
)

// Pack returns s as a packed sequence.
func Pack(s string) (q Seq, err error) {
	if len(s) > Capacity {
		return 0, Error.New("%q exceeds capacity %d", s, Capacity)
	}

	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return 0, Error.New("%q has NUL at %d", s, i)
		}

		q |= Seq(s[i]) << (8 * i)
	}

	return q, nil
}

// MustPack is like Pack but panics on error.
func MustPack(s string) Seq {
	q, err := Pack(s)
	if err != nil {
		panic(err)
	}

	return q
}

// mask returns a mask covering the first n characters.
func mask(n int) Seq {
	if n >= Capacity {
		return ^Seq(0)
	}

	if n <= 0 {
		return 0
	}

	return Seq(1)<<(8*n) - 1
}

// Len returns the position of the first zero byte, or Capacity if there is
// none.
func (q Seq) Len() int {
	x := uint64(q)

	// The lowest set bit marks the first zero byte. Borrows only carry past
	// a zero byte, so false positives above it do not matter.
	zeros := (x - lows) &^ x & highs

	return bits.TrailingZeros64(zeros) / 8
}

// trim clears the bytes after the end of the sequence.
func (q Seq) trim() Seq {
	return q & mask(q.Len())
}

// At returns the character at i or zero if i is past the end.
func (q Seq) At(i int) byte {
	if i < 0 || i >= q.Len() {
		return 0
	}

	return byte(q >> (8 * i))
}

// Set returns the sequence with the character at i replaced by c. Positions
// out of range are ignored.
func (q Seq) Set(i int, c byte) Seq {
	if i < 0 || i >= Capacity {
		return q
	}

	shift := 8 * i

	return q&^(0xff<<shift) | Seq(c)<<shift
}

// Shift moves the characters by n positions. A positive n opens n empty
// leading positions (characters shifted past the capacity are lost) and a
// negative n drops -n leading characters.
func (q Seq) Shift(n int) Seq {
	switch {
	case n >= Capacity || n <= -Capacity:
		return 0
	case n > 0:
		return q << (8 * n)
	case n < 0:
		return q >> (8 * -n)
	}

	return q
}

// Slice returns the characters in [start, end). The range is clamped to the
// sequence.
func (q Seq) Slice(start, end int) Seq {
	if start < 0 {
		start = 0
	}

	if l := q.Len(); end > l {
		end = l
	}

	if start >= end {
		return 0
	}

	return q.Shift(-start) & mask(end-start)
}

// Concat returns q followed by o.
func (q Seq) Concat(o Seq) (Seq, error) {
	ql, ol := q.Len(), o.Len()
	if ql+ol > Capacity {
		return 0, Error.New("%q + %q exceeds capacity %d", q, o, Capacity)
	}

	return q.trim() | o.trim().Shift(ql), nil
}

// Compare orders sequences by length and then lexicographically. It returns
// -1, 0 or +1.
func (q Seq) Compare(o Seq) int {
	ql, ol := q.Len(), o.Len()

	switch {
	case ql < ol:
		return -1
	case ql > ol:
		return +1
	}

	a, b := bits.ReverseBytes64(uint64(q.trim())), bits.ReverseBytes64(uint64(o.trim()))

	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	}

	return 0
}

// Append appends the characters to dst.
func (q Seq) Append(dst []byte) []byte {
	n := q.Len()
	for i := 0; i < n; i++ {
		dst = append(dst, byte(q>>(8*i)))
	}

	return dst
}

// String implements fmt.Stringer.
func (q Seq) String() string {
	var buf [Capacity]byte

	return string(q.Append(buf[:0]))
}

// Widen returns the sequence as a Seq16.
func (q Seq) Widen() Seq16 {
	return Seq16{Lo: q.trim()}
}
