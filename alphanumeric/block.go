package alphanumeric

import (
	"fmt"

	"github.com/calebcase/shortstring/integer"
)

// Block is a contiguous range of unsigned codes sharing one digit rule.
// Length counts the codes available to non-negative values. The negative side
// of a truncated block holds one code more.
type Block struct {
	Name   string
	Start  uint64
	Length uint64
}

// End returns the first code after the block.
func (b Block) End() uint64 {
	return b.Start + b.Length
}

// Contains returns true if the magnitude m falls in the block.
func (b Block) Contains(m uint64) bool {
	return b.Start <= m && m-b.Start < b.Length
}

func pow(base uint64, exp int) uint64 {
	r := uint64(1)
	for i := 0; i < exp; i++ {
		r *= base
	}

	return r
}

// scheme is the block layout shared by the 32 and 64 bit codecs: numeric,
// letter-prefixed, zero-prefixed and digit-prefixed blocks of strings up to
// span characters.
type scheme struct {
	span int

	numeric uint64
	letter  uint64
	zero    uint64
	digit   []uint64

	// rest is the part of the non-negative range left after the digit block.
	rest uint64

	// Boundary strings of the truncated digit sub-block. Empty if the
	// digit block is not truncated.
	max string
	min string
}

func newScheme(numericLen, span int, schema integer.Schema, upper, lower string) scheme {
	s := scheme{
		span:    span,
		numeric: pow(digits, numericLen),
		max:     upper,
		min:     lower,
	}

	for i := 0; i < span; i++ {
		s.letter += letters * pow(alnums, i)
	}

	for i := 1; i < span; i++ {
		s.zero += pow(alnums, i)
	}

	remaining := schema.Max(false) + 1 - s.numeric - s.letter - s.zero

	for i := 0; i < span-1; i++ {
		l := (pow(digits, span-1-i) - 1) * letters * pow(alnums, i)
		if l >= remaining {
			s.digit = append(s.digit, remaining)
			remaining = 0

			break
		}

		s.digit = append(s.digit, l)
		remaining -= l
	}

	s.rest = remaining

	return s
}

// base returns the first code of the digit-prefixed block.
func (s *scheme) base() uint64 {
	return s.numeric + s.letter + s.zero
}

// end returns the first code after the digit-prefixed block.
func (s *scheme) end() uint64 {
	e := s.base()
	for _, l := range s.digit {
		e += l
	}

	return e
}

func (s *scheme) blocks() []Block {
	bs := []Block{
		{Name: "numeric", Start: 0, Length: s.numeric},
		{Name: "letter-prefixed", Start: s.numeric, Length: s.letter},
		{Name: "zero-prefixed", Start: s.numeric + s.letter, Length: s.zero},
	}

	start := s.base()
	for i, l := range s.digit {
		bs = append(bs, Block{
			Name:   fmt.Sprintf("digit-prefixed/%d", i),
			Start:  start,
			Length: l,
		})
		start += l
	}

	return bs
}

func firstLetter[C chars](c C, off int) int {
	for i := off; i < c.Len(); i++ {
		if isLetter(c.At(i)) {
			return i
		}
	}

	return -1
}

func firstDigit[C chars](c C, off int) int {
	for i := off; i < c.Len(); i++ {
		if isDigit(c.At(i)) {
			return i
		}
	}

	return -1
}

// checkScheme applies the boundary of the truncated digit sub-block.
func checkScheme[C chars](s *scheme, c C, k Kind, off int) rejection {
	if s.max == "" || !k.DigitPrefixed() || c.At(off) == '0' {
		return rejection{}
	}

	f := firstLetter(c, off)
	if c.Len()-f-1 != len(s.digit)-1 {
		return rejection{}
	}

	bound := s.max
	if off > 0 {
		bound = s.min
	}

	if exceeds(c, bound) {
		return rejection{why: pastBoundary, bound: bound}
	}

	return rejection{}
}

// magnitude returns the unsigned code of a checked sequence.
func magnitude[C chars](s *scheme, c C, k Kind, off int) uint64 {
	n := c.Len()

	switch {
	case k.Numeric():
		return decodeNumeric(c, off, n)
	case k.LetterPrefixed():
		return s.numeric + decodeLetterPrefixed(c, off, n)
	case c.At(off) == '0':
		return s.numeric + s.letter + decodeZeroPrefixed(c, off, n)
	}

	return s.base() + decodeDigitPrefixed(s.digit, c, off, n)
}

func decodeNumeric[C chars](c C, off, n int) (code uint64) {
	for i := off; i < n; i++ {
		code = code*digits + digit(c.At(i))
	}

	return code
}

func decodeLetterPrefixed[C chars](c C, off, n int) uint64 {
	code := letter(c.At(off))
	for i := off + 1; i < n; i++ {
		code = code*alnums + letters + alnum(c.At(i))
	}

	return code
}

func decodeZeroPrefixed[C chars](c C, off, n int) uint64 {
	code := alnum(c.At(off + 1))
	for i := off + 2; i < n; i++ {
		code = code*alnums + alnums + alnum(c.At(i))
	}

	return code
}

func decodeDigitPrefixed[C chars](subs []uint64, c C, off, n int) uint64 {
	f := firstLetter(c, off)

	// Bijective base 10 so that "1" and "10" are distinct prefixes.
	code := digit(c.At(off)) - 1
	for i := off + 1; i < f; i++ {
		code = code*digits + digits - 1 + digit(c.At(i))
	}

	code = code*letters + letter(c.At(f))

	for i := f + 1; i < n; i++ {
		code = code*alnums + alnum(c.At(i))
	}

	for _, l := range subs[:n-f-1] {
		code += l
	}

	return code
}

// writer fills a packed sequence from the last position backwards.
type writer[S packer[S]] struct {
	q   S
	pos int
}

func newWriter[S packer[S]](width int) *writer[S] {
	var q S

	return &writer[S]{q: q, pos: width}
}

func (w *writer[S]) put(c byte) {
	w.pos--
	w.q = w.q.Set(w.pos, c)
}

// finish adds the sign and moves the characters to the front.
func (w *writer[S]) finish(negative bool, sign byte) S {
	if negative {
		if w.pos > 0 {
			w.put(sign)
		} else {
			w.q = w.q.Shift(1).Set(0, sign)
		}
	}

	return w.q.Shift(-w.pos)
}

func (w *writer[S]) numeric(m uint64) {
	for {
		w.put('0' + byte(m%digits))

		m /= digits
		if m == 0 {
			return
		}
	}
}

func (w *writer[S]) letterPrefixed(code uint64) {
	for code >= letters {
		code -= letters
		w.put(Alphabet[code%alnums])
		code /= alnums
	}

	w.put('A' + byte(code))
}

func (w *writer[S]) zeroPrefixed(code uint64) {
	for code >= alnums {
		code -= alnums
		w.put(Alphabet[code%alnums])
		code /= alnums
	}

	w.put(Alphabet[code])
	w.put('0')
}

func (w *writer[S]) digitPrefixed(subs []uint64, code uint64) {
	sub := 0
	for sub < len(subs)-1 && code >= subs[sub] {
		code -= subs[sub]
		sub++
	}

	for i := 0; i < sub; i++ {
		w.put(Alphabet[code%alnums])
		code /= alnums
	}

	w.put('A' + byte(code%letters))
	code /= letters

	for code >= digits-1 {
		code -= digits - 1
		w.put('0' + byte(code%digits))
		code /= digits
	}

	w.put('1' + byte(code))
}

// encodeScheme writes the magnitude of b using the scheme. The magnitude must
// be below s.end().
func encodeScheme[S packer[S]](s *scheme, width int, b integer.Block) S {
	w := newWriter[S](width)
	m := b.Value

	if m < s.numeric {
		w.numeric(m)

		return w.finish(b.Negative, NumericSign)
	}

	m -= s.numeric

	switch {
	case m < s.letter:
		w.letterPrefixed(m)
	case m < s.letter+s.zero:
		w.zeroPrefixed(m - s.letter)
	default:
		w.digitPrefixed(s.digit, m-s.letter-s.zero)
	}

	return w.finish(b.Negative, AlphanumericSign)
}
