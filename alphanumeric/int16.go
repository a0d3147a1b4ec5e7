package alphanumeric

import (
	"github.com/calebcase/shortstring/integer"
	"github.com/calebcase/shortstring/seq"
)

// Boundary strings of the 16 bit letter-digit block.
const (
	Int16Max = "R9P"
	Int16Min = ".R9Q"
)

const (
	int16Width = 3

	int16Numeric      = 1000
	int16Letter       = letters + letters*letters + letters*letters*alnums
	int16LetterDigit  = 1<<15 - int16Numeric - int16Letter
	int16LetterDigit2 = letters * digits
)

// Int16Codec converts between strings of up to 3 characters and int16.
//
// The 16 bit space is too small for the zero and digit-prefixed blocks, so it
// uses its own layout: numbers, then letter-led strings, then a letter
// followed by a digit.
type Int16Codec struct{}

// MaxUnsignedLength implements Codec.
func (Int16Codec) MaxUnsignedLength() int {
	return int16Width
}

// MaxSignedLength implements Codec.
func (Int16Codec) MaxSignedLength() int {
	return int16Width + 1
}

// EncodeSeq returns v as a packed sequence.
func (Int16Codec) EncodeSeq(v int16) seq.Seq {
	return encodeInt16[seq.Seq](integer.Split(int64(v)))
}

// Encode implements Codec.
func (c Int16Codec) Encode(v int16) string {
	return c.EncodeSeq(v).String()
}

// Append implements Codec.
func (c Int16Codec) Append(dst []byte, v int16) []byte {
	return c.EncodeSeq(v).Append(dst)
}

// Decode implements Codec.
func (Int16Codec) Decode(s string) (v int16, err error) {
	defer Error.WrapP(&err)

	return decodeInt16(text(s))
}

// DecodeSeq is Decode for a packed sequence.
func (Int16Codec) DecodeSeq(q seq.Seq) (v int16, err error) {
	defer Error.WrapP(&err)

	return decodeInt16(q)
}

// IsConvertible implements Codec.
func (Int16Codec) IsConvertible(s string) bool {
	_, _, r := checkInt16(text(s))

	return r.ok()
}

// IsConvertibleSeq is IsConvertible for a packed sequence.
func (Int16Codec) IsConvertibleSeq(q seq.Seq) bool {
	_, _, r := checkInt16(q)

	return r.ok()
}

// StartsWithSign implements Codec.
func (Int16Codec) StartsWithSign(s string) bool {
	return StartsWithSign(s)
}

// Blocks implements Codec.
func (Int16Codec) Blocks() []Block {
	return []Block{
		{Name: "numeric", Start: 0, Length: int16Numeric},
		{Name: "letter", Start: int16Numeric, Length: int16Letter},
		{Name: "letter-digit", Start: int16Numeric + int16Letter, Length: int16LetterDigit},
	}
}

func checkInt16[C chars](c C) (k Kind, off int, r rejection) {
	k, off, r = scan(c, int16Width)
	if !r.ok() {
		return k, off, r
	}

	switch {
	case k.DigitPrefixed() && c.At(off) == '0':
		return k, off, rejection{why: zeroPrefixedNarrow}
	case k.DigitPrefixed():
		return k, off, rejection{why: digitPrefixedNarrow}
	case k.LetterPrefixed() && c.Len()-off == int16Width && isDigit(c.At(off+1)):
		bound := Int16Max
		if off > 0 {
			bound = Int16Min
		}

		if exceeds(c, bound) {
			return k, off, rejection{why: pastBoundary, bound: bound}
		}
	}

	return k, off, rejection{}
}

func decodeInt16[C chars](c C) (v int16, err error) {
	k, off, r := checkInt16(c)
	if !r.ok() {
		return 0, r.err(c.String())
	}

	joined, err := integer.Int16.Join(integer.Block{
		Value:    magnitudeInt16(c, k, off),
		Negative: off > 0,
	})
	if err != nil {
		return 0, err
	}

	return int16(joined), nil
}

func magnitudeInt16[C chars](c C, k Kind, off int) uint64 {
	n := c.Len() - off

	if k.Numeric() {
		return decodeNumeric(c, off, c.Len())
	}

	first := letter(c.At(off))
	if n == 1 {
		return int16Numeric + first
	}

	second := c.At(off + 1)

	if isLetter(second) {
		code := first*letters + letter(second)
		if n == 2 {
			return int16Numeric + letters + code
		}

		return int16Numeric + letters + letters*letters + code*alnums + alnum(c.At(off+2))
	}

	code := first*digits + digit(second)
	if n == 2 {
		return int16Numeric + int16Letter + code
	}

	return int16Numeric + int16Letter + int16LetterDigit2 + code*alnums + alnum(c.At(off+2))
}

func encodeInt16[S packer[S]](b integer.Block) S {
	w := newWriter[S](int16Width)
	m := b.Value

	if m < int16Numeric {
		w.numeric(m)

		return w.finish(b.Negative, NumericSign)
	}

	m -= int16Numeric

	switch {
	case m < letters:
		w.put('A' + byte(m))
	case m < letters+letters*letters:
		m -= letters
		w.put('A' + byte(m%letters))
		w.put('A' + byte(m/letters))
	case m < int16Letter:
		m -= letters + letters*letters
		w.put(Alphabet[m%alnums])
		m /= alnums
		w.put('A' + byte(m%letters))
		w.put('A' + byte(m/letters))
	case m < int16Letter+int16LetterDigit2:
		m -= int16Letter
		w.put('0' + byte(m%digits))
		w.put('A' + byte(m/digits))
	default:
		m -= int16Letter + int16LetterDigit2
		w.put(Alphabet[m%alnums])
		m /= alnums
		w.put('0' + byte(m%digits))
		w.put('A' + byte(m/digits))
	}

	return w.finish(b.Negative, AlphanumericSign)
}
