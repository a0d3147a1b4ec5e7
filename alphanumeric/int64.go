package alphanumeric

import (
	"github.com/calebcase/shortstring/integer"
	"github.com/calebcase/shortstring/seq"
)

// Boundary strings of the truncated 64 bit extension block.
const (
	Int64Max = "RZRYMFXOEDX77"
	Int64Min = ".RZRYMFXOEDX78"
)

const (
	int64Width = 13
	int64Span  = 12

	// Letters a full width string has before its first digit, at least.
	int64ExtensionLetters = int64Width - 2
)

var (
	int64Scheme = newScheme(int64Width, int64Span, integer.Int64, "", "")
	int64Base   = int64Scheme.end()

	// Full width strings: all letters, then letters and a digit, then
	// letters, a digit and any character. The last is truncated.
	int64Extension = []uint64{
		pow(letters, int64Width),
		pow(letters, int64Width-1) * digits,
		int64Scheme.rest - pow(letters, int64Width) - pow(letters, int64Width-1)*digits,
	}
)

// Int64Codec converts between strings of up to 13 characters and int64.
type Int64Codec struct{}

// MaxUnsignedLength implements Codec.
func (Int64Codec) MaxUnsignedLength() int {
	return int64Width
}

// MaxSignedLength implements Codec.
func (Int64Codec) MaxSignedLength() int {
	return int64Width + 1
}

// EncodeSeq returns v as a packed sequence.
func (Int64Codec) EncodeSeq(v int64) seq.Seq16 {
	return encodeInt64[seq.Seq16](integer.Split(v))
}

// Encode implements Codec.
func (c Int64Codec) Encode(v int64) string {
	return c.EncodeSeq(v).String()
}

// Append implements Codec.
func (c Int64Codec) Append(dst []byte, v int64) []byte {
	return c.EncodeSeq(v).Append(dst)
}

// Decode implements Codec.
func (Int64Codec) Decode(s string) (v int64, err error) {
	defer Error.WrapP(&err)

	return decodeInt64(text(s))
}

// DecodeSeq is Decode for a packed sequence.
func (Int64Codec) DecodeSeq(q seq.Seq16) (v int64, err error) {
	defer Error.WrapP(&err)

	return decodeInt64(q)
}

// IsConvertible implements Codec.
func (Int64Codec) IsConvertible(s string) bool {
	_, _, r := checkInt64(text(s))

	return r.ok()
}

// IsConvertibleSeq is IsConvertible for a packed sequence.
func (Int64Codec) IsConvertibleSeq(q seq.Seq16) bool {
	_, _, r := checkInt64(q)

	return r.ok()
}

// StartsWithSign implements Codec.
func (Int64Codec) StartsWithSign(s string) bool {
	return StartsWithSign(s)
}

// Blocks implements Codec.
func (Int64Codec) Blocks() []Block {
	bs := int64Scheme.blocks()

	start := int64Base
	for i, name := range []string{"extended/letters", "extended/digit", "extended/digit-any"} {
		bs = append(bs, Block{
			Name:   name,
			Start:  start,
			Length: int64Extension[i],
		})
		start += int64Extension[i]
	}

	return bs
}

func checkInt64[C chars](c C) (k Kind, off int, r rejection) {
	k, off, r = scan(c, int64Width)
	if !r.ok() {
		return k, off, r
	}

	if k.Numeric() || c.Len()-off <= int64Span {
		return k, off, checkScheme(&int64Scheme, c, k, off)
	}

	if !k.LetterPrefixed() {
		return k, off, rejection{why: extendedShape, width: int64Width}
	}

	switch fd := firstDigit(c, off); {
	case fd < 0:
	case fd-off < int64ExtensionLetters:
		return k, off, rejection{why: misplacedDigit, at: fd, width: int64Width}
	case fd-off == int64ExtensionLetters:
		bound := Int64Max
		if off > 0 {
			bound = Int64Min
		}

		if exceeds(c, bound) {
			return k, off, rejection{why: pastBoundary, bound: bound}
		}
	}

	return k, off, rejection{}
}

func decodeInt64[C chars](c C) (v int64, err error) {
	k, off, r := checkInt64(c)
	if !r.ok() {
		return 0, r.err(c.String())
	}

	var m uint64
	if k.Numeric() || c.Len()-off <= int64Span {
		m = magnitude(&int64Scheme, c, k, off)
	} else {
		m = magnitudeInt64Extension(c, off)
	}

	return integer.Int64.Join(integer.Block{
		Value:    m,
		Negative: off > 0,
	})
}

func magnitudeInt64Extension[C chars](c C, off int) uint64 {
	n := c.Len()

	fd := firstDigit(c, off)
	if fd < 0 {
		fd = n
	}

	var code uint64
	for i := off; i < fd; i++ {
		code = code*letters + letter(c.At(i))
	}

	m := int64Base

	if fd < n {
		code = code*digits + digit(c.At(fd))
		m += int64Extension[0]
	}

	if fd < n-1 {
		code = code*alnums + alnum(c.At(fd+1))
		m += int64Extension[1]
	}

	return m + code
}

func encodeInt64[S packer[S]](b integer.Block) S {
	if b.Value < int64Base {
		return encodeScheme[S](&int64Scheme, int64Width, b)
	}

	w := newWriter[S](int64Width)
	code := b.Value - int64Base

	sub := 0
	for sub < len(int64Extension)-1 && code >= int64Extension[sub] {
		code -= int64Extension[sub]
		sub++
	}

	if sub == 2 {
		w.put(Alphabet[code%alnums])
		code /= alnums
	}

	if sub >= 1 {
		w.put('0' + byte(code%digits))
		code /= digits
	}

	for i := 0; i < int64Width-sub; i++ {
		w.put('A' + byte(code%letters))
		code /= letters
	}

	return w.finish(b.Negative, AlphanumericSign)
}
