package alphanumeric

import (
	"github.com/calebcase/shortstring/integer"
	"github.com/calebcase/shortstring/seq"
)

// Boundary strings of the truncated 32 bit digit-prefixed block.
const (
	Int32Max = "7XIZYJ"
	Int32Min = ".7XIZYK"
)

const int32Width = 6

var int32Scheme = newScheme(int32Width, int32Width, integer.Int32, Int32Max, Int32Min)

// Int32Codec converts between strings of up to 6 characters and int32.
type Int32Codec struct{}

// MaxUnsignedLength implements Codec.
func (Int32Codec) MaxUnsignedLength() int {
	return int32Width
}

// MaxSignedLength implements Codec.
func (Int32Codec) MaxSignedLength() int {
	return int32Width + 1
}

// EncodeSeq returns v as a packed sequence.
func (Int32Codec) EncodeSeq(v int32) seq.Seq {
	return encodeScheme[seq.Seq](&int32Scheme, int32Width, integer.Split(int64(v)))
}

// Encode implements Codec.
func (c Int32Codec) Encode(v int32) string {
	return c.EncodeSeq(v).String()
}

// Append implements Codec.
func (c Int32Codec) Append(dst []byte, v int32) []byte {
	return c.EncodeSeq(v).Append(dst)
}

// Decode implements Codec.
func (Int32Codec) Decode(s string) (v int32, err error) {
	defer Error.WrapP(&err)

	return decodeInt32(text(s))
}

// DecodeSeq is Decode for a packed sequence.
func (Int32Codec) DecodeSeq(q seq.Seq) (v int32, err error) {
	defer Error.WrapP(&err)

	return decodeInt32(q)
}

// IsConvertible implements Codec.
func (Int32Codec) IsConvertible(s string) bool {
	_, _, r := checkInt32(text(s))

	return r.ok()
}

// IsConvertibleSeq is IsConvertible for a packed sequence.
func (Int32Codec) IsConvertibleSeq(q seq.Seq) bool {
	_, _, r := checkInt32(q)

	return r.ok()
}

// StartsWithSign implements Codec.
func (Int32Codec) StartsWithSign(s string) bool {
	return StartsWithSign(s)
}

// Blocks implements Codec.
func (Int32Codec) Blocks() []Block {
	return int32Scheme.blocks()
}

func checkInt32[C chars](c C) (k Kind, off int, r rejection) {
	k, off, r = scan(c, int32Width)
	if !r.ok() {
		return k, off, r
	}

	return k, off, checkScheme(&int32Scheme, c, k, off)
}

func decodeInt32[C chars](c C) (v int32, err error) {
	k, off, r := checkInt32(c)
	if !r.ok() {
		return 0, r.err(c.String())
	}

	joined, err := integer.Int32.Join(integer.Block{
		Value:    magnitude(&int32Scheme, c, k, off),
		Negative: off > 0,
	})
	if err != nil {
		return 0, err
	}

	return int32(joined), nil
}
