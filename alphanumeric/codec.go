package alphanumeric

// Integer is the set of value types a codec converts to.
type Integer interface {
	~int16 | ~int32 | ~int64
}

// Codec converts between short strings and integers of one width.
type Codec[T Integer] interface {
	// MaxUnsignedLength is the longest string without a sign.
	MaxUnsignedLength() int

	// MaxSignedLength is the longest string including the sign.
	MaxSignedLength() int

	Encode(v T) string
	Append(dst []byte, v T) []byte
	Decode(s string) (T, error)

	// IsConvertible returns true if Decode would succeed.
	IsConvertible(s string) bool

	StartsWithSign(s string) bool

	// Blocks lists the non-negative code space in order.
	Blocks() []Block
}

var (
	_ Codec[int16] = Int16Codec{}
	_ Codec[int32] = Int32Codec{}
	_ Codec[int64] = Int64Codec{}
)

// Codecs for each width.
var (
	Int16 Int16Codec
	Int32 Int32Codec
	Int64 Int64Codec
)

// scan runs the checks common to every width: emptiness, sign, length and
// classification.
func scan[C chars](c C, width int) (k Kind, off int, r rejection) {
	n := c.Len()
	if n == 0 {
		return Invalid, 0, rejection{why: emptyInput}
	}

	if isSign(c.At(0)) {
		off = 1
	}

	if n == off {
		return Invalid, off, rejection{why: signOnly}
	}

	if n-off > width {
		return Invalid, off, rejection{why: tooLong, width: width}
	}

	k = classify(c)
	if k == Invalid {
		return Invalid, off, reject(c)
	}

	return k, off, rejection{}
}
