package alphanumeric

import (
	"github.com/calebcase/shortstring/seq"
)

// Int32ToInt16 returns the int16 with the same string as v.
func Int32ToInt16(v int32) (int16, error) {
	return Int16.DecodeSeq(Int32.EncodeSeq(v))
}

// Int64ToInt16 returns the int16 with the same string as v.
func Int64ToInt16(v int64) (_ int16, err error) {
	defer Error.WrapP(&err)

	q, err := Int64.EncodeSeq(v).Narrow()
	if err != nil {
		return 0, err
	}

	return Int16.DecodeSeq(q)
}

// Int64ToInt32 returns the int32 with the same string as v.
func Int64ToInt32(v int64) (_ int32, err error) {
	defer Error.WrapP(&err)

	q, err := Int64.EncodeSeq(v).Narrow()
	if err != nil {
		return 0, err
	}

	return Int32.DecodeSeq(q)
}

// bounds resolves [start, end) against a string of length n. Negative
// indices count from the end.
func bounds(start, end, n int) (int, int, error) {
	if start < 0 {
		start += n
	}

	if end < 0 {
		end += n
	}

	if start < 0 || end > n || start > end {
		return 0, 0, Error.New("range [%d, %d) out of bounds for length %d", start, end, n)
	}

	return start, end, nil
}

// SubstringInt32 returns the value of characters [start, end) of v's string.
// The sign, when present, is the character at index 0. Negative indices count
// from the end.
func SubstringInt32(v int32, start, end int) (_ int32, err error) {
	defer Error.WrapP(&err)

	q := Int32.EncodeSeq(v)

	start, end, err = bounds(start, end, q.Len())
	if err != nil {
		return 0, err
	}

	return Int32.DecodeSeq(q.Slice(start, end))
}

// SubstringInt64 returns the value of characters [start, end) of v's string.
// See SubstringInt32.
func SubstringInt64(v int64, start, end int) (_ int64, err error) {
	defer Error.WrapP(&err)

	q := Int64.EncodeSeq(v)

	start, end, err = bounds(start, end, q.Len())
	if err != nil {
		return 0, err
	}

	return Int64.DecodeSeq(q.Slice(start, end))
}

// ConcatInt16 returns the int32 whose string is the string of a followed by
// the string of b.
func ConcatInt16(a, b int16) (_ int32, err error) {
	defer Error.WrapP(&err)

	q, err := Int16.EncodeSeq(a).Concat(Int16.EncodeSeq(b))
	if err != nil {
		return 0, err
	}

	return Int32.DecodeSeq(q)
}

// ConcatInt32 returns the int64 whose string is the string of a followed by
// the string of b.
func ConcatInt32(a, b int32) (_ int64, err error) {
	defer Error.WrapP(&err)

	q, err := Int32.EncodeSeq(a).Widen().Concat(Int32.EncodeSeq(b).Widen())
	if err != nil {
		return 0, err
	}

	return Int64.DecodeSeq(q)
}

// Widen16 returns the int32 with the same string as v. Every int16 string is
// an int32 string.
func Widen16(v int16) int32 {
	q := Int16.EncodeSeq(v)

	w, err := Int32.DecodeSeq(q)
	if err != nil {
		panic(err)
	}

	return w
}

// Widen32 returns the int64 with the same string as v. Every int32 string is
// an int64 string.
func Widen32(v int32) int64 {
	w, err := Int64.DecodeSeq(seq.Seq16{Lo: Int32.EncodeSeq(v)})
	if err != nil {
		panic(err)
	}

	return w
}
