package seq

// Capacity16 is the number of characters a Seq16 can hold.
const Capacity16 = 2 * Capacity

// Seq16 is a sequence of up to sixteen characters packed into two words.
// Characters 0-7 live in Lo and characters 8-15 in Hi. Hi is only read when
// Lo holds eight characters.
type Seq16 struct {
	Lo Seq
	Hi Seq
}

// Pack16 returns s as a packed sequence.
func Pack16(s string) (q Seq16, err error) {
	if len(s) > Capacity16 {
		return q, Error.New("%q exceeds capacity %d", s, Capacity16)
	}

	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return Seq16{}, Error.New("%q has NUL at %d", s, i)
		}

		q = q.Set(i, s[i])
	}

	return q, nil
}

// MustPack16 is like Pack16 but panics on error.
func MustPack16(s string) Seq16 {
	q, err := Pack16(s)
	if err != nil {
		panic(err)
	}

	return q
}

// Len returns the position of the first zero byte, or Capacity16 if there
// is none.
func (q Seq16) Len() int {
	if n := q.Lo.Len(); n < Capacity {
		return n
	}

	return Capacity + q.Hi.Len()
}

// trim clears the bytes after the end of the sequence.
func (q Seq16) trim() Seq16 {
	if q.Lo.Len() < Capacity {
		return Seq16{Lo: q.Lo.trim()}
	}

	return Seq16{Lo: q.Lo, Hi: q.Hi.trim()}
}

// At returns the character at i or zero if i is past the end.
func (q Seq16) At(i int) byte {
	if i < Capacity {
		return q.Lo.At(i)
	}

	if q.Lo.Len() < Capacity {
		return 0
	}

	return q.Hi.At(i - Capacity)
}

// Set returns the sequence with the character at i replaced by c. Positions
// out of range are ignored.
func (q Seq16) Set(i int, c byte) Seq16 {
	if i < Capacity {
		q.Lo = q.Lo.Set(i, c)
	} else {
		q.Hi = q.Hi.Set(i-Capacity, c)
	}

	return q
}

// Shift moves the characters by n positions. See Seq.Shift.
func (q Seq16) Shift(n int) Seq16 {
	switch {
	case n >= Capacity16 || n <= -Capacity16:
		return Seq16{}
	case n >= Capacity:
		return Seq16{Hi: q.Lo.Shift(n - Capacity)}
	case n > 0:
		return Seq16{
			Lo: q.Lo.Shift(n),
			Hi: q.Hi.Shift(n) | q.Lo.Shift(n-Capacity),
		}
	case n <= -Capacity:
		return Seq16{Lo: q.Hi.Shift(n + Capacity)}
	case n < 0:
		return Seq16{
			Lo: q.Lo.Shift(n) | q.Hi.Shift(n+Capacity),
			Hi: q.Hi.Shift(n),
		}
	}

	return q
}

// Slice returns the characters in [start, end). The range is clamped to the
// sequence.
func (q Seq16) Slice(start, end int) Seq16 {
	if start < 0 {
		start = 0
	}

	if l := q.Len(); end > l {
		end = l
	}

	if start >= end {
		return Seq16{}
	}

	q = q.Shift(-start)
	n := end - start

	if n <= Capacity {
		return Seq16{Lo: q.Lo & mask(n)}
	}

	return Seq16{Lo: q.Lo, Hi: q.Hi & mask(n-Capacity)}
}

// Concat returns q followed by o.
func (q Seq16) Concat(o Seq16) (Seq16, error) {
	ql, ol := q.Len(), o.Len()
	if ql+ol > Capacity16 {
		return Seq16{}, Error.New("%q + %q exceeds capacity %d", q, o, Capacity16)
	}

	q, o = q.trim(), o.trim().Shift(ql)

	return Seq16{Lo: q.Lo | o.Lo, Hi: q.Hi | o.Hi}, nil
}

// Compare orders sequences by length and then lexicographically. It returns
// -1, 0 or +1.
func (q Seq16) Compare(o Seq16) int {
	ql, ol := q.Len(), o.Len()

	switch {
	case ql < ol:
		return -1
	case ql > ol:
		return +1
	}

	q, o = q.trim(), o.trim()

	if c := q.Lo.Compare(o.Lo); c != 0 {
		return c
	}

	return q.Hi.Compare(o.Hi)
}

// Append appends the characters to dst.
func (q Seq16) Append(dst []byte) []byte {
	dst = q.Lo.Append(dst)
	if q.Lo.Len() < Capacity {
		return dst
	}

	return q.Hi.Append(dst)
}

// String implements fmt.Stringer.
func (q Seq16) String() string {
	var buf [Capacity16]byte

	return string(q.Append(buf[:0]))
}

// Narrow returns the sequence as a Seq. It fails if the sequence is longer
// than Capacity.
func (q Seq16) Narrow() (Seq, error) {
	if q.Len() > Capacity {
		return 0, Error.New("%q exceeds capacity %d", q, Capacity)
	}

	return q.Lo.trim(), nil
}
