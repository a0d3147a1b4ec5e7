package alphanumeric_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/errs"

	"github.com/calebcase/shortstring/alphanumeric"
)

type vector struct {
	Input  string
	Output int64
}

type rejection struct {
	Input string
	Class *errs.Class
}

// randomString returns a string of up to limit characters drawn mostly from
// the alphabet with the occasional sign or stray character.
func randomString(r *rand.Rand, limit int) string {
	const pool = alphanumeric.Alphabet + alphanumeric.Alphabet + "0000.-"

	n := 1 + r.Intn(limit)
	b := make([]byte, n)

	for i := range b {
		b[i] = pool[r.Intn(len(pool))]
	}

	switch r.Intn(8) {
	case 0:
		b[0] = '.'
	case 1:
		b[0] = '-'
	case 2:
		b[r.Intn(n)] = 'a'
	}

	return string(b)
}

// requireCanonical checks that strings the codec accepts are exactly the
// strings it produces.
func requireCanonical[T alphanumeric.Integer](t *testing.T, codec alphanumeric.Codec[T], seed int64, count int) {
	t.Helper()

	r := rand.New(rand.NewSource(seed))
	accepted := 0

	for i := 0; i < count; i++ {
		s := randomString(r, codec.MaxSignedLength())

		v, err := codec.Decode(s)
		if !codec.IsConvertible(s) {
			require.Error(t, err, s)
			require.True(t, alphanumeric.Error.Has(err), s)

			continue
		}

		accepted++

		require.NoError(t, err, s)
		require.Equal(t, s, codec.Encode(v), s)
	}

	require.NotZero(t, accepted)
}

// requireRoundTrip checks that decoding an encoded value returns the value.
func requireRoundTrip[T alphanumeric.Integer](t *testing.T, codec alphanumeric.Codec[T], v T) {
	t.Helper()

	s := codec.Encode(v)
	require.LessOrEqual(t, len(s), codec.MaxSignedLength(), "%d", v)
	require.True(t, codec.IsConvertible(s), "%d -> %q", v, s)

	decoded, err := codec.Decode(s)
	require.NoError(t, err, "%d -> %q", v, s)
	require.Equal(t, v, decoded, "%d -> %q", v, s)

	require.Equal(t, "x"+s, string(codec.Append([]byte("x"), v)))
}

// expectBlocks builds the block table from names and lengths.
func expectBlocks(names []string, lengths []uint64) []alphanumeric.Block {
	bs := make([]alphanumeric.Block, len(names))

	var start uint64
	for i := range names {
		bs[i] = alphanumeric.Block{
			Name:   names[i],
			Start:  start,
			Length: lengths[i],
		}
		start += lengths[i]
	}

	return bs
}
