package alphanumeric_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/shortstring/alphanumeric"
	"github.com/calebcase/shortstring/seq"
)

func TestInt16(t *testing.T) {
	codec := alphanumeric.Int16

	require.Equal(t, 3, codec.MaxUnsignedLength())
	require.Equal(t, 4, codec.MaxSignedLength())

	t.Run("vectors", func(t *testing.T) {
		tcs := []vector{
			{"0", 0},
			{"999", 999},
			{"-999", -999},
			{"A", 1000},
			{".A", -1000},
			{"Z", 1025},
			{"AA", 1026},
			{"ZZ", 1701},
			{"AA0", 1702},
			{"AAA", 1712},
			{"AUD", 2435},
			{"USD", 21083},
			{"ZZZ", 26037},
			{".ZZZ", -26037},
			{"A0", 26038},
			{"Z9", 26297},
			{"A00", 26298},
			{"B9Z", 27017},
			{"R8Z", 32741},
			{"R9O", 32766},
			{"R9P", math.MaxInt16},
			{".R9P", -math.MaxInt16},
			{".R9Q", math.MinInt16},
		}

		for i, tc := range tcs {
			tc := tc

			t.Run(fmt.Sprintf("[%d]%s", i, tc.Input), func(t *testing.T) {
				mark := oops.New("unexpected")

				v, err := codec.Decode(tc.Input)
				require.NoError(t, err, mark)
				require.Equal(t, int16(tc.Output), v, mark)

				require.Equal(t, tc.Input, codec.Encode(int16(tc.Output)), mark)
				require.Equal(t, seq.MustPack(tc.Input), codec.EncodeSeq(int16(tc.Output)), mark)

				v, err = codec.DecodeSeq(seq.MustPack(tc.Input))
				require.NoError(t, err, mark)
				require.Equal(t, int16(tc.Output), v, mark)
			})
		}
	})

	t.Run("rejections", func(t *testing.T) {
		tcs := []rejection{
			{"", &alphanumeric.ErrEmpty},
			{".", &alphanumeric.ErrSignOnly},
			{"1234", &alphanumeric.ErrLength},
			{"ZZZZ", &alphanumeric.ErrLength},
			{"R9Q", &alphanumeric.ErrBoundary},
			{".R9R", &alphanumeric.ErrBoundary},
			{"S00", &alphanumeric.ErrBoundary},
			{"Z9Z", &alphanumeric.ErrBoundary},
			{"00", &alphanumeric.ErrLeadingZero},
			{"0A", &alphanumeric.ErrLeadingZero},
			{".00", &alphanumeric.ErrLeadingZero},
			{"-01", &alphanumeric.ErrLeadingZero},
			{"1A", &alphanumeric.ErrIllegalCharacter},
			{".1A", &alphanumeric.ErrIllegalCharacter},
			{"A.", &alphanumeric.ErrIllegalCharacter},
		}

		for i, tc := range tcs {
			tc := tc

			t.Run(fmt.Sprintf("[%d]%q", i, tc.Input), func(t *testing.T) {
				mark := oops.New("unexpected")

				require.False(t, codec.IsConvertible(tc.Input), mark)
				require.False(t, codec.IsConvertibleSeq(seq.MustPack(tc.Input)), mark)

				_, err := codec.Decode(tc.Input)
				require.Error(t, err, mark)
				require.True(t, tc.Class.Has(err), "%+v\n%+v", err, mark)
			})
		}
	})

	t.Run("exhaustive", func(t *testing.T) {
		seen := make(map[string]int16, 1<<16)

		for i := math.MinInt16; i <= math.MaxInt16; i++ {
			v := int16(i)
			s := codec.Encode(v)

			prev, ok := seen[s]
			require.False(t, ok, "%q for %d and %d", s, prev, v)
			seen[s] = v

			requireRoundTrip[int16](t, codec, v)
		}
	})

	t.Run("canonical", func(t *testing.T) {
		requireCanonical[int16](t, codec, 16, 100000)
	})

	t.Run("monotonic", func(t *testing.T) {
		blocks := codec.Blocks()

		for i, b := range blocks {
			for m := b.Start + 1; m < b.End(); m++ {
				qx, qy := codec.EncodeSeq(int16(m-1)), codec.EncodeSeq(int16(m))
				require.Equal(t, -1, qx.Compare(qy), "%s: %q %q", b.Name, qx, qy)
			}

			// The negative side of the last block holds one more value.
			end := b.End()
			if i == len(blocks)-1 {
				end++
			}

			start := b.Start
			if start == 0 {
				start = 1
			}

			for m := start + 1; m < end; m++ {
				qx, qy := codec.EncodeSeq(int16(-int64(m-1))), codec.EncodeSeq(int16(-int64(m)))
				require.Equal(t, -1, qx.Compare(qy), "%s: %q %q", b.Name, qx, qy)
			}
		}

		require.Equal(t, alphanumeric.Int16Min, codec.Encode(math.MinInt16))
	})

	t.Run("blocks", func(t *testing.T) {
		expected := expectBlocks(
			[]string{"numeric", "letter", "letter-digit"},
			[]uint64{1000, 25038, 6730},
		)

		if diff := cmp.Diff(expected, codec.Blocks()); diff != "" {
			t.Errorf("blocks mismatch (-want +got):\n%s", diff)
		}
	})
}
