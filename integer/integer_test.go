package integer

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitJoin(t *testing.T) {
	type TC struct {
		name   string
		schema Schema
		blk    Block
	}

	tcs := []TC{
		{
			name:   "0",
			schema: Int16,
			blk:    Block{Value: 0},
		},
		{
			name:   "1",
			schema: Int16,
			blk:    Block{Value: 1},
		},
		{
			name:   "-1",
			schema: Int16,
			blk:    Block{Value: 1, Negative: true},
		},
		{
			name:   "32767",
			schema: Int16,
			blk:    Block{Value: 0b0111_1111_1111_1111},
		},
		{
			name:   "-32768",
			schema: Int16,
			blk:    Block{Value: 0b1000_0000_0000_0000, Negative: true},
		},
		{
			name:   "2147483647",
			schema: Int32,
			blk:    Block{Value: math.MaxInt32},
		},
		{
			name:   "-2147483648",
			schema: Int32,
			blk:    Block{Value: 1 << 31, Negative: true},
		},
		{
			name:   "9223372036854775807",
			schema: Int64,
			blk:    Block{Value: math.MaxInt64},
		},
		{
			name:   "-9223372036854775808",
			schema: Int64,
			blk:    Block{Value: 1 << 63, Negative: true},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			// These checks ensure that our test case name matches the value.
			v, err := strconv.ParseInt(tc.name, 10, int(tc.schema.Bits))
			require.NoError(t, err)

			t.Run("split", func(t *testing.T) {
				require.Equal(t, tc.blk, Split(v))
			})

			t.Run("join", func(t *testing.T) {
				require.True(t, tc.schema.Fits(tc.blk))

				joined, err := tc.schema.Join(tc.blk)
				require.NoError(t, err)
				require.Equal(t, v, joined)
			})
		})
	}
}

func TestJoinTooLarge(t *testing.T) {
	type TC struct {
		name   string
		schema Schema
		blk    Block
	}

	tcs := []TC{
		{
			name:   "32768",
			schema: Int16,
			blk:    Block{Value: 1 << 15},
		},
		{
			name:   "-32769",
			schema: Int16,
			blk:    Block{Value: 1<<15 + 1, Negative: true},
		},
		{
			name:   "2147483648",
			schema: Int32,
			blk:    Block{Value: 1 << 31},
		},
		{
			name:   "9223372036854775808",
			schema: Int64,
			blk:    Block{Value: 1 << 63},
		},
		{
			name:   "-18446744073709551615",
			schema: Int64,
			blk:    Block{Value: math.MaxUint64, Negative: true},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.False(t, tc.schema.Fits(tc.blk))

			_, err := tc.schema.Join(tc.blk)
			require.Error(t, err)
			require.True(t, Error.Has(err))
		})
	}
}

func TestMax(t *testing.T) {
	require.Equal(t, uint64(math.MaxInt16), Int16.Max(false))
	require.Equal(t, uint64(-math.MinInt16), Int16.Max(true))
	require.Equal(t, uint64(math.MaxInt32), Int32.Max(false))
	require.Equal(t, uint64(-math.MinInt32), Int32.Max(true))
	require.Equal(t, uint64(math.MaxInt64), Int64.Max(false))
	require.Equal(t, uint64(1<<63), Int64.Max(true))
}
