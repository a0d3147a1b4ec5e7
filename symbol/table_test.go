package symbol_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/calebcase/shortstring/alphanumeric"
	"github.com/calebcase/shortstring/symbol"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTable(t *testing.T) {
	table, err := symbol.New[int32](alphanumeric.Int32, 4)
	require.NoError(t, err)

	type TC struct {
		Symbol string
		Code   int32
		Mark   error
	}

	tcs := []TC{
		{"AUD", 1002055, oops.New("unexpected")},
		{"USD", 1027903, oops.New("unexpected")},
		{"AUDUSD", 96952639, oops.New("unexpected")},
		{".HELLO", -14686206, oops.New("unexpected")},
	}

	for i, tc := range tcs {
		tc := tc

		t.Run(fmt.Sprintf("[%d]%s", i, tc.Symbol), func(t *testing.T) {
			v, err := table.Code(tc.Symbol)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Code, v, tc.Mark)

			// Second lookup is served from the cache.
			v, err = table.Code(tc.Symbol)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Code, v, tc.Mark)

			require.Equal(t, tc.Symbol, table.Name(tc.Code), tc.Mark)
		})
	}

	require.Equal(t, 4, table.Len())

	require.Equal(t, "HELLO", table.Name(14686206))
	require.Equal(t, 4, table.Len())

	table.Purge()
	require.Equal(t, 0, table.Len())
}

func TestTableErrors(t *testing.T) {
	_, err := symbol.New[int16](alphanumeric.Int16, 0)
	require.Error(t, err)
	require.True(t, symbol.Error.Has(err))

	table, err := symbol.New[int16](alphanumeric.Int16, symbol.DefaultSize)
	require.NoError(t, err)

	_, err = table.Code("R9Q")
	require.Error(t, err)
	require.True(t, symbol.Error.Has(err))
	require.True(t, alphanumeric.ErrBoundary.Has(err))
	require.Equal(t, 0, table.Len())

	vs, err := table.Codes("AUD", "USD", "HELLO", "EUR")
	require.True(t, alphanumeric.ErrLength.Has(err))
	require.Equal(t, []int16{2435, 21083}, vs)
}

func TestTableConcurrent(t *testing.T) {
	table, err := symbol.New[int64](alphanumeric.Int64, 64)
	require.NoError(t, err)

	symbols := []string{"AUD", "USD", "EUR", "JPY", "AUDUSD", "EURJPY", "COMPUTATIONAL", ".HELLO"}

	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)

		go func(g int) {
			defer wg.Done()

			for i := 0; i < 1000; i++ {
				s := symbols[(g+i)%len(symbols)]

				v, err := table.Code(s)
				if err != nil {
					t.Error(err)

					return
				}

				if name := table.Name(v); name != s {
					t.Errorf("%q != %q", name, s)

					return
				}
			}
		}(g)
	}

	wg.Wait()

	require.Equal(t, len(symbols), table.Len())
}
