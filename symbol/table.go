// Package symbol interns short string symbols as integers.
//
// A Table converts symbols with an alphanumeric codec and keeps recently
// used conversions in two LRU caches, one per direction. Because every
// symbol has a fixed code, tables never need to be shared or registered
// against: two tables with the same codec always agree.
package symbol

import (
	"github.com/calebcase/oops"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/zeebo/errs"

	"github.com/calebcase/shortstring/alphanumeric"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("symbol")

// DefaultSize is the number of entries kept per direction by default.
const DefaultSize = 1024

// Table converts between symbols and codes. It is safe for concurrent use.
type Table[T alphanumeric.Integer] struct {
	codec alphanumeric.Codec[T]
	names *lru.Cache[T, string]
	codes *lru.Cache[string, T]
}

// New returns a table caching up to size conversions in each direction.
func New[T alphanumeric.Integer](codec alphanumeric.Codec[T], size int) (_ *Table[T], err error) {
	defer Error.WrapP(&err)

	if size <= 0 {
		return nil, Error.New("invalid cache size: %d", size)
	}

	names, err := lru.New[T, string](size)
	if err != nil {
		return nil, oops.Trace(err)
	}

	codes, err := lru.New[string, T](size)
	if err != nil {
		return nil, oops.Trace(err)
	}

	return &Table[T]{
		codec: codec,
		names: names,
		codes: codes,
	}, nil
}

// Name returns the symbol for v.
func (t *Table[T]) Name(v T) string {
	if s, ok := t.names.Get(v); ok {
		return s
	}

	s := t.codec.Encode(v)
	t.names.Add(v, s)
	t.codes.Add(s, v)

	return s
}

// Code returns the code for the symbol s. Symbols that fail to decode are
// not cached.
func (t *Table[T]) Code(s string) (v T, err error) {
	if v, ok := t.codes.Get(s); ok {
		return v, nil
	}

	v, err = t.codec.Decode(s)
	if err != nil {
		return v, Error.Wrap(err)
	}

	t.codes.Add(s, v)
	t.names.Add(v, s)

	return v, nil
}

// Codes returns the codes for each symbol, stopping at the first failure.
func (t *Table[T]) Codes(symbols ...string) (vs []T, err error) {
	vs = make([]T, 0, len(symbols))

	for _, s := range symbols {
		v, err := t.Code(s)
		if err != nil {
			return vs, err
		}

		vs = append(vs, v)
	}

	return vs, nil
}

// Len returns the number of cached symbols.
func (t *Table[T]) Len() int {
	return t.codes.Len()
}

// Purge drops all cached conversions.
func (t *Table[T]) Purge() {
	t.names.Purge()
	t.codes.Purge()
}
