package integer

import (
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Block is a signed integer number split into sign and magnitude.
type Block struct {
	Value    uint64
	Negative bool
}

// Split returns the sign and magnitude of v. The magnitude of the most
// negative value is representable because it is kept unsigned.
func Split(v int64) Block {
	if v < 0 {
		return Block{
			Value:    uint64(^v) + 1,
			Negative: true,
		}
	}

	return Block{
		Value: uint64(v),
	}
}

// Schema for an integer.
type Schema struct {
	Bits uint64
}

// Common schemas.
var (
	Int16 = Schema{Bits: 16}
	Int32 = Schema{Bits: 32}
	Int64 = Schema{Bits: 64}
)

// Max returns the largest magnitude of a value with the given sign.
// Negative values have one more magnitude than positive ones.
func (s Schema) Max(negative bool) uint64 {
	m := uint64(1) << (s.Bits - 1)
	if negative {
		return m
	}

	return m - 1
}

// Fits returns true if the block is representable in the schema.
func (s Schema) Fits(b Block) bool {
	return b.Value <= s.Max(b.Negative)
}

// Join returns the block as a signed value.
func (s Schema) Join(b Block) (v int64, err error) {
	if !s.Fits(b) {
		if b.Negative {
			return 0, Error.New("-%d too large for %d bits", b.Value, s.Bits)
		}

		return 0, Error.New("%d too large for %d bits", b.Value, s.Bits)
	}

	if b.Negative {
		return int64(^(b.Value - 1)), nil
	}

	return int64(b.Value), nil
}
