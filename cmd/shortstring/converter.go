package main

import (
	"fmt"
	"strconv"

	"github.com/calebcase/shortstring/alphanumeric"
	"github.com/calebcase/shortstring/symbol"
)

// converter hides the width of the selected codec from the commands.
type converter interface {
	// Bits is the integer width.
	Bits() int

	// Encode parses a decimal integer and returns its string.
	Encode(arg string) (string, error)

	// Decode returns the integer for s.
	Decode(s string) (int64, error)

	// Check returns the reason s is rejected, or nil.
	Check(s string) error

	// Name returns the string for a value known to fit the width.
	Name(v int64) string

	Blocks() []alphanumeric.Block
}

type tableConverter[T alphanumeric.Integer] struct {
	bits  int
	codec alphanumeric.Codec[T]
	table *symbol.Table[T]
}

func newTableConverter[T alphanumeric.Integer](bits int, codec alphanumeric.Codec[T], size int) (*tableConverter[T], error) {
	table, err := symbol.New[T](codec, size)
	if err != nil {
		return nil, err
	}

	return &tableConverter[T]{
		bits:  bits,
		codec: codec,
		table: table,
	}, nil
}

// newConverter returns the converter for width with a symbol table of size
// entries.
func newConverter(width, size int) (converter, error) {
	switch width {
	case 16:
		return newTableConverter[int16](16, alphanumeric.Int16, size)
	case 32:
		return newTableConverter[int32](32, alphanumeric.Int32, size)
	case 64:
		return newTableConverter[int64](64, alphanumeric.Int64, size)
	}

	return nil, fmt.Errorf("unsupported width: %d", width)
}

func (c *tableConverter[T]) Bits() int {
	return c.bits
}

func (c *tableConverter[T]) Encode(arg string) (string, error) {
	v, err := strconv.ParseInt(arg, 10, c.bits)
	if err != nil {
		return "", err
	}

	return c.table.Name(T(v)), nil
}

func (c *tableConverter[T]) Decode(s string) (int64, error) {
	v, err := c.table.Code(s)
	if err != nil {
		return 0, err
	}

	return int64(v), nil
}

func (c *tableConverter[T]) Check(s string) error {
	_, err := c.codec.Decode(s)

	return err
}

func (c *tableConverter[T]) Name(v int64) string {
	return c.table.Name(T(v))
}

func (c *tableConverter[T]) Blocks() []alphanumeric.Block {
	return c.codec.Blocks()
}

// reason names the kind of a rejection.
func reason(err error) string {
	switch {
	case err == nil:
		return "ok"
	case alphanumeric.ErrEmpty.Has(err):
		return "empty"
	case alphanumeric.ErrSignOnly.Has(err):
		return "sign-only"
	case alphanumeric.ErrLength.Has(err):
		return "length"
	case alphanumeric.ErrIllegalCharacter.Has(err):
		return "illegal-character"
	case alphanumeric.ErrLeadingZero.Has(err):
		return "leading-zero"
	case alphanumeric.ErrBoundary.Has(err):
		return "boundary"
	}

	return err.Error()
}
