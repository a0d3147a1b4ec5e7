package alphanumeric

// Alphabet lists the alphanumeric characters in ordinal order.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Sign characters.
const (
	NumericSign      = '-'
	AlphanumericSign = '.'
)

// Radixes used by the block rules.
const (
	digits  = 10
	letters = 26
	alnums  = 36
)

// chars is the read side shared by strings and packed sequences.
type chars interface {
	At(i int) byte
	Len() int
	String() string
}

// text adapts a string to chars.
type text string

func (t text) At(i int) byte {
	if i < 0 || i >= len(t) {
		return 0
	}

	return t[i]
}

func (t text) Len() int {
	return len(t)
}

func (t text) String() string {
	return string(t)
}

// packer is the write side of a packed sequence.
type packer[S any] interface {
	chars
	Set(i int, c byte) S
	Shift(n int) S
}

func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isNonZeroDigit(c byte) bool {
	return '1' <= c && c <= '9'
}

func isAlnum(c byte) bool {
	return isDigit(c) || isLetter(c)
}

func isSign(c byte) bool {
	return c == NumericSign || c == AlphanumericSign
}

// alnum returns the ordinal of an alphanumeric character.
func alnum(c byte) uint64 {
	if c <= '9' {
		return uint64(c - '0')
	}

	return uint64(c-'A') + digits
}

// letter returns the ordinal of a letter.
func letter(c byte) uint64 {
	return uint64(c - 'A')
}

// digit returns the ordinal of a digit.
func digit(c byte) uint64 {
	return uint64(c - '0')
}

// StartsWithSign returns true if s begins with a sign character.
func StartsWithSign(s string) bool {
	return len(s) > 0 && isSign(s[0])
}

// exceeds reports whether c sorts after bound, shorter sequences first.
func exceeds[C chars](c C, bound string) bool {
	n := c.Len()
	if n != len(bound) {
		return n > len(bound)
	}

	for i := 0; i < n; i++ {
		a, b := c.At(i), bound[i]
		if a != b {
			return a > b
		}
	}

	return false
}
