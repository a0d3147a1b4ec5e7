package alphanumeric

import (
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("alphanumeric")

// Rejection reasons. Use Has to test which one applies, for example
// ErrBoundary.Has(err).
var (
	ErrEmpty            = errs.Class("empty input")
	ErrSignOnly         = errs.Class("sign only")
	ErrLength           = errs.Class("length exceeded")
	ErrIllegalCharacter = errs.Class("illegal character")
	ErrLeadingZero      = errs.Class("invalid leading zero")
	ErrBoundary         = errs.Class("boundary overflow")
)

// reason identifies a rejection without building an error.
type reason uint8

const (
	accepted reason = iota
	emptyInput
	signOnly
	tooLong
	extendedShape
	negativeZero
	signedZero
	illegalCharacter
	signMismatch
	zeroPrefixedNarrow
	digitPrefixedNarrow
	misplacedDigit
	pastBoundary
)

// rejection is the outcome of the checks. The zero value accepts. Checks
// return it by value so that IsConvertible does not allocate.
type rejection struct {
	why   reason
	at    int
	char  byte
	width int
	bound string
}

func (r rejection) ok() bool {
	return r.why == accepted
}

// err builds the error for r. s is the rejected input.
func (r rejection) err(s string) error {
	switch r.why {
	case accepted:
		return nil
	case emptyInput:
		return ErrEmpty.New("nothing to decode")
	case signOnly:
		return ErrSignOnly.New("%q has nothing after the sign", s)
	case tooLong:
		return ErrLength.New("%q is longer than %d characters", s, r.width)
	case extendedShape:
		return ErrLength.New("%q: only letter-prefixed strings use %d characters", s, r.width)
	case negativeZero:
		return ErrLeadingZero.New("%q: numeric values do not start with zero", s)
	case signedZero:
		return ErrLeadingZero.New("%q: no negative zero-prefixed value of length one", s)
	case illegalCharacter:
		return ErrIllegalCharacter.New("%q: illegal character %q at %d", s, r.char, r.at)
	case signMismatch:
		return ErrIllegalCharacter.New("%q: sign does not match content", s)
	case zeroPrefixedNarrow:
		return ErrLeadingZero.New("%q: zero-prefixed strings need 32 bits", s)
	case digitPrefixedNarrow:
		return ErrIllegalCharacter.New("%q: digit-prefixed strings need 32 bits", s)
	case misplacedDigit:
		return ErrIllegalCharacter.New("%q: digit at %d, %d characters allow digits only in the last two positions", s, r.at, r.width)
	case pastBoundary:
		return ErrBoundary.New("%q is past %q", s, r.bound)
	}

	return Error.New("%q: unknown rejection %d", s, r.why)
}
