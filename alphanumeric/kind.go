package alphanumeric

import (
	"github.com/calebcase/shortstring/seq"
)

// Kind is the category a sequence is classified into.
type Kind uint8

// Kinds.
const (
	Invalid Kind = iota
	NumericUnsigned
	NumericSigned
	LetterPrefixedUnsigned
	LetterPrefixedSigned
	DigitPrefixedUnsigned
	DigitPrefixedSigned
)

var kindAbbrs = [...]string{
	Invalid:                "invalid",
	NumericUnsigned:        "nu",
	NumericSigned:          "ns",
	LetterPrefixedUnsigned: "lpu",
	LetterPrefixedSigned:   "lps",
	DigitPrefixedUnsigned:  "dpu",
	DigitPrefixedSigned:    "dps",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindAbbrs) {
		return kindAbbrs[k]
	}

	return "unknown"
}

// Signed returns true if the kind carries a sign character.
func (k Kind) Signed() bool {
	return k == NumericSigned || k == LetterPrefixedSigned || k == DigitPrefixedSigned
}

// Numeric returns true if the kind is made only of digits.
func (k Kind) Numeric() bool {
	return k == NumericUnsigned || k == NumericSigned
}

// LetterPrefixed returns true if the kind starts with a letter.
func (k Kind) LetterPrefixed() bool {
	return k == LetterPrefixedUnsigned || k == LetterPrefixedSigned
}

// DigitPrefixed returns true if the kind is alphanumeric and starts with a
// digit.
func (k Kind) DigitPrefixed() bool {
	return k == DigitPrefixedUnsigned || k == DigitPrefixedSigned
}

// Classify returns the kind of s.
func Classify(s string) Kind {
	return classify(text(s))
}

// ClassifySeq returns the kind of q.
func ClassifySeq(q seq.Seq) Kind {
	return classify(q)
}

// seed returns the kind implied by the first two characters.
func seed(first, second byte) Kind {
	switch {
	case isLetter(first):
		if isAlnum(second) {
			return LetterPrefixedUnsigned
		}
	case first == '0':
		if isAlnum(second) {
			return DigitPrefixedUnsigned
		}
	case isDigit(first):
		if isDigit(second) {
			return NumericUnsigned
		}

		if isLetter(second) {
			return DigitPrefixedUnsigned
		}
	case first == AlphanumericSign:
		if isLetter(second) {
			return LetterPrefixedSigned
		}

		if isDigit(second) {
			return DigitPrefixedSigned
		}
	case first == NumericSign:
		if isNonZeroDigit(second) {
			return NumericSigned
		}
	}

	return Invalid
}

func classify[C chars](c C) Kind {
	n := c.Len()

	switch n {
	case 0:
		return Invalid
	case 1:
		switch first := c.At(0); {
		case isLetter(first):
			return LetterPrefixedUnsigned
		case isDigit(first):
			return NumericUnsigned
		}

		return Invalid
	}

	first, second := c.At(0), c.At(1)

	k := seed(first, second)
	sawLetter := isLetter(second)

	for i := 2; i < n && k != Invalid; i++ {
		ch := c.At(i)

		switch k {
		case NumericUnsigned, NumericSigned:
			switch {
			case isDigit(ch):
			case isLetter(ch):
				sawLetter = true
				k += DigitPrefixedUnsigned - NumericUnsigned
			default:
				k = Invalid
			}
		default:
			if !isAlnum(ch) {
				k = Invalid
			}

			sawLetter = sawLetter || isLetter(ch)
		}
	}

	if k == DigitPrefixedSigned {
		switch {
		case n == 2:
			// ".0" through ".9"
			return Invalid
		case first == NumericSign:
			return Invalid
		case second != '0' && !sawLetter:
			return Invalid
		}
	}

	return k
}

// reject returns why a sequence classified as Invalid is rejected.
func reject[C chars](c C) rejection {
	first, second := c.At(0), c.At(1)

	switch {
	case first == NumericSign && second == '0':
		return rejection{why: negativeZero}
	case first == AlphanumericSign && second == '0' && c.Len() == 2:
		return rejection{why: signedZero}
	}

	for i := 0; i < c.Len(); i++ {
		ch := c.At(i)
		if isAlnum(ch) || (i == 0 && isSign(ch)) {
			continue
		}

		return rejection{why: illegalCharacter, at: i, char: ch}
	}

	return rejection{why: signMismatch}
}
