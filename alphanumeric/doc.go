// Package alphanumeric converts short alphanumeric strings to fixed width
// signed integers and back.
//
// Every int16, int32 and int64 has exactly one string and every accepted
// string has exactly one value. Strings are made of the characters 0-9 and
// A-Z with an optional leading sign. Identifiers like tickers ("AUDUSD"),
// currency codes ("AUD") or short tags ("HELLO") can therefore be stored and
// compared as plain integers and printed back unchanged.
//
// Signs
//
// Negative values carry a sign in front of their string. Numbers use '-' and
// every other string uses '.':
//
//	|     value | string |
//	|-----------|--------|
//	|       123 | 123    |
//	|      -123 | -123   |
//	|  14686206 | HELLO  |
//	| -14686206 | .HELLO |
//
// A number never starts with a zero unless it is exactly "0". Strings like
// "00" or "0A" are alphanumeric and decode to large values.
//
// Blocks
//
// The non-negative range of a width is split into blocks. Each block holds
// strings of one shape, ordered so that the ordinal within a block follows
// the string order within the block. For 32 bits (strings of up to 6
// characters):
//
//	| block            | shape                        | length            | first  | last   |
//	|------------------|------------------------------|-------------------|--------|--------|
//	| numeric          | [0-9]{1,6}                   | 10^6              | 0      | 999999 |
//	| letter-prefixed  | [A-Z][0-9A-Z]{0,5}           | 26*(36^0+..+36^5) | A      | ZZZZZZ |
//	| zero-prefixed    | 0[0-9A-Z]{1,5}               | 36^1+..+36^5      | 00     | 0ZZZZZ |
//	| digit-prefixed/0 | [1-9][0-9]{0,4}[A-Z]         | (10^5-1)*26       | 1A     | 99999Z |
//	| digit-prefixed/1 | [1-9][0-9]{0,3}[A-Z][0-9A-Z] | (10^4-1)*26*36    | 1A0    | 9999ZZ |
//	| ...              |                              |                   |        |        |
//	| digit-prefixed/4 | [1-9][A-Z][0-9A-Z]{4}        | truncated         | 1A0000 | 7XIZYJ |
//	|------------------|------------------------------|-------------------|--------|--------|
//
// Digit-prefixed strings start with one or more digits followed by a letter.
// They are grouped by how far from the end the first letter is: the closer
// the letter is to the end, the earlier the group. The leading digits count
// in bijective base 10, so "1A", "10A" and "100A" are all distinct.
//
// The last group does not fit completely. It is cut at the largest value the
// width can hold, which is why decoding compares against a boundary string:
//
//	| width | max           | min            |
//	|-------|---------------|----------------|
//	|    16 | R9P           | .R9Q           |
//	|    32 | 7XIZYJ        | .7XIZYK        |
//	|    64 | RZRYMFXOEDX77 | .RZRYMFXOEDX78 |
//
// Two's complement has one more negative value than positive, so the
// negative side of the last group holds one more string.
//
// 16 Bits
//
// The 16 bit space is too small for the zero and digit-prefixed blocks. Its
// strings have up to 3 characters and use their own layout:
//
//	| block        | shape                                 | length           |
//	|--------------|---------------------------------------|------------------|
//	| numeric      | [0-9]{1,3}                            | 1000             |
//	| letter       | [A-Z], [A-Z][A-Z], [A-Z][A-Z][0-9A-Z] | 25038            |
//	| letter-digit | [A-Z][0-9], [A-Z][0-9][0-9A-Z]        | 6730 (truncated) |
//
// 64 Bits
//
// The 64 bit codec uses the 32 bit layout for strings of up to 12
// characters, numbers of up to 13 digits, and an extension block for 13
// character strings that start with at least 11 letters:
//
//	| block              | shape                        | length         |
//	|--------------------|------------------------------|----------------|
//	| extended/letters   | [A-Z]{13}                    | 26^13          |
//	| extended/digit     | [A-Z]{12}[0-9]               | 26^12*10       |
//	| extended/digit-any | [A-Z]{11}[0-9][0-9A-Z]       | truncated      |
//
// Packed Sequences
//
// Encoding writes into a packed sequence (see package seq) and does not
// allocate until the result is turned into a string. Decoding reads strings
// and packed sequences alike; a packed sequence ends at its first zero byte.
//
// IsConvertible runs the same checks as Decode and does not allocate, so it
// can screen input before Decode is called.
//
// Errors
//
// Decode fails with one of the classes ErrEmpty, ErrSignOnly, ErrLength,
// ErrIllegalCharacter, ErrLeadingZero or ErrBoundary, wrapped in Error.
package alphanumeric
