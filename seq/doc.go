// Package seq packs short ASCII strings into machine words.
//
// A Seq holds up to eight characters in a single uint64 and a Seq16 holds up
// to sixteen in two. Byte i of the word holds character i, so the first
// character lives in the least significant byte:
//
//	"AUD"  -> 0x0000_0000_0044_5541
//	           ^^^^ ^^^^ ^^ ^^ ^^
//	           empty     D  U  A
//
// The first zero byte ends the sequence. Its length is the position of that
// byte, or the full capacity when there is none. Bytes after the first zero
// byte are ignored by every read:
//
//	| Seq                   | Len | String   |
//	|-----------------------|-----|----------|
//	| 0x0000_0000_0000_0000 | 0   |          |
//	| 0x0000_0000_0000_0041 | 1   | A        |
//	| 0x0000_0000_0042_0041 | 1   | A        |
//	| 0x0000_0000_0044_5541 | 3   | AUD      |
//	| 0x4847_4645_4443_4241 | 8   | ABCDEFGH |
//
// Characters may be any byte except NUL.
//
// Every operation except String works on the packed value directly and does
// not allocate.
package seq
