// Package unicodeid classifies Unicode code points for ECMAScript
// IdentifierStart/IdentifierPart and whitespace. ASCII classification is a
// flat bit-packed word lookup (the dispatch fast path); anything above
// ASCII falls back to the standard library's Unicode derived-property
// range tables, which track the same Unicode database releases the
// language spec's ID_Start/ID_Continue sets are derived from.
package unicodeid

import "unicode"

// idStartTable and idContinueTable are bit-packed over the ASCII range:
// bit i of word (i>>5) is set iff code point i qualifies. The generating
// pass in init, spelled out here instead of run through go:generate,
// visits every ASCII code point once against the same rules applied below
// to non-ASCII code points ($/`_` plus Unicode L*, Nl, Other_ID_Start for
// Start; additionally Mn, Mc, Nd, Pc, Other_ID_Continue, ZWNJ and ZWJ for
// Continue).
var idStartTable [4]uint32
var idContinueTable [4]uint32

func init() {
	for c := rune(0); c < 128; c++ {
		if isASCIIIDStart(c) {
			idStartTable[c>>5] |= 1 << uint(c&31)
		}
		if isASCIIIDContinue(c) {
			idContinueTable[c>>5] |= 1 << uint(c&31)
		}
	}
}

func isASCIIIDStart(c rune) bool {
	return c == '$' || c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isASCIIIDContinue(c rune) bool {
	return isASCIIIDStart(c) || ('0' <= c && c <= '9')
}

// idStartRanges / idContinueRanges classify non-ASCII code points: the
// Unicode ID_Start/ID_Continue derived properties expressed as
// unicode.RangeTable category unions.
var idStartRanges = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
	unicode.Other_ID_Start,
}

var idContinueRanges = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
	unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
	unicode.Other_ID_Start, unicode.Other_ID_Continue,
}

const (
	zwnj = '‌' // ZERO WIDTH NON-JOINER, valid mid-identifier only
	zwj  = '‍' // ZERO WIDTH JOINER, valid mid-identifier only
)

// IsIDStart reports whether r may begin an ECMAScript IdentifierName.
func IsIDStart(r rune) bool {
	if r < 0 {
		return false
	}
	if r < 128 {
		return idStartTable[r>>5]&(1<<uint(r&31)) != 0
	}
	return unicode.IsOneOf(idStartRanges, r)
}

// IsIDContinue reports whether r may continue an ECMAScript IdentifierName
// past its first code point.
func IsIDContinue(r rune) bool {
	if r < 0 {
		return false
	}
	if r < 128 {
		return idContinueTable[r>>5]&(1<<uint(r&31)) != 0
	}
	if r == zwnj || r == zwj {
		return true
	}
	return unicode.IsOneOf(idContinueRanges, r)
}

// IsLineTerminator reports whether r is one of the four ECMAScript
// LineTerminator code points: LF, CR, LS (U+2028), PS (U+2029).
func IsLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// IsWhiteSpace reports whether r is ECMAScript WhiteSpace: TAB, VT, FF,
// SPACE, NBSP, BOM (ZWNBSP), and any other Unicode "Space_Separator" (Zs).
func IsWhiteSpace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', ' ', '\u00A0', '\uFEFF':
		return true
	}
	return r > 127 && unicode.Is(unicode.Zs, r)
}

// CombineSurrogatePair computes the astral scalar value of a UTF-16
// surrogate pair. Callers must have already verified hi is a high
// surrogate (0xD800-0xDBFF) and lo a low surrogate (0xDC00-0xDFFF).
func CombineSurrogatePair(hi, lo uint16) rune {
	return rune(0x10000 + (int32(hi)-0xD800)*0x400 + (int32(lo) - 0xDC00))
}

// IsHighSurrogate reports whether u is a UTF-16 high (lead) surrogate.
func IsHighSurrogate(u uint16) bool { return 0xD800 <= u && u <= 0xDBFF }

// IsLowSurrogate reports whether u is a UTF-16 low (trail) surrogate.
func IsLowSurrogate(u uint16) bool { return 0xDC00 <= u && u <= 0xDFFF }
