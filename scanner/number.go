package scanner

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/langyo/meriyah/token"
	"github.com/langyo/meriyah/unicodeid"
)

// scanNumber classifies every numeric literal form reachable from a
// leading digit: decimal with optional fraction/exponent, 0x/0o/0b with
// base-checked digits, legacy octal and its non-octal-decimal fallback,
// numeric separators, and the BigInt suffix. s.ch is the first digit at
// entry.
func (s *Scanner) scanNumber(ctx Context) Token {
	start := s.tokenStart
	isBigInt := false
	isLegacyOctal := false
	legacyForm := false
	isFloat := false

	switch {
	case s.ch == '0' && (s.peek() == 'x' || s.peek() == 'X'):
		s.next()
		s.next()
		if !s.scanDigitsWithSeparators(isHexDigit) {
			s.errorAt(s.offset, ExpectedHexDigits, "missing digits after hexadecimal prefix")
		}
	case s.ch == '0' && (s.peek() == 'o' || s.peek() == 'O'):
		s.next()
		s.next()
		if !s.scanDigitsWithSeparators(isOctalDigit) {
			s.errorAt(s.offset, ExpectedHexDigits, "missing digits after octal prefix")
		}
	case s.ch == '0' && (s.peek() == 'b' || s.peek() == 'B'):
		s.next()
		s.next()
		if !s.scanDigitsWithSeparators(isBinaryDigit) {
			s.errorAt(s.offset, ExpectedHexDigits, "missing digits after binary prefix")
		}
	case s.ch == '0' && isDecimalDigit(s.peek()):
		// legacy octal, or a non-octal decimal integer once an 8 or 9 shows up
		isLegacyOctal = true
		legacyForm = true
		s.next()
		for isDecimalDigit(s.ch) {
			if s.ch == '8' || s.ch == '9' {
				isLegacyOctal = false
			}
			s.next()
		}
		if ctx&Strict != 0 {
			s.errorAt(start, StrictOctalLiteral, "octal literals are not allowed in strict mode")
		}
	default:
		if s.ch == '0' {
			s.next()
		} else {
			s.scanDigitsWithSeparators(isDecimalDigit)
		}
		if s.ch == '.' {
			isFloat = true
			s.next()
			s.scanDigitsWithSeparators(isDecimalDigit)
		}
		if s.ch == 'e' || s.ch == 'E' {
			isFloat = true
			s.next()
			if s.ch == '+' || s.ch == '-' {
				s.next()
			}
			if !isDecimalDigit(s.ch) {
				s.errorAt(s.offset, InvalidCharacter, "missing exponent digits")
			}
			s.scanDigitsWithSeparators(isDecimalDigit)
		}
	}

	if s.ch == 'n' && !isFloat {
		if legacyForm {
			s.errorAt(s.offset, InvalidBigInt, "bigint suffix is not allowed on a legacy octal or leading-zero literal")
		}
		isBigInt = true
		s.next()
	}

	if unicodeid.IsIDStart(s.ch) || isDecimalDigit(s.ch) {
		s.errorAt(s.offset, IdentifierAfterNumericLiteral, "identifier starts immediately after numeric literal")
	}

	raw := string(utf16.Decode(s.src[start:s.offset]))
	tok := s.newToken(token.NUMERIC)
	if isBigInt {
		tok.Kind = token.BIGINT
		tok.BigInt = stripSeparators(raw[:len(raw)-1])
		return tok
	}
	if isLegacyOctal {
		tok.Flags |= FlagOctal
	}
	tok.Number = parseNumericValue(raw, isLegacyOctal)
	return tok
}

// scanNumberFromDot scans a dot-prefix fractional literal like ".5"; s.ch
// is '.' at entry.
func (s *Scanner) scanNumberFromDot() Token {
	start := s.tokenStart
	s.next() // consume '.'
	s.scanDigitsWithSeparators(isDecimalDigit)
	if s.ch == 'e' || s.ch == 'E' {
		s.next()
		if s.ch == '+' || s.ch == '-' {
			s.next()
		}
		if !isDecimalDigit(s.ch) {
			s.errorAt(s.offset, InvalidCharacter, "missing exponent digits")
		}
		s.scanDigitsWithSeparators(isDecimalDigit)
	}
	if unicodeid.IsIDStart(s.ch) || isDecimalDigit(s.ch) {
		s.errorAt(s.offset, IdentifierAfterNumericLiteral, "identifier starts immediately after numeric literal")
	}
	raw := string(utf16.Decode(s.src[start:s.offset]))
	tok := s.newToken(token.NUMERIC)
	tok.Number = parseNumericValue(raw, false)
	return tok
}

// scanDigitsWithSeparators consumes digits satisfying isDigit plus "_"
// numeric separators, rejecting a separator with no preceding digit (covers
// both "two consecutive separators" and "separator adjacent to a base
// prefix"), and a trailing separator. It reports whether at least one digit
// was consumed.
func (s *Scanner) scanDigitsWithSeparators(isDigit func(rune) bool) bool {
	sawDigit := false
	lastWasSeparator := false
	for {
		if s.ch == '_' {
			if !sawDigit || lastWasSeparator {
				s.errorAt(s.offset, ContinuousNumericSeparator, "numeric separator must be preceded by a digit")
			}
			lastWasSeparator = true
			s.next()
			continue
		}
		if !isDigit(s.ch) {
			break
		}
		sawDigit = true
		lastWasSeparator = false
		s.next()
	}
	if lastWasSeparator {
		s.errorAt(s.offset, TrailingNumericSeparator, "numeric separator not allowed at end of numeric literal")
	}
	return sawDigit
}

func stripSeparators(raw string) string {
	if !strings.ContainsRune(raw, '_') {
		return raw
	}
	b := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] != '_' {
			b = append(b, raw[i])
		}
	}
	return string(b)
}

// parseNumericValue converts the raw spelling of a non-BigInt numeric
// literal to its IEEE-754 double value.
func parseNumericValue(raw string, legacyOctal bool) float64 {
	clean := stripSeparators(raw)
	var v float64
	var err error
	switch {
	case len(clean) > 1 && (clean[1] == 'x' || clean[1] == 'X'):
		var u uint64
		u, err = strconv.ParseUint(clean[2:], 16, 64)
		v = float64(u)
	case len(clean) > 1 && (clean[1] == 'o' || clean[1] == 'O'):
		var u uint64
		u, err = strconv.ParseUint(clean[2:], 8, 64)
		v = float64(u)
	case len(clean) > 1 && (clean[1] == 'b' || clean[1] == 'B'):
		var u uint64
		u, err = strconv.ParseUint(clean[2:], 2, 64)
		v = float64(u)
	case legacyOctal:
		var u uint64
		u, err = strconv.ParseUint(clean[1:], 8, 64)
		v = float64(u)
	default:
		v, err = strconv.ParseFloat(clean, 64)
	}
	if err != nil {
		return 0
	}
	return v
}
