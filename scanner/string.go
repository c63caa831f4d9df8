package scanner

import (
	"strings"

	"github.com/langyo/meriyah/token"
)

// scanString scans a single- or double-quoted string literal; s.ch is the
// opening quote at entry.
func (s *Scanner) scanString(ctx Context) Token {
	quote := s.ch
	start := s.tokenStart
	s.next() // consume opening quote
	contentStart := s.offset

	var b strings.Builder
	escaped := false
	octal := false
	segStart := contentStart
	terminated := false

loop:
	for {
		switch s.ch {
		case eof:
			s.fatalAt(start, UnterminatedString, "unterminated string literal")
			break loop
		case quote:
			terminated = true
			break loop
		case '\n', '\r':
			s.fatalAt(s.offset, UnterminatedString, "string literal contains an unescaped line terminator")
			break loop
		case '\\':
			if !escaped {
				escaped = true
			}
			if p := s.peek(); p >= '1' && p <= '7' || p == '0' && isDecimalDigit(s.peekAt(1)) {
				octal = true
			}
			b.WriteString(s.sliceString(segStart, s.offset))
			s.scanStringEscape(ctx, &b)
			segStart = s.offset
		default:
			s.next()
		}
	}

	var value string
	if escaped {
		b.WriteString(s.sliceString(segStart, s.offset))
		value = b.String()
	} else {
		value = s.sliceString(contentStart, s.offset)
	}

	if terminated {
		s.next() // consume closing quote
	}

	tok := s.newToken(token.STRING)
	tok.Value = value
	if octal {
		tok.Flags |= FlagOctal
	}
	return tok
}

// scanStringEscape consumes one backslash escape (s.ch == '\\' at entry)
// and appends its decoded form to b.
func (s *Scanner) scanStringEscape(ctx Context, b *strings.Builder) {
	escOffset := s.offset
	s.next() // consume '\\'
	switch s.ch {
	case 'n':
		b.WriteByte('\n')
		s.next()
	case 'r':
		b.WriteByte('\r')
		s.next()
	case 't':
		b.WriteByte('\t')
		s.next()
	case 'b':
		b.WriteByte('\b')
		s.next()
	case 'f':
		b.WriteByte('\f')
		s.next()
	case 'v':
		b.WriteByte('\v')
		s.next()
	case '\'', '"', '\\':
		b.WriteRune(s.ch)
		s.next()
	case 'x':
		s.next()
		cp, ok := s.scanHexDigits(2)
		if !ok {
			s.errorAt(escOffset, InvalidHexEscape, "invalid hex escape")
			return
		}
		b.WriteRune(rune(cp))
	case 'u':
		cp, ok := s.scanUnicodeEscapeBody()
		if !ok {
			s.errorAt(escOffset, InvalidUnicodeEscape, "invalid unicode escape")
			return
		}
		b.WriteRune(cp)
	case '\r':
		s.next()
		if s.ch == '\n' {
			s.next()
		}
	case '\n', ' ', ' ':
		s.next()
	case '0':
		if isDecimalDigit(s.peek()) {
			s.scanLegacyOctalEscape(ctx, escOffset, b)
			return
		}
		b.WriteByte(0)
		s.next()
	case '1', '2', '3', '4', '5', '6', '7':
		s.scanLegacyOctalEscape(ctx, escOffset, b)
	case '8', '9':
		allowed := ctx&DisableWebCompat == 0 && ctx&Strict == 0 && ctx&SpecDeviation == 0
		if !allowed {
			s.errorAt(escOffset, StrictOctalEscape, "\\8 and \\9 are only allowed in non-strict web-compat mode")
		}
		b.WriteRune(s.ch)
		s.next()
	case eof:
		s.errorAt(escOffset, UnterminatedString, "unterminated escape sequence")
	default:
		b.WriteRune(s.ch)
		s.next()
	}
}

// scanLegacyOctalEscape consumes up to 3 (2 if the first digit is 4-7)
// octal digits, s.ch already the first one, and writes the decoded byte.
func (s *Scanner) scanLegacyOctalEscape(ctx Context, escOffset int, b *strings.Builder) {
	val := 0
	digits := 0
	maxDigits := 3
	if s.ch >= '4' {
		maxDigits = 2
	}
	for digits < maxDigits && isOctalDigit(s.ch) {
		val = val*8 + int(s.ch-'0')
		s.next()
		digits++
	}
	if ctx&Strict != 0 {
		s.errorAt(escOffset, StrictOctalEscape, "octal escape sequences are not allowed in strict mode")
	}
	b.WriteRune(rune(val))
}
