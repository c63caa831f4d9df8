package scanner

import (
	"strings"

	"github.com/langyo/meriyah/token"
)

// scanTemplate opens a template literal; s.ch is the backtick at entry.
func (s *Scanner) scanTemplate(ctx Context) Token {
	s.next() // consume opening '`'
	return s.scanTemplatePart(ctx, token.NOSUBSTITUTION_TEMPLATE, token.TEMPLATE_HEAD)
}

// ScanTemplateTail resumes scanning inside a template literal's body after
// the parser has consumed the "}" that closes a "${ ... }" substitution.
// The scanner does not track template nesting itself - the parser decides
// when to call ScanTemplateTail instead of Scan, incrementing its own depth
// counter on TemplateHead/TemplateMiddle and decrementing after consuming
// the matching "}".
func (s *Scanner) ScanTemplateTail(ctx Context) Token {
	s.precedingLineBreak = false
	s.tokenStart = s.offset
	return s.scanTemplatePart(ctx, token.TEMPLATE_TAIL, token.TEMPLATE_MIDDLE)
}

// scanTemplatePart scans up to the next "`" (closeKind) or "${"
// (continueKind), decoding escapes like scanString but tolerating invalid
// ones: an invalid escape only sets FlagTemplateCookedInvalid, since
// whether that is an error depends on tagged-vs-untagged context only the
// parser has.
func (s *Scanner) scanTemplatePart(ctx Context, closeKind, continueKind token.Kind) Token {
	start := s.tokenStart
	contentStart := s.offset
	var b strings.Builder
	escaped := false
	invalidCooked := false
	segStart := contentStart
	kind := closeKind

loop:
	for {
		switch {
		case s.ch == eof:
			s.fatalAt(start, UnterminatedTemplate, "unterminated template literal")
			break loop
		case s.ch == '`':
			kind = closeKind
			break loop
		case s.ch == '$' && s.peek() == '{':
			kind = continueKind
			break loop
		case s.ch == '\\':
			escaped = true
			b.WriteString(s.sliceString(segStart, s.offset))
			if !s.scanTemplateEscape(ctx, &b) {
				invalidCooked = true
			}
			segStart = s.offset
		case s.ch == '\r':
			escaped = true
			b.WriteString(s.sliceString(segStart, s.offset))
			b.WriteByte('\n')
			s.next()
			if s.ch == '\n' {
				s.next()
			}
			segStart = s.offset
		default:
			s.next()
		}
	}

	var value string
	if !invalidCooked {
		if escaped {
			b.WriteString(s.sliceString(segStart, s.offset))
			value = b.String()
		} else {
			value = s.sliceString(contentStart, s.offset)
		}
	}

	if kind == continueKind {
		s.next() // consume '$'
		s.next() // consume '{'
	} else {
		s.next() // consume closing '`'
	}

	tok := s.newToken(kind)
	if invalidCooked {
		tok.Flags |= FlagTemplateCookedInvalid
	} else {
		tok.Value = value
	}
	return tok
}

// scanTemplateEscape consumes one backslash escape (s.ch == '\\' at entry)
// inside a template literal. It returns false, without emitting a
// diagnostic, for forms that are always invalid in templates ("\1" to "\9",
// "\0" followed by a digit, malformed "\x" and "\u" escapes, and a
// backslash at end of input), leaving the caller to flag the token.
func (s *Scanner) scanTemplateEscape(ctx Context, b *strings.Builder) bool {
	s.next() // consume '\\'
	switch s.ch {
	case 'n':
		b.WriteByte('\n')
		s.next()
		return true
	case 'r':
		b.WriteByte('\r')
		s.next()
		return true
	case 't':
		b.WriteByte('\t')
		s.next()
		return true
	case 'b':
		b.WriteByte('\b')
		s.next()
		return true
	case 'f':
		b.WriteByte('\f')
		s.next()
		return true
	case 'v':
		b.WriteByte('\v')
		s.next()
		return true
	case '`', '$', '\'', '"', '\\':
		b.WriteRune(s.ch)
		s.next()
		return true
	case 'x':
		s.next()
		cp, ok := s.scanHexDigits(2)
		if !ok {
			return false
		}
		b.WriteRune(rune(cp))
		return true
	case 'u':
		cp, ok := s.scanUnicodeEscapeBody()
		if !ok {
			return false
		}
		b.WriteRune(cp)
		return true
	case '\r':
		s.next()
		if s.ch == '\n' {
			s.next()
		}
		return true
	case '\n', '\u2028', '\u2029':
		s.next()
		return true
	case '0':
		if isDecimalDigit(s.peek()) {
			s.next()
			for isDecimalDigit(s.ch) {
				s.next()
			}
			return false
		}
		b.WriteByte(0)
		s.next()
		return true
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		for isDecimalDigit(s.ch) {
			s.next()
		}
		return false
	case eof:
		return false
	default:
		b.WriteRune(s.ch)
		s.next()
		return true
	}
}
