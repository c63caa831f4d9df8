package scanner

import (
	"unicode/utf16"

	"github.com/langyo/meriyah/token"
	"github.com/langyo/meriyah/unicodeid"
)

// scanIdentifier has two paths: a fast ASCII slice when no escape is seen,
// and a scratch-buffer slow path once one is. Entry requires s.ch to be an
// IdentifierStart code point or '\\'.
func (s *Scanner) scanIdentifier(ctx Context) Token {
	start := s.offset
	var scratch []rune
	escaped := false

	for {
		if s.ch == '\\' {
			escaped = true
			if scratch == nil {
				scratch = utf16.Decode(s.src[start:s.offset])
			}
			cp, ok := s.scanIdentifierEscape(len(scratch) == 0)
			if !ok {
				break
			}
			scratch = append(scratch, cp)
			continue
		}
		if !unicodeid.IsIDContinue(s.ch) {
			break
		}
		if scratch != nil {
			scratch = append(scratch, s.ch)
		}
		s.next()
	}

	var name string
	if scratch != nil {
		name = string(scratch)
	} else {
		name = string(utf16.Decode(s.src[start:s.offset]))
	}

	tok := s.newToken(token.IDENTIFIER)
	tok.Value = name
	if escaped {
		tok.Flags |= FlagEscaped
		switch kind := token.Lookup(name); {
		case kind.IsStrictReserved():
			tok.Kind = token.ESCAPED_FUTURE_RESERVED
		case kind.IsKeyword():
			tok.Kind = token.ESCAPED_RESERVED
		}
		return tok
	}

	tok.Kind = token.Lookup(name)
	return tok
}

// scanIdentifierEscape consumes a "\uXXXX" or "\u{X...}" escape (the
// leading backslash is current at entry) and validates the decoded code
// point against ID_Start (atStart) or ID_Continue.
func (s *Scanner) scanIdentifierEscape(atStart bool) (rune, bool) {
	escOffset := s.offset
	s.next() // consume '\\'
	if s.ch != 'u' {
		s.errorAt(escOffset, InvalidUnicodeEscape, "invalid identifier escape")
		return 0, false
	}
	cp, ok := s.scanUnicodeEscapeBody()
	if !ok {
		s.errorAt(escOffset, InvalidUnicodeEscape, "invalid identifier unicode escape")
		return 0, false
	}
	valid := atStart && unicodeid.IsIDStart(cp) || !atStart && unicodeid.IsIDContinue(cp)
	if !valid {
		s.errorAt(escOffset, InvalidUnicodeEscape, "invalid identifier unicode escape")
		return 0, false
	}
	return cp, true
}

// scanPrivateIdentifier scans a "#name" class-private-field name; s.ch is
// '#' at entry. The leading '#' is included in the token's Pos/End span but
// excluded from Value.
func (s *Scanner) scanPrivateIdentifier(ctx Context) (Token, bool) {
	s.next() // consume '#'
	tok := s.scanIdentifier(ctx)
	tok.Kind = token.PRIVATE_IDENTIFIER
	return tok, true
}
