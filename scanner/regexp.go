package scanner

import (
	"github.com/langyo/meriyah/token"
	"github.com/langyo/meriyah/unicodeid"
)

// scanRegexp delimits a regular expression body and its flags; called only
// once the dispatcher has resolved '/' in favor of a regular expression.
// s.ch is the opening '/'.
func (s *Scanner) scanRegexp(ctx Context) Token {
	start := s.tokenStart
	s.next() // consume opening '/'
	bodyStart := s.offset
	inClass := false

loop:
	for {
		switch {
		case s.ch == eof:
			s.fatalAt(start, UnterminatedRegExp, "unterminated regular expression")
			break loop
		case unicodeid.IsLineTerminator(s.ch):
			s.fatalAt(start, UnterminatedRegExp, "unterminated regular expression")
			break loop
		case s.ch == '\\':
			s.next()
			if s.ch == eof || unicodeid.IsLineTerminator(s.ch) {
				s.fatalAt(start, UnterminatedRegExp, "unterminated regular expression")
				break loop
			}
			s.next()
		case s.ch == '[':
			inClass = true
			s.next()
		case s.ch == ']':
			inClass = false
			s.next()
		case s.ch == '/' && !inClass:
			break loop
		default:
			s.next()
		}
	}

	bodyEnd := s.offset
	if s.ch == '/' {
		s.next() // consume closing '/'
	}

	flagsStart := s.offset
	seen := make(map[rune]bool)
	for unicodeid.IsIDContinue(s.ch) {
		switch s.ch {
		case 'g', 'i', 'm', 'u', 'y', 's', 'd':
			if seen[s.ch] {
				s.errorAt(s.offset, DuplicateRegExpFlag, "duplicate regular expression flag %q", s.ch)
			}
			seen[s.ch] = true
		default:
			s.errorAt(s.offset, UnexpectedTokenRegExpFlag, "unexpected regular expression flag %q", s.ch)
		}
		s.next()
	}

	tok := s.newToken(token.REGEXP)
	tok.Regexp = &RegexpValue{
		Pattern: s.sliceString(bodyStart, bodyEnd),
		Flags:   s.sliceString(flagsStart, s.offset),
	}
	return tok
}
