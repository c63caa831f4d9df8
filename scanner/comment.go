package scanner

import "github.com/langyo/meriyah/unicodeid"

// skipLineComment consumes a single-line comment body (s.ch positioned
// just past the opening "//", "<!--", or "-->" marker) up to but not
// including the terminating LineTerminator or EOF. The outer Scan loop
// picks the terminator back up and sets precedingLineBreak itself.
func (s *Scanner) skipLineComment() {
	for s.ch != eof && !unicodeid.IsLineTerminator(s.ch) {
		s.next()
	}
}

// skipBlockComment consumes a "/* ... */" comment (s.ch positioned just
// past the opening "/*") and reports whether any LineTerminator was
// crossed, the signal automatic semicolon insertion needs.
func (s *Scanner) skipBlockComment() bool {
	start := s.tokenStart
	crossed := false
	for {
		if s.ch == eof {
			s.fatalAt(start, UnterminatedComment, "unterminated comment")
			return crossed
		}
		if unicodeid.IsLineTerminator(s.ch) {
			crossed = true
		}
		if s.ch == '*' && s.peek() == '/' {
			s.next()
			s.next()
			return crossed
		}
		s.next()
	}
}
