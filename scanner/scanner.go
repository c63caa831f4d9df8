// Package scanner implements the lexical scanner for ECMAScript source
// text. It takes a sequence of UTF-16 code units, the form source text is
// defined over, and produces a token through repeated calls to the Scan
// method, mirroring the pull-mode shape of go/scanner's Scanner.Scan but
// generalized to ECMAScript's context-sensitive grammar.
package scanner

import (
	"unicode/utf16"

	"github.com/langyo/meriyah/token"
	"github.com/langyo/meriyah/unicodeid"
)

const eof = rune(-1)

// A Scanner holds the scanner's internal state while processing a given
// source text. It can be allocated as part of another data structure but
// must be initialized via [Scanner.Init] before use.
type Scanner struct {
	// immutable state
	file *token.File
	src  []uint16
	err  ErrorHandler
	opts Options

	// cursor state
	ch       rune // current code point (surrogate pairs already combined)
	offset   int  // code-unit offset of ch
	rdOffset int  // code-unit offset of the next unread unit

	precedingLineBreak bool // true iff a LineTerminator preceded the token being scanned
	tokenStart         int  // code-unit offset where the in-progress token begins

	// public state - ok to read, not to modify
	Diagnostics []Diagnostic
	ErrorCount  int
}

// Init prepares s to scan src, associated with file for position
// reporting. file.Size() must equal len(src). Init may be called again to
// reuse s for another source text sharing the same error handler shape.
func (s *Scanner) Init(file *token.File, src []uint16, err ErrorHandler, opts Options) {
	if file.Size() != len(src) {
		panic("scanner.Init: file size does not match src length")
	}
	s.file = file
	s.src = src
	s.err = err
	s.opts = opts

	s.ch = ' '
	s.offset = 0
	s.rdOffset = 0
	s.precedingLineBreak = false
	s.tokenStart = 0
	s.Diagnostics = nil
	s.ErrorCount = 0

	s.next()
	if s.ch == 0xFEFF && s.offset == 0 {
		s.next() // ignore a leading byte-order mark
	}
}

// New allocates and initializes a Scanner in one call.
func New(file *token.File, src []uint16, err ErrorHandler, opts Options) *Scanner {
	s := &Scanner{}
	s.Init(file, src, err, opts)
	return s
}

// EncodeSource converts a Go string to the UTF-16 code-unit sequence the
// Scanner operates over.
func EncodeSource(src string) []uint16 {
	return utf16.Encode([]rune(src))
}

// next reads the next code point into s.ch, combining a UTF-16 surrogate
// pair into its astral scalar value. s.ch == eof at end of input. Every
// LineTerminator crossed - LF, CR (not followed by LF), LS, or PS - is
// recorded on the file's line table here, so line/column bookkeeping stays
// correct regardless of which scanning path (comment, string, template,
// dispatcher) is walking over it.
func (s *Scanner) next() {
	if s.rdOffset < len(s.src) {
		if unicodeid.IsLineTerminator(s.ch) {
			skip := s.ch == '\r' && rune(s.src[s.rdOffset]) == '\n'
			if !skip {
				s.file.AddLine(s.rdOffset)
			}
		}
		s.offset = s.rdOffset
		unit := s.src[s.rdOffset]
		r := rune(unit)
		w := 1
		if unicodeid.IsHighSurrogate(unit) && s.rdOffset+1 < len(s.src) && unicodeid.IsLowSurrogate(s.src[s.rdOffset+1]) {
			r = unicodeid.CombineSurrogatePair(unit, s.src[s.rdOffset+1])
			w = 2
		}
		s.rdOffset += w
		s.ch = r
	} else {
		if unicodeid.IsLineTerminator(s.ch) {
			s.file.AddLine(len(s.src))
		}
		s.offset = len(s.src)
		s.ch = eof
	}
}

// peekAt returns the code unit n positions past the current read offset
// without advancing the scanner, or eof past the end of the source.
// peekAt does not attempt surrogate combination; callers needing that
// decode the pair explicitly (see scanUnicodeEscapeBody).
func (s *Scanner) peekAt(n int) rune {
	idx := s.rdOffset + n
	if idx < 0 || idx >= len(s.src) {
		return eof
	}
	return rune(s.src[idx])
}

func (s *Scanner) peek() rune { return s.peekAt(0) }

// newToken builds a Token spanning [tokenStart, offset), stamping the
// preceding-line-break flag and, when requested, the raw source slice.
func (s *Scanner) newToken(kind token.Kind) Token {
	tok := Token{Kind: kind, Pos: s.file.Pos(s.tokenStart), End: s.file.Pos(s.offset)}
	if s.precedingLineBreak {
		tok.Flags |= FlagPrecedingLineBreak
	}
	if s.opts.Raw {
		tok.Raw = s.sliceString(s.tokenStart, s.offset)
	}
	return tok
}

func (s *Scanner) sliceString(start, end int) string {
	return string(utf16.Decode(s.src[start:end]))
}

// Scan consumes whitespace, line terminators, and comments, then classifies
// and returns exactly one token. ctx must be constant for the duration of
// this call; AllowRegExp and InTemplate are the two bits callers typically
// vary between calls.
func (s *Scanner) Scan(ctx Context) Token {
	s.precedingLineBreak = false

	for {
		s.tokenStart = s.offset
		ch := s.ch

		switch {
		case ch == eof:
			return s.newToken(token.EOF)
		case ch == '\r':
			s.precedingLineBreak = true
			s.next()
			if s.ch == '\n' {
				s.next()
			}
			continue
		case ch == '\n' || ch == ' ' || ch == ' ':
			s.precedingLineBreak = true
			s.next()
			continue
		case ch < 128 && asciiIsSpace[ch]:
			s.next()
			continue
		case ch >= 128 && unicodeid.IsWhiteSpace(ch):
			s.next()
			continue
		}

		if ch < 128 {
			if tok, ok := s.scanASCII(ctx, ch); ok {
				return tok
			}
			continue
		}

		if unicodeid.IsIDStart(ch) {
			return s.scanIdentifier(ctx)
		}

		s.errorAt(s.tokenStart, InvalidCharacter, "invalid character %q", ch)
		s.next()
		return s.newToken(token.ILLEGAL)
	}
}

// asciiIsSpace classifies the ASCII horizontal whitespace handled uniformly
// with the non-ASCII Zs/NBSP/BOM cases in Scan above.
var asciiIsSpace [128]bool

func init() {
	for _, c := range []rune{'\t', '\v', '\f', ' '} {
		asciiIsSpace[c] = true
	}
}

// scanASCII dispatches on a single ASCII code unit already known not to be
// whitespace or a line terminator. ok is false when the unit started a
// comment that was fully consumed, signalling the caller to keep looping.
func (s *Scanner) scanASCII(ctx Context, ch rune) (Token, bool) {
	switch {
	case ch == '_' || ch == '$' || isASCIILetter(ch):
		return s.scanIdentifier(ctx), true
	case ch == '\\':
		return s.scanIdentifier(ctx), true
	case ch == '#':
		return s.scanPrivateIdentifier(ctx)
	case ch >= '1' && ch <= '9':
		return s.scanNumber(ctx), true
	case ch == '0':
		return s.scanNumber(ctx), true
	case ch == '\'' || ch == '"':
		return s.scanString(ctx), true
	case ch == '`':
		return s.scanTemplate(ctx), true
	}

	switch ch {
	case '{':
		s.next()
		return s.newToken(token.LBRACE), true
	case '}':
		s.next()
		return s.newToken(token.RBRACE), true
	case '(':
		s.next()
		return s.newToken(token.LPAREN), true
	case ')':
		s.next()
		return s.newToken(token.RPAREN), true
	case '[':
		s.next()
		return s.newToken(token.LBRACKET), true
	case ']':
		s.next()
		return s.newToken(token.RBRACKET), true
	case ';':
		s.next()
		return s.newToken(token.SEMICOLON), true
	case ',':
		s.next()
		return s.newToken(token.COMMA), true
	case ':':
		s.next()
		return s.newToken(token.COLON), true
	case '~':
		s.next()
		return s.newToken(token.BIT_NOT), true
	case '.':
		return s.period(ctx)
	case '<':
		return s.lessThan(ctx)
	case '>':
		return s.greaterThan(ctx)
	case '-':
		return s.subtract(ctx)
	case '+':
		return s.add(ctx)
	case '*':
		return s.multiply(ctx)
	case '/':
		return s.divide(ctx)
	case '%':
		return s.modulo(ctx)
	case '^':
		return s.bitXor(ctx)
	case '&':
		return s.bitAnd(ctx)
	case '|':
		return s.bitOr(ctx)
	case '=':
		return s.assign(ctx)
	case '!':
		return s.negate(ctx)
	case '?':
		return s.questionMark(ctx)
	}

	s.errorAt(s.tokenStart, InvalidCharacter, "invalid character %q", ch)
	s.next()
	return s.newToken(token.ILLEGAL), true
}

func isASCIILetter(c rune) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }

func (s *Scanner) period(ctx Context) (Token, bool) {
	if isDecimalDigit(s.peek()) {
		return s.scanNumberFromDot(), true
	}
	if s.peek() == '.' && s.peekAt(1) == '.' {
		s.next()
		s.next()
		s.next()
		return s.newToken(token.ELLIPSIS), true
	}
	s.next()
	return s.newToken(token.PERIOD), true
}

func (s *Scanner) lessThan(ctx Context) (Token, bool) {
	start := s.tokenStart
	if ctx&Module == 0 && s.peek() == '!' && s.peekAt(1) == '-' && s.peekAt(2) == '-' {
		if ctx&DisableWebCompat != 0 {
			s.errorAt(start, HtmlCommentInWebCompat, "HTML comments require web compatibility mode")
		} else {
			s.next()
			s.next()
			s.next()
			s.next()
			s.skipLineComment()
			return Token{}, false
		}
	}
	s.next() // consume '<'
	switch s.ch {
	case '<':
		s.next()
		if s.ch == '=' {
			s.next()
			return s.newToken(token.LESS_LESS_EQUAL), true
		}
		return s.newToken(token.LESS_LESS), true
	case '=':
		s.next()
		return s.newToken(token.LESS_EQUAL), true
	}
	return s.newToken(token.LESS), true
}

func (s *Scanner) greaterThan(ctx Context) (Token, bool) {
	s.next() // consume '>'
	if s.ch != '>' {
		if s.ch == '=' {
			s.next()
			return s.newToken(token.GREATER_EQUAL), true
		}
		return s.newToken(token.GREATER), true
	}
	s.next() // consume second '>'
	if s.ch != '>' {
		if s.ch == '=' {
			s.next()
			return s.newToken(token.GREATER_GREATER_EQUAL), true
		}
		return s.newToken(token.GREATER_GREATER), true
	}
	s.next() // consume third '>'
	if s.ch == '=' {
		s.next()
		return s.newToken(token.GREATER_GREATER_GREATER_EQUAL), true
	}
	return s.newToken(token.GREATER_GREATER_GREATER), true
}

func (s *Scanner) subtract(ctx Context) (Token, bool) {
	start := s.tokenStart
	atLineStart := s.precedingLineBreak || start == 0
	s.next() // consume first '-'
	if s.ch == '-' {
		if ctx&Module == 0 && s.peek() == '>' && atLineStart {
			if ctx&DisableWebCompat != 0 {
				s.errorAt(start, HtmlCommentInWebCompat, "HTML comments require web compatibility mode")
			} else {
				s.next()
				s.next()
				s.skipLineComment()
				return Token{}, false
			}
		}
		s.next()
		return s.newToken(token.DECREMENT), true
	}
	if s.ch == '=' {
		s.next()
		return s.newToken(token.SUBTRACT_EQUAL), true
	}
	return s.newToken(token.SUBTRACT), true
}

func (s *Scanner) add(ctx Context) (Token, bool) {
	s.next()
	switch s.ch {
	case '+':
		s.next()
		return s.newToken(token.INCREMENT), true
	case '=':
		s.next()
		return s.newToken(token.ADD_EQUAL), true
	}
	return s.newToken(token.ADD), true
}

func (s *Scanner) multiply(ctx Context) (Token, bool) {
	s.next()
	if s.ch == '*' {
		s.next()
		if s.ch == '=' {
			s.next()
			return s.newToken(token.EXPONENT_EQUAL), true
		}
		return s.newToken(token.EXPONENT), true
	}
	if s.ch == '=' {
		s.next()
		return s.newToken(token.MULTIPLY_EQUAL), true
	}
	return s.newToken(token.MULTIPLY), true
}

func (s *Scanner) divide(ctx Context) (Token, bool) {
	if s.peek() == '/' {
		s.next()
		s.next()
		s.skipLineComment()
		return Token{}, false
	}
	if s.peek() == '*' {
		s.next()
		s.next()
		crossed := s.skipBlockComment()
		if crossed {
			s.precedingLineBreak = true
		}
		return Token{}, false
	}
	if ctx&AllowRegExp != 0 {
		return s.scanRegexp(ctx), true
	}
	s.next()
	if s.ch == '=' {
		s.next()
		return s.newToken(token.DIVIDE_EQUAL), true
	}
	return s.newToken(token.DIVIDE), true
}

func (s *Scanner) modulo(ctx Context) (Token, bool) {
	s.next()
	if s.ch == '=' {
		s.next()
		return s.newToken(token.MODULO_EQUAL), true
	}
	return s.newToken(token.MODULO), true
}

func (s *Scanner) bitXor(ctx Context) (Token, bool) {
	s.next()
	if s.ch == '=' {
		s.next()
		return s.newToken(token.BIT_XOR_EQUAL), true
	}
	return s.newToken(token.BIT_XOR), true
}

func (s *Scanner) bitAnd(ctx Context) (Token, bool) {
	s.next()
	if s.ch == '&' {
		s.next()
		if s.ch == '=' {
			s.next()
			return s.newToken(token.LOGICAL_AND_EQUAL), true
		}
		return s.newToken(token.LOGICAL_AND), true
	}
	if s.ch == '=' {
		s.next()
		return s.newToken(token.BIT_AND_EQUAL), true
	}
	return s.newToken(token.BIT_AND), true
}

func (s *Scanner) bitOr(ctx Context) (Token, bool) {
	s.next()
	if s.ch == '|' {
		s.next()
		if s.ch == '=' {
			s.next()
			return s.newToken(token.LOGICAL_OR_EQUAL), true
		}
		return s.newToken(token.LOGICAL_OR), true
	}
	if s.ch == '=' {
		s.next()
		return s.newToken(token.BIT_OR_EQUAL), true
	}
	return s.newToken(token.BIT_OR), true
}

func (s *Scanner) assign(ctx Context) (Token, bool) {
	s.next()
	if s.ch == '=' {
		s.next()
		if s.ch == '=' {
			s.next()
			return s.newToken(token.EQUAL_EQUAL_EQUAL), true
		}
		return s.newToken(token.EQUAL_EQUAL), true
	}
	if s.ch == '>' {
		s.next()
		return s.newToken(token.ARROW), true
	}
	return s.newToken(token.ASSIGN), true
}

func (s *Scanner) negate(ctx Context) (Token, bool) {
	s.next()
	if s.ch == '=' {
		s.next()
		if s.ch == '=' {
			s.next()
			return s.newToken(token.NOT_EQUAL_EQUAL), true
		}
		return s.newToken(token.NOT_EQUAL), true
	}
	return s.newToken(token.NOT), true
}

func (s *Scanner) questionMark(ctx Context) (Token, bool) {
	start := s.tokenStart
	if ctx&Next != 0 {
		if s.peek() == '?' {
			s.next()
			s.next()
			if s.ch == '=' {
				s.next()
				return s.newToken(token.QUESTION_QUESTION_EQUAL), true
			}
			return s.newToken(token.QUESTION_QUESTION), true
		}
		if s.peek() == '.' {
			if isDecimalDigit(s.peekAt(1)) {
				if ctx&SpecDeviation != 0 {
					s.errorAt(start, UnexpectedToken, "optional chaining cannot be followed by a decimal digit")
				}
				// back off: "?" is returned alone and ".digits" is scanned
				// next as one numeric literal, so "a?.3:1" stays a valid
				// ternary expression.
			} else {
				s.next()
				s.next()
				return s.newToken(token.QUESTION_DOT), true
			}
		}
	}
	s.next()
	return s.newToken(token.QUESTION), true
}
