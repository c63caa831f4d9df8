package scanner

import (
	"fmt"

	"github.com/langyo/meriyah/token"
)

// DiagnosticKind is the closed set of lexical error kinds the scanner can
// emit.
type DiagnosticKind int

const (
	_ DiagnosticKind = iota
	UnterminatedString
	UnterminatedRegExp
	UnterminatedComment
	UnterminatedTemplate
	InvalidCharacter
	InvalidSMPCharacter
	InvalidUnicodeEscape
	InvalidCodePoint
	InvalidHexEscape
	StrictOctalLiteral
	StrictOctalEscape
	DuplicateRegExpFlag
	UnexpectedTokenRegExpFlag
	HtmlCommentInWebCompat
	IdentifierAfterNumericLiteral
	ContinuousNumericSeparator
	TrailingNumericSeparator
	InvalidBigInt
	ExpectedHexDigits
	UnexpectedToken
)

var diagnosticNames = map[DiagnosticKind]string{
	UnterminatedString:             "UnterminatedString",
	UnterminatedRegExp:             "UnterminatedRegExp",
	UnterminatedComment:            "UnterminatedComment",
	UnterminatedTemplate:           "UnterminatedTemplate",
	InvalidCharacter:               "InvalidCharacter",
	InvalidSMPCharacter:            "InvalidSMPCharacter",
	InvalidUnicodeEscape:           "InvalidUnicodeEscape",
	InvalidCodePoint:               "InvalidCodePoint",
	InvalidHexEscape:               "InvalidHexEscape",
	StrictOctalLiteral:             "StrictOctalLiteral",
	StrictOctalEscape:              "StrictOctalEscape",
	DuplicateRegExpFlag:            "DuplicateRegExpFlag",
	UnexpectedTokenRegExpFlag:      "UnexpectedTokenRegExpFlag",
	HtmlCommentInWebCompat:         "HtmlCommentInWebCompat",
	IdentifierAfterNumericLiteral:  "IdentifierAfterNumericLiteral",
	ContinuousNumericSeparator:     "ContinuousNumericSeparator",
	TrailingNumericSeparator:       "TrailingNumericSeparator",
	InvalidBigInt:                  "InvalidBigInt",
	ExpectedHexDigits:              "ExpectedHexDigits",
	UnexpectedToken:                "UnexpectedToken",
}

func (k DiagnosticKind) String() string {
	if s, ok := diagnosticNames[k]; ok {
		return s
	}
	return "UnknownDiagnostic"
}

// Severity distinguishes recoverable lexical errors from fatal ones that
// the parser should treat as terminal.
type Severity int

const (
	SeverityError Severity = iota
	SeverityFatal
)

// Diagnostic is one emission from the scanner: a closed error kind, a
// severity, the offending position, and an already-formatted message.
type Diagnostic struct {
	Kind     DiagnosticKind
	Severity Severity
	Pos      token.Pos
	Message  string
}

// ErrorHandler may be installed on a Scanner; if set, it is invoked for
// every diagnostic in addition to the diagnostic being appended to
// Scanner.Diagnostics.
type ErrorHandler func(pos token.Position, msg string)

func (s *Scanner) error(offs int, kind DiagnosticKind, severity Severity, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	pos := s.file.Pos(offs)
	s.Diagnostics = append(s.Diagnostics, Diagnostic{Kind: kind, Severity: severity, Pos: pos, Message: msg})
	s.ErrorCount++
	if s.err != nil {
		s.err(s.file.Position(pos), msg)
	}
}

func (s *Scanner) errorAt(offs int, kind DiagnosticKind, format string, args ...any) {
	s.error(offs, kind, SeverityError, format, args...)
}

func (s *Scanner) fatalAt(offs int, kind DiagnosticKind, format string, args ...any) {
	s.error(offs, kind, SeverityFatal, format, args...)
}
