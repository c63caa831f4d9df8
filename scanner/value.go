package scanner

import "github.com/langyo/meriyah/token"

// TokenFlags carries boolean facts about a Token that are too rare to
// justify their own Token field.
type TokenFlags uint16

const (
	// FlagPrecedingLineBreak marks that a LineTerminator lay between the
	// previous token's end and this token's start; the syntactic parser
	// consults this for automatic semicolon insertion.
	FlagPrecedingLineBreak TokenFlags = 1 << iota
	// FlagEscaped marks an identifier that contained at least one \u
	// escape, even if its cooked spelling matches a plain identifier.
	FlagEscaped
	// FlagOctal marks a legacy octal numeric literal or a legacy octal
	// string escape, both of which are errors under strict mode.
	FlagOctal
	// FlagTemplateCookedInvalid marks a template part whose escapes could
	// not be cooked; Value is empty and Raw (if requested) is the only
	// usable representation. Legality is a tagged/untagged-template
	// decision the syntactic parser makes, not the scanner.
	FlagTemplateCookedInvalid
)

// RegexpValue holds the delimited body and flags of a regular expression
// literal; the scanner delimits but does not validate the pattern against
// the chosen flags. Validation is the parser's call, typically by handing
// the pattern to the host regexp engine.
type RegexpValue struct {
	Pattern string
	Flags   string
}

// Token is one classified lexical unit.
type Token struct {
	Kind   token.Kind
	Pos    token.Pos
	End    token.Pos
	Value  string // cooked string: identifier name, string/template contents
	Number float64
	BigInt string // raw digit string for a BigIntLiteral; parsing is the parser's concern
	Raw    string // populated only when Options.Raw is set
	Regexp *RegexpValue
	Flags  TokenFlags
}

func (t Token) PrecedingLineBreak() bool { return t.Flags&FlagPrecedingLineBreak != 0 }
func (t Token) Escaped() bool            { return t.Flags&FlagEscaped != 0 }
func (t Token) Octal() bool              { return t.Flags&FlagOctal != 0 }
func (t Token) TemplateCookedInvalid() bool {
	return t.Flags&FlagTemplateCookedInvalid != 0
}
