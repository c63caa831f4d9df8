package scanner

// Context is the bitset the caller supplies on every Scan call. Only the
// bits that affect lexing are read; scope masks are the downstream parser's
// concern and are not part of Context (see ScopeMask).
type Context uint32

const (
	// Strict enables strict-mode lexical rules: legacy octal literals and
	// escapes become errors, and "\8"/"\9" are rejected whether or not
	// web-compat is enabled.
	Strict Context = 1 << iota
	// Module selects module grammar: HTML-style comments are never
	// recognized, regardless of web-compat mode.
	Module
	// AllowRegExp is set by the caller immediately after a token from which
	// a '/' can only begin a RegularExpression, never a division operator
	// (e.g. after '(', ',', 'return', an operator, or at statement start).
	AllowRegExp
	// Next enables stage-3 proposal tokens: "?." and "??".
	Next
	// Raw requests that Token.Raw be populated with the exact source slice
	// backing the token.
	Raw
	// DisableWebCompat turns off Annex B web-compatibility allowances:
	// HTML comments become HtmlCommentInWebCompat, and "\8"/"\9" in
	// non-strict strings are rejected instead of tolerated.
	DisableWebCompat
	// InTemplate marks that the scanner is resuming inside a template
	// literal body; callers use ScanTemplateTail instead of Scan when this
	// applies, and the scanner itself never reads this bit.
	InTemplate
	// SpecDeviation flips the two documented Open Question behaviors:
	// "?.3" is reported as an UnexpectedToken error (the tokens are still
	// "?" followed by the numeric literal ".3"), and web-compat's "\8"/"\9"
	// tolerance is suppressed even when DisableWebCompat is not set.
	SpecDeviation
)

// ScopeMask names parser-owned scope bits (e.g. "in generator body", "in
// async function"). The scanner never inspects them, and no Scanner method
// takes or returns a ScopeMask.
type ScopeMask uint32

// Options configures a Scanner for the lifetime of a parse; unlike
// Context, these never change between Scan calls.
type Options struct {
	Module           bool // module vs script grammar
	Next             bool // stage-3 proposal tokens
	Raw              bool // attach raw slices to tokens
	DisableWebCompat bool // turn off Annex B extensions, which are on by default in script mode
	SpecDeviation    bool // see Context.SpecDeviation
	ImpliedStrict    bool
	GlobalReturn     bool
	JSX              bool
	Directives       bool
	Loc              bool
	Ranges           bool
}

// BaseContext derives the constant-for-the-parse portion of Context from
// Options. AllowRegExp and InTemplate are per-call and are ORed in by the
// caller on top of this.
func (o Options) BaseContext() Context {
	var c Context
	if o.Module {
		c |= Module
	}
	if o.Next {
		c |= Next
	}
	if o.Raw {
		c |= Raw
	}
	if o.DisableWebCompat {
		c |= DisableWebCompat
	}
	if o.SpecDeviation {
		c |= SpecDeviation
	}
	if o.ImpliedStrict {
		c |= Strict
	}
	return c
}
