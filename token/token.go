// Package token defines the token kinds produced by package scanner and a
// parallel attribute table the downstream parser consults instead of a
// secondary switch: assignment-ness, unary-ness, and binary-operator
// precedence are one array lookup away from a Kind, while keyword-ness and
// strict-mode reservation are range comparisons over the Kind enumeration.
package token

import "strconv"

// Kind identifies the lexical class of a token.
type Kind int

// The list of token kinds. Sentinel values (*_beg, *_end) bracket each
// contiguous class so membership tests are range comparisons; the attrs
// table additionally exposes precedence and assignment-ness without a
// second switch.
const (
	ILLEGAL Kind = iota
	EOF
	COMMENT

	literal_beg
	IDENTIFIER
	PRIVATE_IDENTIFIER
	ESCAPED_RESERVED        // an identifier escape that cooks to a reserved word
	ESCAPED_FUTURE_RESERVED // ...to a strict-mode-only reserved word
	NUMERIC
	BIGINT
	STRING
	NOSUBSTITUTION_TEMPLATE
	TEMPLATE_HEAD
	TEMPLATE_MIDDLE
	TEMPLATE_TAIL
	REGEXP
	literal_end

	punct_beg
	LBRACE
	RBRACE
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	PERIOD
	ELLIPSIS
	SEMICOLON
	COMMA
	QUESTION
	QUESTION_DOT
	COLON
	ARROW

	binop_beg
	LESS
	LESS_EQUAL
	LESS_LESS
	GREATER
	GREATER_EQUAL
	GREATER_GREATER
	GREATER_GREATER_GREATER
	EQUAL_EQUAL
	EQUAL_EQUAL_EQUAL
	NOT_EQUAL
	NOT_EQUAL_EQUAL
	ADD
	SUBTRACT
	MULTIPLY
	DIVIDE
	MODULO
	EXPONENT
	BIT_AND
	BIT_OR
	BIT_XOR
	LOGICAL_AND
	LOGICAL_OR
	QUESTION_QUESTION
	IN
	INSTANCEOF
	binop_end

	unary_only_beg
	NOT
	BIT_NOT
	INCREMENT
	DECREMENT
	unary_only_end

	assign_beg
	ASSIGN
	ADD_EQUAL
	SUBTRACT_EQUAL
	MULTIPLY_EQUAL
	DIVIDE_EQUAL
	MODULO_EQUAL
	EXPONENT_EQUAL
	LESS_LESS_EQUAL
	GREATER_GREATER_EQUAL
	GREATER_GREATER_GREATER_EQUAL
	BIT_AND_EQUAL
	BIT_OR_EQUAL
	BIT_XOR_EQUAL
	LOGICAL_AND_EQUAL
	LOGICAL_OR_EQUAL
	QUESTION_QUESTION_EQUAL
	assign_end
	punct_end

	keyword_beg
	BREAK
	CASE
	CATCH
	CLASS
	CONST
	CONTINUE
	DEBUGGER
	DEFAULT
	DELETE
	DO
	ELSE
	ENUM
	EXPORT
	EXTENDS
	FALSE
	FINALLY
	FOR
	FUNCTION
	IF
	IMPORT
	NEW
	NULL
	RETURN
	SUPER
	SWITCH
	THIS
	THROW
	TRUE
	TRY
	TYPEOF
	VAR
	VOID
	WHILE
	WITH
	keyword_end

	strict_reserved_beg
	IMPLEMENTS
	INTERFACE
	PACKAGE
	PRIVATE
	PROTECTED
	PUBLIC
	LET
	YIELD
	strict_reserved_end

	contextual_beg
	STATIC
	ASYNC
	AWAIT
	OF
	AS
	FROM
	GET
	SET
	TARGET
	META
	ACCESSOR
	contextual_end

	count
)

// attr is a bitset of per-Kind attributes, plus an embedded 4-bit
// precedence stored from bit precShift upward, so the parser never needs a
// secondary table indexed by Kind: `tok.Precedence()` is one array lookup.
type attr uint16

const (
	attrAssign attr = 1 << iota
	attrBinOp
	attrUnary
	precShift = 8
)

var attrs [count]attr

func setPrec(k Kind, prec int) {
	attrs[k] |= attrBinOp | attr(prec)<<precShift
}

func init() {
	for k := assign_beg + 1; k < assign_end; k++ {
		attrs[k] |= attrAssign
	}
	for k := unary_only_beg + 1; k < unary_only_end; k++ {
		attrs[k] |= attrUnary
	}
	attrs[NOT] |= attrUnary
	attrs[BIT_NOT] |= attrUnary
	attrs[DELETE] |= attrUnary
	attrs[TYPEOF] |= attrUnary
	attrs[VOID] |= attrUnary

	// ECMAScript binary-expression precedence bands; higher binds tighter.
	setPrec(LOGICAL_OR, 3)
	setPrec(QUESTION_QUESTION, 3)
	setPrec(LOGICAL_AND, 4)
	setPrec(BIT_OR, 6)
	setPrec(BIT_XOR, 7)
	setPrec(BIT_AND, 8)
	setPrec(EQUAL_EQUAL, 9)
	setPrec(EQUAL_EQUAL_EQUAL, 9)
	setPrec(NOT_EQUAL, 9)
	setPrec(NOT_EQUAL_EQUAL, 9)
	setPrec(LESS, 10)
	setPrec(LESS_EQUAL, 10)
	setPrec(GREATER, 10)
	setPrec(GREATER_EQUAL, 10)
	setPrec(IN, 10)
	setPrec(INSTANCEOF, 10)
	setPrec(LESS_LESS, 11)
	setPrec(GREATER_GREATER, 11)
	setPrec(GREATER_GREATER_GREATER, 11)
	setPrec(ADD, 12)
	setPrec(SUBTRACT, 12)
	setPrec(MULTIPLY, 13)
	setPrec(DIVIDE, 13)
	setPrec(MODULO, 13)
	setPrec(EXPONENT, 14)
}

// Precedence returns tok's binary-operator precedence, or 0 if tok is not a
// binary operator. Higher binds tighter.
func (tok Kind) Precedence() int {
	if attrs[tok]&attrBinOp == 0 {
		return 0
	}
	return int(attrs[tok] >> precShift)
}

func (tok Kind) IsAssign() bool   { return attrs[tok]&attrAssign != 0 }
func (tok Kind) IsBinaryOp() bool { return attrs[tok]&attrBinOp != 0 }
func (tok Kind) IsUnaryOp() bool  { return attrs[tok]&attrUnary != 0 }

// IsLiteral reports whether tok is an identifier or literal form.
func (tok Kind) IsLiteral() bool { return literal_beg < tok && tok < literal_end }

// IsPunctuator reports whether tok is a punctuator or operator.
func (tok Kind) IsPunctuator() bool { return punct_beg < tok && tok < punct_end }

// IsTemplatePart reports whether tok delimits a piece of a template literal.
func (tok Kind) IsTemplatePart() bool {
	return tok == NOSUBSTITUTION_TEMPLATE || tok == TEMPLATE_HEAD || tok == TEMPLATE_MIDDLE || tok == TEMPLATE_TAIL
}

// alwaysReserved holds the handful of every-mode reserved words that live
// outside the contiguous keyword_beg/keyword_end range because they are
// also binary operators ("in", "instanceof") and need a precedence entry.
var alwaysReserved = map[Kind]bool{IN: true, INSTANCEOF: true}

// IsKeyword reports whether tok is reserved in every mode.
func (tok Kind) IsKeyword() bool {
	return (keyword_beg < tok && tok < keyword_end) || alwaysReserved[tok]
}

// IsStrictReserved reports whether tok is reserved only under strict mode.
func (tok Kind) IsStrictReserved() bool {
	return strict_reserved_beg < tok && tok < strict_reserved_end
}

// IsContextualKeyword reports whether tok is a contextual keyword - an
// identifier everywhere except a handful of grammar positions the parser
// recognizes (e.g. "async", "of", "get"/"set" accessor names).
func (tok Kind) IsContextualKeyword() bool {
	return contextual_beg < tok && tok < contextual_end
}

// IsIdentifierName reports whether tok may appear as an IdentifierName in
// non-binding positions (property keys, labels): any keyword class plus
// IDENTIFIER itself.
func (tok Kind) IsIdentifierName() bool {
	return tok == IDENTIFIER || tok.IsKeyword() || tok.IsStrictReserved() || tok.IsContextualKeyword()
}

var names = [count]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF", COMMENT: "COMMENT",

	IDENTIFIER: "Identifier", PRIVATE_IDENTIFIER: "PrivateIdentifier",
	ESCAPED_RESERVED: "EscapedReserved", ESCAPED_FUTURE_RESERVED: "EscapedFutureReserved",
	NUMERIC: "NumericLiteral", BIGINT: "BigIntLiteral", STRING: "StringLiteral",
	NOSUBSTITUTION_TEMPLATE: "NoSubstitutionTemplate", TEMPLATE_HEAD: "TemplateHead",
	TEMPLATE_MIDDLE: "TemplateMiddle", TEMPLATE_TAIL: "TemplateTail", REGEXP: "RegularExpression",

	LBRACE: "{", RBRACE: "}", LPAREN: "(", RPAREN: ")", LBRACKET: "[", RBRACKET: "]",
	PERIOD: ".", ELLIPSIS: "...", SEMICOLON: ";", COMMA: ",", QUESTION: "?",
	QUESTION_DOT: "?.", COLON: ":", ARROW: "=>",

	LESS: "<", LESS_EQUAL: "<=", LESS_LESS: "<<", LESS_LESS_EQUAL: "<<=",
	GREATER: ">", GREATER_EQUAL: ">=", GREATER_GREATER: ">>", GREATER_GREATER_EQUAL: ">>=",
	GREATER_GREATER_GREATER: ">>>", GREATER_GREATER_GREATER_EQUAL: ">>>=",

	ASSIGN: "=", EQUAL_EQUAL: "==", EQUAL_EQUAL_EQUAL: "===",
	NOT: "!", NOT_EQUAL: "!=", NOT_EQUAL_EQUAL: "!==",

	ADD: "+", ADD_EQUAL: "+=", INCREMENT: "++",
	SUBTRACT: "-", SUBTRACT_EQUAL: "-=", DECREMENT: "--",
	MULTIPLY: "*", MULTIPLY_EQUAL: "*=", EXPONENT: "**", EXPONENT_EQUAL: "**=",
	DIVIDE: "/", DIVIDE_EQUAL: "/=", MODULO: "%", MODULO_EQUAL: "%=",

	BIT_AND: "&", BIT_AND_EQUAL: "&=", BIT_OR: "|", BIT_OR_EQUAL: "|=",
	BIT_XOR: "^", BIT_XOR_EQUAL: "^=", BIT_NOT: "~",
	LOGICAL_AND: "&&", LOGICAL_AND_EQUAL: "&&=", LOGICAL_OR: "||", LOGICAL_OR_EQUAL: "||=",
	QUESTION_QUESTION: "??", QUESTION_QUESTION_EQUAL: "??=",
	IN: "in", INSTANCEOF: "instanceof",

	BREAK: "break", CASE: "case", CATCH: "catch", CLASS: "class", CONST: "const",
	CONTINUE: "continue", DEBUGGER: "debugger", DEFAULT: "default", DELETE: "delete",
	DO: "do", ELSE: "else", ENUM: "enum", EXPORT: "export", EXTENDS: "extends",
	FALSE: "false", FINALLY: "finally", FOR: "for", FUNCTION: "function", IF: "if",
	IMPORT: "import", NEW: "new", NULL: "null",
	RETURN: "return", SUPER: "super", SWITCH: "switch", THIS: "this", THROW: "throw",
	TRUE: "true", TRY: "try", TYPEOF: "typeof", VAR: "var", VOID: "void",
	WHILE: "while", WITH: "with",

	IMPLEMENTS: "implements", INTERFACE: "interface", PACKAGE: "package",
	PRIVATE: "private", PROTECTED: "protected", PUBLIC: "public",
	LET: "let", YIELD: "yield",

	STATIC: "static", ASYNC: "async", AWAIT: "await", OF: "of", AS: "as", FROM: "from",
	GET: "get", SET: "set", TARGET: "target", META: "meta", ACCESSOR: "accessor",
}

// String renders the token's canonical spelling for operators, punctuators,
// and keywords, and a descriptive name otherwise.
func (tok Kind) String() string {
	if 0 <= tok && tok < count && names[tok] != "" {
		return names[tok]
	}
	return "token(" + strconv.Itoa(int(tok)) + ")"
}

var keywords map[string]Kind

func init() {
	keywords = make(map[string]Kind, int(keyword_end-keyword_beg)+int(strict_reserved_end-strict_reserved_beg)+int(contextual_end-contextual_beg))
	for k := keyword_beg + 1; k < keyword_end; k++ {
		keywords[names[k]] = k
	}
	for k := strict_reserved_beg + 1; k < strict_reserved_end; k++ {
		keywords[names[k]] = k
	}
	for k := contextual_beg + 1; k < contextual_end; k++ {
		keywords[names[k]] = k
	}
	keywords[names[IN]] = IN
	keywords[names[INSTANCEOF]] = INSTANCEOF
}

// Lookup maps a cooked identifier spelling to its keyword/contextual-keyword
// Kind, or IDENTIFIER if name is not reserved. Legality of strict-reserved
// words in a given mode is the parser's concern, not the scanner's: Lookup
// always returns the reserved Kind when the spelling matches one.
func Lookup(name string) Kind {
	if k, ok := keywords[name]; ok {
		return k
	}
	return IDENTIFIER
}
