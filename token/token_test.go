package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"break", BREAK},
		{"instanceof", INSTANCEOF},
		{"in", IN},
		{"let", LET},
		{"async", ASYNC},
		{"of", OF},
		{"foobar", IDENTIFIER},
		{"Func", IDENTIFIER},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, Lookup(test.name))
		})
	}
}

func TestIsLiteral(t *testing.T) {
	require.True(t, NUMERIC.IsLiteral())
	require.True(t, IDENTIFIER.IsLiteral())
	require.False(t, MULTIPLY.IsLiteral())
	require.False(t, TRUE.IsLiteral())
}

func TestIsPunctuator(t *testing.T) {
	require.False(t, NUMERIC.IsPunctuator())
	require.True(t, MULTIPLY.IsPunctuator())
	require.True(t, ASSIGN.IsPunctuator())
	require.False(t, TRUE.IsPunctuator())
}

func TestIsKeyword(t *testing.T) {
	require.False(t, NUMERIC.IsKeyword())
	require.False(t, MULTIPLY.IsKeyword())
	require.True(t, TRUE.IsKeyword())
	require.True(t, IN.IsKeyword())
	require.True(t, INSTANCEOF.IsKeyword())
	require.False(t, LET.IsKeyword())
	require.False(t, ASYNC.IsKeyword())
}

func TestIsStrictReserved(t *testing.T) {
	require.True(t, LET.IsStrictReserved())
	require.True(t, YIELD.IsStrictReserved())
	require.False(t, VAR.IsStrictReserved())
	require.False(t, ASYNC.IsStrictReserved())
}

func TestIsContextualKeyword(t *testing.T) {
	require.True(t, ASYNC.IsContextualKeyword())
	require.True(t, OF.IsContextualKeyword())
	require.False(t, LET.IsContextualKeyword())
	require.False(t, IDENTIFIER.IsContextualKeyword())
}

func TestPrecedence(t *testing.T) {
	require.Equal(t, 0, IDENTIFIER.Precedence())
	require.Less(t, LOGICAL_OR.Precedence(), LOGICAL_AND.Precedence())
	require.Less(t, LOGICAL_AND.Precedence(), EQUAL_EQUAL.Precedence())
	require.Less(t, EQUAL_EQUAL.Precedence(), LESS.Precedence())
	require.Less(t, LESS.Precedence(), LESS_LESS.Precedence())
	require.Less(t, LESS_LESS.Precedence(), ADD.Precedence())
	require.Less(t, ADD.Precedence(), MULTIPLY.Precedence())
	require.Less(t, MULTIPLY.Precedence(), EXPONENT.Precedence())
	require.Equal(t, IN.Precedence(), LESS.Precedence())
	require.Equal(t, QUESTION_QUESTION.Precedence(), LOGICAL_OR.Precedence())
}

func TestIsAssign(t *testing.T) {
	require.True(t, ASSIGN.IsAssign())
	require.True(t, ADD_EQUAL.IsAssign())
	require.True(t, QUESTION_QUESTION_EQUAL.IsAssign())
	require.False(t, ADD.IsAssign())
}

func TestIsUnaryOp(t *testing.T) {
	require.True(t, NOT.IsUnaryOp())
	require.True(t, TYPEOF.IsUnaryOp())
	require.True(t, INCREMENT.IsUnaryOp())
	require.False(t, ADD.IsUnaryOp())
}

func TestString(t *testing.T) {
	require.Equal(t, "+", ADD.String())
	require.Equal(t, "instanceof", INSTANCEOF.String())
	require.Equal(t, "Identifier", IDENTIFIER.String())
	require.Contains(t, Kind(9999).String(), "token(")
}
