package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSetPosition(t *testing.T) {
	src := "ab\ncd\r\nef"
	fset := NewFileSet()
	f := fset.AddFile("in.js", fset.Base(), len(src))
	for i, c := range []byte(src) {
		if c == '\n' {
			f.AddLine(i + 1)
		}
	}

	pos := f.Pos(0)
	require.Equal(t, Position{Filename: "in.js", Offset: 0, Line: 1, Column: 0}, fset.Position(pos))

	pos = f.Pos(3) // 'c', first code unit of line 2
	require.Equal(t, 2, fset.Position(pos).Line)
	require.Equal(t, 0, fset.Position(pos).Column)

	pos = f.Pos(8) // 'f'
	got := fset.Position(pos)
	require.Equal(t, 3, got.Line)
}

func TestNoPos(t *testing.T) {
	require.False(t, NoPos.IsValid())
	require.False(t, Position{}.IsValid())
}

func TestFileSetMultipleFiles(t *testing.T) {
	fset := NewFileSet()
	a := fset.AddFile("a.js", fset.Base(), 5)
	b := fset.AddFile("b.js", fset.Base(), 3)

	require.Equal(t, "a.js", fset.Position(a.Pos(0)).Filename)
	require.Equal(t, "b.js", fset.Position(b.Pos(0)).Filename)
	require.NotEqual(t, a.Pos(0), b.Pos(0))
}
