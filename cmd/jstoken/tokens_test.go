package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/langyo/meriyah/scanner"
)

func TestDumpTokensBasic(t *testing.T) {
	var out strings.Builder
	diags, err := dumpTokens("t.js", "let x = 1;", scanner.Options{}, &out)
	require.NoError(t, err)
	require.Empty(t, diags)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	require.Contains(t, lines[0], "let")
	require.Contains(t, lines[1], "Identifier")
	require.Contains(t, lines[3], "NumericLiteral")
}

func TestDumpTokensRegExpContext(t *testing.T) {
	// After '=' a '/' starts a regular expression; after an identifier it is
	// division.
	var out strings.Builder
	_, err := dumpTokens("t.js", "a = /b/g; c / d", scanner.Options{}, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "RegularExpression")
	require.Contains(t, out.String(), "\t/\t")
}

func TestDumpTokensTemplateReentry(t *testing.T) {
	var out strings.Builder
	diags, err := dumpTokens("t.js", "`a ${ {b: 1} } c`", scanner.Options{}, &out)
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Contains(t, out.String(), "TemplateHead")
	require.Contains(t, out.String(), "TemplateTail")
}

func TestDumpTokensReportsDiagnostics(t *testing.T) {
	var out strings.Builder
	diags, err := dumpTokens("t.js", `"open`, scanner.Options{}, &out)
	require.NoError(t, err)
	require.Len(t, diags, 1)
}

func TestLoadConfigDefaultsWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })

	cfg, err := LoadConfig()
	require.NoError(t, err)
	opts := cfg.Options()
	require.False(t, opts.DisableWebCompat)
	require.False(t, opts.Module)
}

func TestLoadConfigReadsYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("module: true\nnext: true\nwebcompat: false\n"), 0o644))

	configFile = path
	t.Cleanup(func() { configFile = "" })

	cfg, err := LoadConfig()
	require.NoError(t, err)
	opts := cfg.Options()
	require.True(t, opts.Module)
	require.True(t, opts.Next)
	require.True(t, opts.DisableWebCompat)
}

func TestLoadConfigExplicitMissingFileErrors(t *testing.T) {
	configFile = filepath.Join(t.TempDir(), "nope.yaml")
	t.Cleanup(func() { configFile = "" })

	_, err := LoadConfig()
	require.Error(t, err)
}
