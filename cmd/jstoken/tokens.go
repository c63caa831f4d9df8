package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/langyo/meriyah/scanner"
	"github.com/langyo/meriyah/token"
)

var (
	tokensCmd = &cobra.Command{
		Use:   "tokens <file>",
		Short: "Scan a JavaScript source file and print its token stream",
		Long:  "Scans the given file with the ECMAScript lexical scanner and prints one line per token: position, kind, and cooked value.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.StandardLogger()

			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("wrong number of arguments")
			}

			config, err := LoadConfig()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			diags, err := dumpTokens(args[0], string(data), config.Options(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if verbose {
				for _, d := range diags {
					logger.WithFields(logrus.Fields{
						"kind":     d.Kind.String(),
						"severity": d.Severity,
					}).Warn(d.Message)
				}
			}
			if len(diags) > 0 {
				return fmt.Errorf("%d lexical error(s) in %s", len(diags), args[0])
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(tokensCmd)
}

// dumpTokens drives the scanner over src and writes one line per token to
// out, returning the diagnostics collected along the way. It keeps the two
// pieces of lexical context a real parser would: whether a '/' may start a
// regular expression, and the template substitution depth that decides when
// a '}' re-enters template-body scanning.
func dumpTokens(name, src string, opts scanner.Options, out io.Writer) ([]scanner.Diagnostic, error) {
	fset := token.NewFileSet()
	units := scanner.EncodeSource(src)
	file := fset.AddFile(name, fset.Base(), len(units))
	s := scanner.New(file, units, nil, opts)

	base := opts.BaseContext()
	prev := token.ILLEGAL
	first := true

	// braceDepths[i] is the count of unmatched '{' inside the i-th open
	// template substitution; a '}' at count zero closes the substitution and
	// the next token is scanned in template-body mode.
	var braceDepths []int
	reenterTemplate := false

	for {
		ctx := base
		if first || regExpAllowedAfter(prev) {
			ctx |= scanner.AllowRegExp
		}
		first = false

		var tok scanner.Token
		if reenterTemplate {
			reenterTemplate = false
			tok = s.ScanTemplateTail(base)
		} else {
			tok = s.Scan(ctx)
		}

		switch tok.Kind {
		case token.TEMPLATE_HEAD, token.TEMPLATE_MIDDLE:
			braceDepths = append(braceDepths, 0)
		case token.LBRACE:
			if len(braceDepths) > 0 {
				braceDepths[len(braceDepths)-1]++
			}
		case token.RBRACE:
			if n := len(braceDepths); n > 0 {
				if braceDepths[n-1] == 0 {
					braceDepths = braceDepths[:n-1]
					reenterTemplate = true
				} else {
					braceDepths[n-1]--
				}
			}
		}

		if tok.Kind == token.EOF {
			break
		}
		if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", fset.Position(tok.Pos), tok.Kind, tokenValue(tok)); err != nil {
			return nil, err
		}
		prev = tok.Kind
	}

	return s.Diagnostics, nil
}

// regExpAllowedAfter reports whether a '/' immediately following a token of
// kind prev starts a regular expression rather than a division operator.
// This is the coarse statement-level approximation a token dumper can make
// without a full parse: division only ever follows something that can end
// an expression.
func regExpAllowedAfter(prev token.Kind) bool {
	if prev.IsLiteral() {
		return false
	}
	switch prev {
	case token.RPAREN, token.RBRACKET, token.RBRACE,
		token.INCREMENT, token.DECREMENT,
		token.THIS, token.SUPER, token.TRUE, token.FALSE, token.NULL:
		return false
	}
	return true
}

func tokenValue(tok scanner.Token) string {
	switch tok.Kind {
	case token.NUMERIC:
		return fmt.Sprintf("%v", tok.Number)
	case token.BIGINT:
		return tok.BigInt + "n"
	case token.REGEXP:
		return fmt.Sprintf("/%s/%s", tok.Regexp.Pattern, tok.Regexp.Flags)
	default:
		return fmt.Sprintf("%q", tok.Value)
	}
}
