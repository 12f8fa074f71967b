package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/themeforge/internal/content"
	"github.com/sevigo/themeforge/internal/core"
	"github.com/sevigo/themeforge/internal/palette"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

var strictCheck bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates the theme file, its colour scales and its content globs",
	Long: `Resolves the theme file and reports palette findings (missing weights,
unparsable colours, lightness that does not decrease with weight) and content
patterns that select no files. Findings are warnings unless --strict is set.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()

		s, rc, err := resolve(cmd.Context())
		if err != nil {
			var patternErr *core.InvalidPatternError
			if errors.As(err, &patternErr) {
				errorColor.Fprintf(out, "✗ content[%d] %q: %s\n", patternErr.Index, patternErr.Pattern, patternErr.Reason)
			}
			return err
		}
		titleColor.Fprintf(out, "%s\n", s.loader.Path())
		successColor.Fprintf(out, "✓ resolved: %d content patterns, %d plugins\n", len(rc.Content()), len(rc.Plugins()))

		findings := palette.Check(rc.Theme())
		reportFindings(out, findings)

		matches, err := content.Discover(cmd.Context(), s.loader.ProjectRoot(), rc.Content())
		if err != nil {
			return fmt.Errorf("failed to discover content: %w", err)
		}
		reportContent(out, matches)

		if len(findings) > 0 && (strictCheck || s.cfg.StrictPalette) {
			return fmt.Errorf("%w: %d", palette.ErrFindings, len(findings))
		}
		return nil
	},
}

func reportFindings(w io.Writer, findings []palette.Finding) {
	if len(findings) == 0 {
		successColor.Fprintln(w, "✓ palette: no findings")
		return
	}
	warnColor.Fprintf(w, "! palette: %d findings\n", len(findings))
	for _, f := range findings {
		fmt.Fprintf(w, "  %s ", dimColor.Sprintf("[%s]", f.Kind))
		fmt.Fprintln(w, f.String())
	}
}

func reportContent(w io.Writer, matches []content.Match) {
	for _, m := range matches {
		switch {
		case m.Skipped != "":
			dimColor.Fprintf(w, "- %s: %s\n", m.Pattern, m.Skipped)
		case len(m.Files) == 0:
			warnColor.Fprintf(w, "! %s matches no files\n", m.Pattern)
		default:
			successColor.Fprintf(w, "✓ %s: %d files\n", m.Pattern, len(m.Files))
		}
	}
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	checkCmd.Flags().BoolVar(&strictCheck, "strict", false, "Fail when the palette check reports findings")
	rootCmd.AddCommand(checkCmd)
}
