package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sevigo/themeforge/internal/content"
)

var contentJSON bool

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Lists the files each content pattern selects",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, rc, err := resolve(cmd.Context())
		if err != nil {
			return err
		}

		matches, err := content.Discover(cmd.Context(), s.loader.ProjectRoot(), rc.Content())
		if err != nil {
			return fmt.Errorf("failed to discover content: %w", err)
		}

		out := cmd.OutOrStdout()
		if contentJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(matches)
		}

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "PATTERN\tFILES")
		for _, m := range matches {
			switch {
			case m.Skipped != "":
				fmt.Fprintf(w, "%s\tskipped: %s\n", m.Pattern, m.Skipped)
			case len(m.Files) == 0:
				fmt.Fprintf(w, "%s\t-\n", m.Pattern)
			default:
				for i, f := range m.Files {
					if i == 0 {
						fmt.Fprintf(w, "%s\t%s\n", m.Pattern, f)
					} else {
						fmt.Fprintf(w, "\t%s\n", f)
					}
				}
			}
		}
		return w.Flush()
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	contentCmd.Flags().BoolVar(&contentJSON, "json", false, "Output matches as JSON")
	rootCmd.AddCommand(contentCmd)
}
