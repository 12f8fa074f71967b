package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sevigo/themeforge/internal/plugins"
)

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "Lists the built-in plugins and which ones the theme enables",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		var enabled []string
		rc, err := s.loader.Load(cmd.Context())
		if err != nil {
			s.logger.Warn("theme does not resolve; listing built-in plugins only", "error", err)
		} else {
			enabled = rc.PluginNames()
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "PLUGIN\tENABLED\tORDER")
		for _, name := range plugins.DefaultRegistry().Names() {
			var positions []string
			for i, n := range enabled {
				if n == name {
					positions = append(positions, strconv.Itoa(i+1))
				}
			}
			order, status := "-", "no"
			if len(positions) > 0 {
				// a plugin listed twice applies twice
				order, status = strings.Join(positions, ","), "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, status, order)
		}
		return w.Flush()
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(pluginsCmd)
}
