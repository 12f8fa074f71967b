package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sevigo/themeforge/internal/render"
)

var outputFile string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Renders the theme variables and plugin rules as CSS",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, rc, err := resolve(cmd.Context())
		if err != nil {
			return err
		}

		css, err := render.Stylesheet(rc)
		if err != nil {
			return fmt.Errorf("failed to render stylesheet: %w", err)
		}

		if outputFile == "" || outputFile == "-" {
			_, err = fmt.Fprint(cmd.OutOrStdout(), css)
			return err
		}
		if err := os.WriteFile(outputFile, []byte(css), 0o644); err != nil { //nolint:gosec // stylesheets are public
			return fmt.Errorf("failed to write %s: %w", outputFile, err)
		}
		s.logger.Info("stylesheet written", "path", outputFile, "bytes", len(css), "plugins", rc.PluginNames())
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	buildCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write CSS to this file instead of stdout")
	rootCmd.AddCommand(buildCmd)
}
