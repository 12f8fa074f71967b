package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var resolveFormat string

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Prints the resolved theme configuration",
	Long:  `Merges the theme file over the framework defaults and prints the content patterns, the full token table and the plugin list.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, rc, err := resolve(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch resolveFormat {
		case "json":
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(rc)
		case "yaml", "yml":
			encoder := yaml.NewEncoder(out)
			encoder.SetIndent(2)
			if err := encoder.Encode(rc); err != nil {
				return fmt.Errorf("failed to encode yaml: %w", err)
			}
			return encoder.Close()
		default:
			return fmt.Errorf("unsupported output format %q (want json or yaml)", resolveFormat)
		}
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", "json", "Output format: json or yaml")
	rootCmd.AddCommand(resolveCmd)
}
