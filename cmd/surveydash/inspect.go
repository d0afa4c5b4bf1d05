package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/spektr-org/surveydash/helpers"
	"github.com/spektr-org/surveydash/schema"
)

var inspectFormat string

// inspectCmd profiles the source's required columns without building the
// dataset, so a broken export can be diagnosed.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Profile the columns of the survey source",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := checkFormat(inspectFormat, "text", "json", "pretty", "yaml"); err != nil {
			return err
		}
		headers, rows, err := helpers.ReadTable(cmd.Context(), cfg.Source)
		if err != nil {
			return err
		}
		profile, err := schema.Inspect(headers, rows, cfg.Columns)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		switch inspectFormat {
		case "text":
			_, err = fmt.Fprint(w, profile.String())
			return err
		case "yaml":
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(profile); err != nil {
				return err
			}
			return enc.Close()
		default:
			return writeJSON(w, profile, inspectFormat)
		}
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "text", "output format: text, json, pretty, yaml")
}
