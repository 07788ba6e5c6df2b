package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/morishitter/postcss/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show postcss build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		switch strings.ToLower(format) {
		case "pretty":
			_, err = fmt.Fprintln(out, version.Banner())
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			err = enc.Encode(version.Current())
		default:
			err = &usageError{msg: fmt.Sprintf("unsupported format %q (must be pretty or json)", format)}
		}
		return err
	},
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}
