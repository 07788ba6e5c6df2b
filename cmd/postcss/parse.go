package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/morishitter/postcss/internal/diagfmt"
	"github.com/morishitter/postcss/internal/driver"
	"github.com/morishitter/postcss/internal/format"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.css",
	Short: "Parse a css file and print its tree",
	Long:  `Parse builds the node tree of a css file and prints it as a tree, as JSON or back as css`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json|css)")
}

func runParse(cmd *cobra.Command, args []string) error {
	outFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Parse(afero.NewOsFs(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch outFormat {
	case "tree":
		return diagfmt.FormatASTPretty(out, result.Root)
	case "json":
		return diagfmt.FormatASTJSON(out, result.Root)
	case "css":
		_, err = fmt.Fprint(out, format.String(result.Root))
		return err
	default:
		return fmt.Errorf("unknown format: %s", outFormat)
	}
}
