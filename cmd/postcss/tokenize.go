package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/morishitter/postcss/internal/diagfmt"
	"github.com/morishitter/postcss/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.css",
	Short: "Tokenize a css file",
	Long:  `Tokenize breaks a css file down into the tokens the parser consumes`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	result, err := driver.Tokenize(afero.NewOsFs(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return diagfmt.FormatTokensJSON(out, result.Input, result.Tokens)
	}
	return diagfmt.FormatTokensPretty(out, result.Input, result.Tokens)
}
