package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/morishitter/postcss/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] files|dirs|globs...",
	Short: "Verify that files survive parse and print unchanged",
	Long:  `Check parses every file and prints it back without plugins. Files that do not come back byte for byte are reported with a patch`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	fsys := afero.NewOsFs()
	files, err := driver.ExpandInputs(fsys, args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return &usageError{msg: "no input files"}
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	out, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	okLabel := color.New(color.FgGreen).Sprint("ok")
	diffLabel := color.New(color.FgRed, color.Bold).Sprint("changed")
	failed := 0
	for _, path := range files {
		css, err := driver.ReadInput(fsys, path)
		if err != nil {
			failed++
			printError(stderr, fmt.Errorf("%s: %w", path, err), false)
			continue
		}
		res, err := driver.CheckRoundTrip(path, css)
		if err != nil {
			failed++
			printError(stderr, err, useColor(cmd, os.Stderr))
			continue
		}
		if res.OK {
			if !quiet {
				fmt.Fprintf(out, "%s %s\n", okLabel, path)
			}
			continue
		}
		failed++
		fmt.Fprintf(out, "%s %s\n%s", diffLabel, path, res.Diff)
	}
	if failed > 0 {
		return &failedFiles{count: failed}
	}
	return nil
}
