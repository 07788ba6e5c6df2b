package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/morishitter/postcss/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "postcss",
	Short:         "CSS processor with source maps",
	Long:          `postcss parses css into a tree, runs plugins over it and prints it back with a source map`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupColor(cmd); err != nil {
			return err
		}
		stopProfiles, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		cleanups = append(cleanups, stopProfiles)
		stopTrace, err := setupTracing(cmd)
		if err != nil {
			return err
		}
		cleanups = append(cleanups, stopTrace)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		runCleanups()
	},
}

var cleanups []func()

// runCleanups stops trace and profiles in reverse order of setup.
func runCleanups() {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	cleanups = nil
}

// main registers subcommands and persistent flags and runs the root command.
// A failed command exits with status 1.
func main() {
	// версия для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("trace", "", "write trace events to a file (\"-\" for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-mode", "stream", "trace storage (stream|ring|both)")
	rootCmd.PersistentFlags().Int("trace-ring-size", 4096, "events kept in ring mode")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")

	if err := rootCmd.Execute(); err != nil {
		// PersistentPostRun не вызывается, если RunE вернул ошибку
		runCleanups()
		printError(os.Stderr, err, useColor(rootCmd, os.Stderr))
		os.Exit(1)
	}
}

func setupColor(cmd *cobra.Command) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto", "":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return &usageError{msg: "invalid --color value " + mode + " (expected auto|on|off)"}
	}
	return nil
}

// useColor решает, красить ли вывод в f
func useColor(cmd *cobra.Command, f *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	return mode == "on" || ((mode == "auto" || mode == "") && isTerminal(f))
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
