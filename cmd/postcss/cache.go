package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/morishitter/postcss/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the results cache used by process --cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how many results are cached",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := driver.OpenDiskCache("postcss")
		if err != nil {
			return err
		}
		st, err := cache.Stats()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries, %s\n", cache.Dir(), st.Entries, humanBytes(st.Bytes))
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached result",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := driver.OpenDiskCache("postcss")
		if err != nil {
			return err
		}
		n, err := cache.Clear()
		if err != nil {
			return err
		}
		quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d entries from %s\n", n, cache.Dir())
		}
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd, cacheClearCmd)
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
