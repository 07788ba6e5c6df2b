package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/morishitter/postcss/internal/driver"
	"github.com/morishitter/postcss/internal/pipeline"
	"github.com/morishitter/postcss/internal/trace"
)

var processCmd = &cobra.Command{
	Use:   "process [flags] [files|dirs|globs...]",
	Short: "Process css files and write them with source maps",
	Long: `Process reads css files, runs them through the processor and prints the result.
Without --out the css goes to stdout. Inputs and output settings fall back
to postcss.toml found in the current directory or above.`,
	RunE: runProcess,
}

func init() {
	addProcessFlags(processCmd)
}

func addProcessFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("out", "o", "", "output directory")
	cmd.Flags().Bool("map", false, "generate a source map (--map=false disables it)")
	cmd.Flags().Bool("inline", true, "embed the map into the css as a data uri")
	cmd.Flags().Bool("annotation", true, "add a sourceMappingURL comment")
	cmd.Flags().String("annotation-url", "", "custom sourceMappingURL for external maps")
	cmd.Flags().Bool("no-sources-content", false, "do not embed original sources into the map")
	cmd.Flags().String("config", "", "path to "+driver.ConfigName)
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	addUIFlag(cmd)
	cmd.Flags().Bool("cache", false, "reuse results from the disk cache")
	cmd.Flags().Bool("editorconfig", false, "take indentation of new nodes from .editorconfig")
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := loadProcessConfig(cmd)
	if err != nil {
		return err
	}
	req, err := buildProcessRequest(cmd, cfg, args)
	if err != nil {
		return err
	}
	if len(req.Files) == 0 {
		return &usageError{msg: "no input files"}
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	// TUI затирает stdout, поэтому только при записи в файлы
	var results []driver.FileResult
	if req.OutDir != "" && !quiet && uiModeFlag(cmd).wantsTUI() {
		results, err = runProcessWithUI(cmd.Context(), "postcss", req)
	} else {
		results, err = driver.ProcessFiles(cmd.Context(), *req)
	}
	if err != nil && results == nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	colored := useColor(cmd, os.Stderr)
	ring := trace.RingOf(trace.FromContext(cmd.Context()))
	failed := 0
	for i := range results {
		res := &results[i]
		if res.Err != nil {
			failed++
			printError(stderr, res.Err, colored)
			if ring != nil {
				_ = ring.Dump(stderr, trace.FormatText, res.Path)
			}
			continue
		}
		if res.Out == "" {
			fmt.Fprint(stdout, res.CSS)
			if res.Map != "" && !quiet {
				fmt.Fprintf(stderr, "%s: external map dropped, use --out to write it\n", res.Path)
			}
		} else if !quiet {
			printWritten(stderr, res)
		}
		if showTimings {
			printTimings(stderr, res)
		}
	}
	if failed > 0 {
		return &failedFiles{count: failed}
	}
	return err
}

func loadProcessConfig(cmd *cobra.Command) (*driver.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		found, ok, err := driver.FindConfig(wd)
		if err != nil {
			return nil, err
		}
		if !ok {
			return &driver.Config{}, nil
		}
		path = found
	}
	return driver.LoadConfig(path)
}

// buildProcessRequest merges postcss.toml with the command line; flags that
// were set explicitly win.
func buildProcessRequest(cmd *cobra.Command, cfg *driver.Config, args []string) (*driver.ProcessRequest, error) {
	flags := cmd.Flags()
	fsys := afero.NewOsFs()

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Files()
	}
	files, err := driver.ExpandInputs(fsys, patterns)
	if err != nil {
		return nil, err
	}

	req := &driver.ProcessRequest{
		Files:     files,
		OutDir:    cfg.OutDir(),
		Processor: pipeline.New(),
		Map:       cfg.MapOptions(),
		Jobs:      cfg.Run.Jobs,
		FS:        fsys,
	}
	if flags.Changed("out") {
		req.OutDir, _ = flags.GetString("out")
	}
	if flags.Changed("jobs") {
		req.Jobs, _ = flags.GetInt("jobs")
		if req.Jobs < 0 {
			return nil, &usageError{msg: "--jobs must not be negative"}
		}
	}

	req.Map, err = mapOptionsFromFlags(cmd, req.Map)
	if err != nil {
		return nil, err
	}
	if req.OutDir == "" && req.Map != nil && !req.Map.Disabled && req.Map.Inline != nil && !*req.Map.Inline {
		return nil, &usageError{msg: "external source maps need --out"}
	}

	useCache := cfg.Run.Cache
	if flags.Changed("cache") {
		useCache, _ = flags.GetBool("cache")
	}
	if useCache {
		cache, err := driver.OpenDiskCache("postcss")
		if err != nil {
			return nil, fmt.Errorf("cache: %w", err)
		}
		req.Cache = cache
	}

	editorConfig := cfg.Output.EditorConfig
	if flags.Changed("editorconfig") {
		editorConfig, _ = flags.GetBool("editorconfig")
	}
	if editorConfig {
		req.Indent = driver.EditorConfigIndent
	}
	return req, nil
}

// mapOptionsFromFlags applies the map flags on top of base. Untouched flags
// keep the base value, so a nil base with no flags stays nil.
func mapOptionsFromFlags(cmd *cobra.Command, base *pipeline.MapOptions) (*pipeline.MapOptions, error) {
	flags := cmd.Flags()
	touched := false
	for _, name := range []string{"map", "inline", "annotation", "annotation-url", "no-sources-content"} {
		if flags.Changed(name) {
			touched = true
		}
	}
	if !touched {
		return base, nil
	}

	opts := &pipeline.MapOptions{}
	if base != nil {
		*opts = *base
	}
	if flags.Changed("map") {
		on, _ := flags.GetBool("map")
		if !on {
			return &pipeline.MapOptions{Disabled: true}, nil
		}
		opts.Disabled = false
	}
	if flags.Changed("inline") {
		v, _ := flags.GetBool("inline")
		opts.Inline = pipeline.Bool(v)
	}
	if flags.Changed("annotation") {
		v, _ := flags.GetBool("annotation")
		opts.Annotation = pipeline.Bool(v)
	}
	if flags.Changed("annotation-url") {
		opts.AnnotationURL, _ = flags.GetString("annotation-url")
		if !flags.Changed("inline") {
			opts.Inline = pipeline.Bool(false)
		}
	}
	if flags.Changed("no-sources-content") {
		v, _ := flags.GetBool("no-sources-content")
		opts.SourcesContent = pipeline.Bool(!v)
	}
	if opts.AnnotationURL != "" && opts.Inline != nil && *opts.Inline {
		return nil, &usageError{msg: "--annotation-url needs an external map (--inline=false)"}
	}
	return opts, nil
}

func printWritten(w io.Writer, res *driver.FileResult) {
	status := "wrote"
	if res.Cached {
		status = "cached"
	}
	fmt.Fprintf(w, "%s %s -> %s", status, res.Path, filepath.ToSlash(res.Out))
	if res.MapOut != "" {
		fmt.Fprintf(w, " (+%s)", filepath.Base(res.MapOut))
	}
	fmt.Fprintln(w)
}
