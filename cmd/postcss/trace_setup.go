package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/morishitter/postcss/internal/trace"
)

type traceFlags struct {
	output   string
	level    string
	mode     string
	ringSize int
}

func readTraceFlags(fs *pflag.FlagSet) (traceFlags, error) {
	var (
		f    traceFlags
		errs [4]error
	)
	f.output, errs[0] = fs.GetString("trace")
	f.level, errs[1] = fs.GetString("trace-level")
	f.mode, errs[2] = fs.GetString("trace-mode")
	f.ringSize, errs[3] = fs.GetInt("trace-ring-size")
	return f, multierr.Combine(errs[:]...)
}

// config turns the flags into a tracer config. --trace alone means phase
// level; error level never streams and only keeps the ring.
func (f traceFlags) config() (trace.Config, error) {
	level, err := trace.ParseLevel(f.level)
	if err != nil {
		return trace.Config{}, err
	}
	if level == trace.LevelOff && f.output != "" {
		level = trace.LevelPhase
	}
	mode, err := trace.ParseMode(f.mode)
	if err != nil {
		return trace.Config{}, err
	}
	if level == trace.LevelError {
		mode = trace.ModeRing
	}
	return trace.Config{Level: level, Mode: mode, Path: f.output, RingSize: f.ringSize}, nil
}

// setupTracing puts the tracer chosen by the --trace* flags into the
// command context. The cleanup flushes and closes it.
func setupTracing(cmd *cobra.Command) (func(), error) {
	flags, err := readTraceFlags(cmd.Root().PersistentFlags())
	if err != nil {
		return nil, fmt.Errorf("trace flags: %w", err)
	}
	cfg, err := flags.config()
	if err != nil {
		return nil, err
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)

	return func() {
		if err := multierr.Append(tracer.Flush(), tracer.Close()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: %v\n", err)
		}
	}, nil
}
