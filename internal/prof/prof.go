// Package prof wires runtime/pprof and runtime/trace to command line flags.
package prof

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"go.uber.org/multierr"
)

// Config names the output files; empty paths switch the profile off.
type Config struct {
	CPU   string
	Mem   string
	Trace string
}

func (c Config) Enabled() bool {
	return c.CPU != "" || c.Mem != "" || c.Trace != ""
}

// Session is a running set of profiles.
type Session struct {
	cfg       Config
	cpuFile   *os.File
	traceFile *os.File
}

// Start begins the CPU profile and the runtime trace. The heap profile is
// written by Stop.
func Start(cfg Config) (*Session, error) {
	s := &Session{cfg: cfg}
	if cfg.CPU != "" {
		f, err := os.Create(cfg.CPU)
		if err != nil {
			return nil, fmt.Errorf("cpu profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("cpu profile: %w", err)
		}
		s.cpuFile = f
	}
	if cfg.Trace != "" {
		f, err := os.Create(cfg.Trace)
		if err != nil {
			_ = s.stopCPU()
			return nil, fmt.Errorf("runtime trace: %w", err)
		}
		if err := trace.Start(f); err != nil {
			_ = f.Close()
			_ = s.stopCPU()
			return nil, fmt.Errorf("runtime trace: %w", err)
		}
		s.traceFile = f
	}
	return s, nil
}

// Stop ends everything Start began and writes the heap profile.
// Safe to call on a nil session.
func (s *Session) Stop() error {
	if s == nil {
		return nil
	}
	err := s.stopCPU()
	if s.traceFile != nil {
		trace.Stop()
		err = multierr.Append(err, s.traceFile.Close())
		s.traceFile = nil
	}
	if s.cfg.Mem != "" {
		err = multierr.Append(err, writeMem(s.cfg.Mem))
	}
	return err
}

func (s *Session) stopCPU() error {
	if s.cpuFile == nil {
		return nil
	}
	pprof.StopCPUProfile()
	err := s.cpuFile.Close()
	s.cpuFile = nil
	return err
}

func writeMem(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("heap profile: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	runtime.GC()
	return pprof.WriteHeapProfile(f)
}
