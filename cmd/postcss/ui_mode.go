package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// uiMode is the value of --ui. It implements pflag.Value so a bad value is
// rejected while flags are parsed.
type uiMode uint8

const (
	uiAuto uiMode = iota
	uiOn
	uiOff
)

var uiModeNames = [...]string{uiAuto: "auto", uiOn: "on", uiOff: "off"}

var _ pflag.Value = (*uiMode)(nil)

func (m *uiMode) String() string { return uiModeNames[*m] }

func (m *uiMode) Type() string { return "auto|on|off" }

func (m *uiMode) Set(value string) error {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		*m = uiAuto
		return nil
	}
	for i, name := range uiModeNames {
		if name == value {
			*m = uiMode(i)
			return nil
		}
	}
	return fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

func addUIFlag(cmd *cobra.Command) {
	mode := uiAuto
	cmd.Flags().Var(&mode, "ui", "progress UI")
}

func uiModeFlag(cmd *cobra.Command) uiMode {
	if f := cmd.Flags().Lookup("ui"); f != nil {
		if m, ok := f.Value.(*uiMode); ok {
			return *m
		}
	}
	return uiAuto
}

// wantsTUI: auto means a terminal on stdout.
func (m uiMode) wantsTUI() bool {
	if m == uiAuto {
		return isTerminal(os.Stdout)
	}
	return m == uiOn
}
