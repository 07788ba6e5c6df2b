package version

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/fatih/color"
)

// Version information for the postcss CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the module.
	Version = "4.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Banner renders "postcss <version>" with optional commit and build date.
// Version components are colored unless colors are disabled globally.
func Banner() string {
	var sb strings.Builder
	sb.WriteString("postcss ")
	sb.WriteString(coloredVersion(Version))
	if GitCommit != "" {
		fmt.Fprintf(&sb, " (%s)", GitCommit)
	}
	if BuildDate != "" {
		fmt.Fprintf(&sb, " built %s", BuildDate)
	}
	return sb.String()
}

func coloredVersion(v string) string {
	core, suffix, _ := strings.Cut(v, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return v
	}
	out := majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// Info is the build description printed by `postcss version --format json`.
type Info struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	Go        string `json:"go,omitempty"`
}

// Current collects Info; commit and date not set through -ldflags come
// from the vcs stamp of the binary when there is one.
func Current() Info {
	info := Info{
		Tool:      "postcss",
		Version:   strings.TrimSpace(Version),
		GitCommit: strings.TrimSpace(GitCommit),
		BuildDate: strings.TrimSpace(BuildDate),
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.Go = bi.GoVersion
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.GitCommit == "":
			info.GitCommit = s.Value
		case s.Key == "vcs.time" && info.BuildDate == "":
			info.BuildDate = s.Value
		}
	}
	return info
}
