package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestBannerPlain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	oldCommit := GitCommit
	GitCommit = "abc123"
	defer func() { GitCommit = oldCommit }()

	got := Banner()
	if !strings.HasPrefix(got, "postcss "+Version) {
		t.Fatalf("unexpected banner %q", got)
	}
	if !strings.Contains(got, "(abc123)") {
		t.Fatalf("banner misses commit: %q", got)
	}
}

func TestCurrentPrefersLinkedValues(t *testing.T) {
	oldVersion, oldCommit := Version, GitCommit
	Version, GitCommit = " ", "feed42"
	defer func() { Version, GitCommit = oldVersion, oldCommit }()

	info := Current()
	if info.Tool != "postcss" || info.Version != "dev" {
		t.Fatalf("unexpected info %+v", info)
	}
	if info.GitCommit != "feed42" {
		t.Fatalf("commit = %q, want the linked value", info.GitCommit)
	}
}
