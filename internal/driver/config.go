package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/morishitter/postcss/internal/pipeline"
)

// ConfigName is the project file LoadConfig looks for.
const ConfigName = "postcss.toml"

// Config is the decoded postcss.toml.
//
//	[input]
//	files = ["src/**/*.css"]
//
//	[output]
//	dir = "dist"
//	map = true
//	inline = false
//
//	[run]
//	jobs = 4
//	cache = true
type Config struct {
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
	Run    RunConfig    `toml:"run"`

	// Path is the file the config was read from.
	Path string `toml:"-"`
	// Root is the directory of Path; relative paths in the file resolve
	// against it.
	Root string `toml:"-"`
}

type InputConfig struct {
	Files []string `toml:"files"`
}

// OutputConfig mirrors pipeline.MapOptions. Keys missing from the file stay
// nil so the previous map of each input decides.
type OutputConfig struct {
	Dir            string `toml:"dir"`
	Map            *bool  `toml:"map"`
	Inline         *bool  `toml:"inline"`
	Annotation     *bool  `toml:"annotation"`
	AnnotationURL  string `toml:"annotation_url"`
	SourcesContent *bool  `toml:"sources_content"`
	// EditorConfig takes the fallback indent of built nodes from .editorconfig.
	EditorConfig bool `toml:"editorconfig"`
}

type RunConfig struct {
	Jobs  int  `toml:"jobs"`
	Cache bool `toml:"cache"`
}

// FindConfig walks up from startDir to locate postcss.toml.
func FindConfig(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadConfig decodes the file at path.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("run", "jobs") && cfg.Run.Jobs < 0 {
		return nil, fmt.Errorf("%s: [run].jobs must not be negative", path)
	}
	if meta.IsDefined("output", "inline") && meta.IsDefined("output", "annotation_url") && *cfg.Output.Inline {
		return nil, fmt.Errorf("%s: [output].annotation_url needs inline = false", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	cfg.Path = abs
	cfg.Root = filepath.Dir(abs)
	return &cfg, nil
}

// Files returns the input patterns resolved against Root.
func (c *Config) Files() []string {
	out := make([]string, len(c.Input.Files))
	for i, f := range c.Input.Files {
		if filepath.IsAbs(f) || c.Root == "" {
			out[i] = f
			continue
		}
		out[i] = filepath.Join(c.Root, filepath.FromSlash(f))
	}
	return out
}

// OutDir returns the output directory resolved against Root.
func (c *Config) OutDir() string {
	dir := c.Output.Dir
	if dir == "" || filepath.IsAbs(dir) || c.Root == "" {
		return dir
	}
	return filepath.Join(c.Root, filepath.FromSlash(dir))
}

// MapOptions converts [output]. A nil result means "only when the input
// had a map".
func (c *Config) MapOptions() *pipeline.MapOptions {
	o := c.Output
	if o.Map == nil && o.Inline == nil && o.Annotation == nil && o.AnnotationURL == "" && o.SourcesContent == nil {
		return nil
	}
	if o.Map != nil && !*o.Map {
		return &pipeline.MapOptions{Disabled: true}
	}
	return &pipeline.MapOptions{
		Inline:         o.Inline,
		Annotation:     o.Annotation,
		AnnotationURL:  o.AnnotationURL,
		SourcesContent: o.SourcesContent,
	}
}
