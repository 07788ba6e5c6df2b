package driver

import (
	"strconv"

	"github.com/editorconfig/editorconfig-core-go/v2"

	"github.com/morishitter/postcss/internal/format"
)

// EditorConfigIndent reads the indent settings that apply to path from
// .editorconfig files. Files without settings get the defaults.
func EditorConfigIndent(path string) format.Options {
	def, err := editorconfig.GetDefinitionForFilename(path)
	if err != nil || def == nil {
		return format.Options{}
	}
	return indentFromDefinition(def)
}

func indentFromDefinition(def *editorconfig.Definition) format.Options {
	var opt format.Options
	if def.IndentStyle == editorconfig.IndentStyleTab {
		opt.UseTabs = true
		return opt
	}
	if n, err := strconv.Atoi(def.IndentSize); err == nil && n > 0 {
		opt.IndentWidth = n
	} else if def.TabWidth > 0 {
		opt.IndentWidth = def.TabWidth
	}
	return opt
}
