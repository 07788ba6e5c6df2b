package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var inlineSeeds = []string{
	"",
	"a{}",
	"a { color: black; }",
	"@media screen { a { b: c } }\n",
	"/* c */ a{}",
	"a { b: c !important; d: e ! important }",
	"a /* x */ { b: c /* y */ }",
	"@import url(foo.css) ;;",
	";a{};",
	"a{b:c}@x y  ",
	"a { b: url(data:image/png;base64,AAA=) }",
	"a[href=\"x\"] { content: \"}\" }",
	"a { b: (c; d) }",
	"a { *zoom: 1; _height: 1px }",
	"\uFEFFa { }",
	"a {\r\n  b: c;\r\n}\r\n",
	"a { b: c }\n/*# sourceMappingURL=a.css.map */",
	// незакрытые конструкции должны давать ошибку, а не зависание
	"a {",
	"a { b: (c }",
	"a { content: \"",
	"/* a",
	"}",
	"@",
	"\\",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.css файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".css" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
