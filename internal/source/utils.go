package source

import (
	"path/filepath"
	"strings"

	"fortio.org/safecast"
)

const bom = "\uFEFF"

func removeBOM(css string) (string, bool) {
	if strings.HasPrefix(css, bom) {
		return css[len(bom):], true
	}
	return css, false
}

// buildLineIndex returns offsets of every '\n' in css.
func buildLineIndex(css string) []uint32 {
	out := make([]uint32, 0, strings.Count(css, "\n"))
	for i := 0; i < len(css); i++ {
		if css[i] == '\n' {
			out = append(out, safecast.MustConv[uint32](i))
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// Если lineIdx пустой, то весь текст - одна строка
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// бинпоиск: находим число переводов строки строго перед off
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line := lo // индекс строки (0-based)

	var startOff uint32
	if line > 0 {
		startOff = lineIdx[line-1] + 1 // строка начинается после \n предыдущей
	}
	return LineCol{Line: safecast.MustConv[uint32](line + 1), Col: off - startOff + 1}
}

// lineStart returns the offset of the first byte of line (1-based).
func lineStart(lineIdx []uint32, line int) (uint32, bool) {
	if line < 1 || line > len(lineIdx)+1 {
		return 0, false
	}
	if line == 1 {
		return 0, true
	}
	return lineIdx[line-2] + 1, true
}

func normalizePath(p string) string {
	// единый вид в картах и диффах
	return filepath.ToSlash(filepath.Clean(p))
}

// RelativePath returns target relative to the directory base, with forward
// slashes. Both are made absolute first; when no relative path exists the
// absolute target is returned.
func RelativePath(base, target string) string {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return normalizePath(target)
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return normalizePath(target)
	}
	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil {
		return normalizePath(absTarget)
	}
	return normalizePath(rel)
}
