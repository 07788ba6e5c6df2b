package main

import (
	"io"

	"github.com/morishitter/postcss/internal/driver"
)

func printTimings(out io.Writer, res *driver.FileResult) {
	if out == nil || len(res.Timings.Phases) == 0 {
		return
	}
	title := res.Path
	if res.Cached {
		title += " (cached)"
	}
	res.Timings.Print(out, title)
}
