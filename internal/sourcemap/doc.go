// Package sourcemap reads, composes and writes version 3 source maps.
//
// Назначение: a Consumer answers "where did generated line/column come
// from", a Generator collects mappings while css is being stringified and
// can rebase them through an earlier Consumer (ApplySourceMap), and
// Load finds the map a previous tool left for the input (inline data URI,
// annotation pointing to a file, or text supplied by the caller).
// Не делает: path resolution relative to output files; that belongs to the
// pipeline which knows the from/to options.
//
// Lines are 1-based and columns are 0-based everywhere in this package, as
// in the source map format itself.
package sourcemap
