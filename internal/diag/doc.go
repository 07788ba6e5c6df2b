// Package diag defines the positioned error raised by the tokenizer, the
// parser and by user code through a node's Error method.
//
// # Data model
//
// SyntaxError is the only diagnostic kind. It carries:
//
//   - Code – compact numeric identifier (see codes.go) with a stable string form.
//   - Reason – short text such as "Unclosed block".
//   - File – absolute path of the input, empty when the css came from memory.
//   - Line/Column – 1-based position of the offending construct.
//   - Source – the text the position refers to, used by Highlight.
//   - Generated – where the error surfaces in the processed text when the
//     position was resolved back through a previous source map.
//
// Errors built from user calls and from the parser have the same shape, so
// callers cannot tell them apart except through Code.
//
// Rendering is limited to the caret snippet (Highlight). The package does no
// IO and holds no global state besides the caret color.
package diag
