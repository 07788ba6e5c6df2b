// Package token defines lexical token kinds for css text.
// Invariants:
//   - Token.Text is a slice of Input.CSS (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Comments and whitespace are ordinary tokens; the parser keeps them
//     as raws so every byte of input lands somewhere in the tree.
package token
