package token

import "fmt"

// Position represents a location in the source text.
type Position struct {
	Line   int    // 1-based line number
	Column int    // 1-based column number
	Offset int    // 0-based byte offset
	File   string // optional source name
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String renders the position as "file:line:col", or "line:col" when no
// source name is set.
func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
