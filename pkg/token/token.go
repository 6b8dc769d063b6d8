// Package token defines the lexical token and source position types shared
// by the lexer, the token stream, and downstream consumers.
//
// Token types are open string tags chosen by rule authors. The only
// reserved tag is ERROR, emitted by the lexer for input no rule matches.
package token

import "fmt"

// Type identifies the kind of a lexical token. It is an open tag: rule
// authors pick their own values (e.g. "NUM", "IDENT").
type Type string

// ERROR is the reserved type tag for tokens synthesized from input no rule
// matched.
//
//nolint:revive // Intentionally ALL_CAPS, matching the tag value itself
const ERROR Type = "ERROR"

// MetaError is the metadata key carrying the human-readable message on
// ERROR tokens.
const MetaError = "error"

// Token represents a classified span of source text, or a synthesized
// error marker.
type Token struct {
	Type     Type
	Value    string
	Pos      Position
	Metadata map[string]any
}

// IsError reports whether the token carries the reserved ERROR tag.
func (t Token) IsError() bool {
	return t.Type == ERROR
}

// Meta returns the metadata value for key, or nil when absent.
func (t Token) Meta(key string) any {
	return t.Metadata[key]
}

// ErrorMessage returns the message an ERROR token carries in its metadata,
// or "" when there is none.
func (t Token) ErrorMessage() string {
	if msg, ok := t.Metadata[MetaError].(string); ok {
		return msg
	}
	return ""
}

// WithMeta returns a copy of the token with key set in its metadata bag.
// The original token's bag is not modified.
func (t Token) WithMeta(key string, value any) Token {
	meta := make(map[string]any, len(t.Metadata)+1)
	for k, v := range t.Metadata {
		meta[k] = v
	}
	meta[key] = value
	t.Metadata = meta
	return t
}

// String returns a human-readable representation for debug output.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Type, t.Value, t.Pos)
}
