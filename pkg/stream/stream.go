// Package stream provides the token stream cursor consumed by parsers:
// bounded lookahead, consumption, and checkpoint-based backtracking over a
// finished token sequence.
package stream

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/leapstack-labs/lexkit/pkg/token"
)

// ResetError reports a Reset to a position outside the stream's bounds.
// It indicates a caller bug, not bad input; the cursor is left unchanged.
type ResetError struct {
	Position int
	Len      int
}

func (e *ResetError) Error() string {
	return fmt.Sprintf("reset position %d out of range [0, %d]", e.Position, e.Len)
}

// TokenStream is a read cursor over an immutable token sequence. The
// sequence never changes after construction; only the cursor and the
// checkpoint history move. A stream is owned by a single consumer at a
// time: no internal locking is provided.
type TokenStream struct {
	id     string
	tokens []token.Token
	cursor int
	marks  []int
}

// New creates a stream over a copy of tokens.
func New(tokens []token.Token) *TokenStream {
	s := &TokenStream{
		id:     uuid.NewString(),
		tokens: make([]token.Token, len(tokens)),
	}
	copy(s.tokens, tokens)
	return s
}

// ID returns the stream's unique identifier, used for log correlation.
func (s *TokenStream) ID() string {
	return s.id
}

// Peek returns the token at cursor+offset without moving the cursor, or
// false when that index is out of range.
func (s *TokenStream) Peek(offset int) (token.Token, bool) {
	i := s.cursor + offset
	if i < 0 || i >= len(s.tokens) {
		return token.Token{}, false
	}
	return s.tokens[i], true
}

// Consume returns the token at the cursor and advances past it, or false
// when the stream is exhausted.
func (s *TokenStream) Consume() (token.Token, bool) {
	if s.cursor >= len(s.tokens) {
		return token.Token{}, false
	}
	t := s.tokens[s.cursor]
	s.cursor++
	return t, true
}

// HasMore reports whether unconsumed tokens remain.
func (s *TokenStream) HasMore() bool {
	return s.cursor < len(s.tokens)
}

// Mark records the current cursor in the checkpoint history and returns
// it. The history is an audit trail only: Reset takes an explicit position
// and never consults it.
func (s *TokenStream) Mark() int {
	s.marks = append(s.marks, s.cursor)
	return s.cursor
}

// Reset moves the cursor to pos, which may be anywhere in [0, Len()]
// including the end-of-stream position. An out-of-range pos is a caller
// contract violation: Reset fails and the cursor stays put.
func (s *TokenStream) Reset(pos int) error {
	if pos < 0 || pos > len(s.tokens) {
		return &ResetError{Position: pos, Len: len(s.tokens)}
	}
	s.cursor = pos
	return nil
}

// Position returns the current cursor value.
func (s *TokenStream) Position() int {
	return s.cursor
}

// Len returns the total token count.
func (s *TokenStream) Len() int {
	return len(s.tokens)
}

// Remaining returns the number of unconsumed tokens.
func (s *TokenStream) Remaining() int {
	return len(s.tokens) - s.cursor
}

// Tokens returns an independent copy of the full token sequence,
// unaffected by later cursor movement.
func (s *TokenStream) Tokens() []token.Token {
	out := make([]token.Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Marks returns a copy of the checkpoint history, oldest first.
func (s *TokenStream) Marks() []int {
	out := make([]int, len(s.marks))
	copy(out, s.marks)
	return out
}

// ClearMarks empties the checkpoint history without moving the cursor.
func (s *TokenStream) ClearMarks() {
	s.marks = nil
}

// Errors returns the ERROR tokens in the sequence, in offset order.
func (s *TokenStream) Errors() []token.Token {
	var out []token.Token
	for _, t := range s.tokens {
		if t.IsError() {
			out = append(out, t)
		}
	}
	return out
}
