package stream

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lexkit/pkg/token"
)

func fiveTokens() []token.Token {
	tokens := make([]token.Token, 5)
	for i := range tokens {
		tokens[i] = token.Token{
			Type:  "WORD",
			Value: fmt.Sprintf("w%d", i),
			Pos:   token.Position{Line: 1, Column: i + 1, Offset: i},
		}
	}
	return tokens
}

func TestStream_PeekIsIdempotent(t *testing.T) {
	s := New(fiveTokens())

	first, ok := s.Peek(0)
	require.True(t, ok)
	again, ok := s.Peek(0)
	require.True(t, ok)
	assert.Equal(t, first, again, "repeated peeks must return the same token")
	assert.Equal(t, 0, s.Position(), "peek must not move the cursor")

	consumed, ok := s.Consume()
	require.True(t, ok)
	assert.Equal(t, first, consumed, "peek(0) must equal the next consume")
}

func TestStream_PeekAhead(t *testing.T) {
	s := New(fiveTokens())

	tok, ok := s.Peek(2)
	require.True(t, ok)
	assert.Equal(t, "w2", tok.Value)

	_, ok = s.Peek(5)
	assert.False(t, ok, "peek past the end must report no token")
	_, ok = s.Peek(-1)
	assert.False(t, ok, "peek before the start must report no token")
}

func TestStream_ConsumeToEnd(t *testing.T) {
	s := New(fiveTokens())

	for i := 0; i < 5; i++ {
		assert.True(t, s.HasMore())
		tok, ok := s.Consume()
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("w%d", i), tok.Value)
	}

	assert.False(t, s.HasMore())
	assert.Equal(t, 0, s.Remaining())
	_, ok := s.Consume()
	assert.False(t, ok, "consume at the end must report no token")
	assert.Equal(t, 5, s.Position(), "failed consume must not move the cursor")
}

func TestStream_MarkAndReset(t *testing.T) {
	s := New(fiveTokens())

	_, _ = s.Consume()
	_, _ = s.Consume()

	mark := s.Mark()
	assert.Equal(t, 2, mark)

	expected, ok := s.Peek(0)
	require.True(t, ok)

	_, _ = s.Consume()
	_, _ = s.Consume()
	_, _ = s.Consume()
	assert.Equal(t, 5, s.Position())

	require.NoError(t, s.Reset(mark))
	assert.Equal(t, 2, s.Position())

	replayed, ok := s.Consume()
	require.True(t, ok)
	assert.Equal(t, expected, replayed, "the consume sequence must be reproducible after reset")
}

func TestStream_ResetOutOfRange(t *testing.T) {
	s := New(fiveTokens())
	_, _ = s.Consume()

	err := s.Reset(99)
	require.Error(t, err)
	assert.Equal(t, 1, s.Position(), "failed reset must not move the cursor")

	err = s.Reset(-1)
	require.Error(t, err)
	assert.Equal(t, 1, s.Position())

	var resetErr *ResetError
	require.ErrorAs(t, err, &resetErr)
	assert.Equal(t, -1, resetErr.Position)
	assert.Equal(t, 5, resetErr.Len)
}

func TestStream_ResetToEndIsAllowed(t *testing.T) {
	s := New(fiveTokens())

	require.NoError(t, s.Reset(5), "the end-of-stream position is in range")
	assert.False(t, s.HasMore())
	require.NoError(t, s.Reset(0))
	assert.Equal(t, 5, s.Remaining())
}

func TestStream_MarksAreAuditOnly(t *testing.T) {
	s := New(fiveTokens())

	s.Mark()
	_, _ = s.Consume()
	s.Mark()
	_, _ = s.Consume()
	s.Mark()

	assert.Equal(t, []int{0, 1, 2}, s.Marks(), "history keeps every checkpoint, oldest first")

	// Reset takes an explicit position; the history is never popped.
	require.NoError(t, s.Reset(0))
	assert.Equal(t, []int{0, 1, 2}, s.Marks())

	s.ClearMarks()
	assert.Empty(t, s.Marks())
	assert.Equal(t, 0, s.Position(), "clearing marks must not move the cursor")
}

func TestStream_MarksCopyIsIndependent(t *testing.T) {
	s := New(fiveTokens())
	s.Mark()

	marks := s.Marks()
	marks[0] = 99

	assert.Equal(t, []int{0}, s.Marks())
}

func TestStream_TokensCopyIsIndependent(t *testing.T) {
	source := fiveTokens()
	s := New(source)

	// Mutating the constructor slice must not reach the stream.
	source[0].Value = "mutated"
	tok, ok := s.Peek(0)
	require.True(t, ok)
	assert.Equal(t, "w0", tok.Value)

	// Same for the accessor copy, in both directions.
	tokens := s.Tokens()
	tokens[1].Value = "mutated"
	_, _ = s.Consume()
	tok, ok = s.Peek(0)
	require.True(t, ok)
	assert.Equal(t, "w1", tok.Value)

	assert.Len(t, s.Tokens(), 5, "Tokens is the full sequence regardless of the cursor")
}

func TestStream_Empty(t *testing.T) {
	s := New(nil)

	assert.False(t, s.HasMore())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Remaining())
	_, ok := s.Peek(0)
	assert.False(t, ok)
	require.NoError(t, s.Reset(0))
	require.Error(t, s.Reset(1))
}

func TestStream_Errors(t *testing.T) {
	tokens := fiveTokens()
	tokens[1] = token.Token{
		Type:     token.ERROR,
		Value:    "#",
		Pos:      token.Position{Line: 1, Column: 2, Offset: 1},
		Metadata: map[string]any{token.MetaError: "Unexpected character: #"},
	}
	s := New(tokens)

	errs := s.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "#", errs[0].Value)
	assert.Equal(t, "Unexpected character: #", errs[0].ErrorMessage())
}

func TestStream_ID(t *testing.T) {
	a := New(nil)
	b := New(nil)

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}
