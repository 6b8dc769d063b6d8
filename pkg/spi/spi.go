// Package spi defines the service provider interfaces between the lexical
// core and its external collaborators: the grammar parser, the code
// generator, and the plugin pipeline around compilation stages. The core
// implements none of them; it only produces the token streams they consume
// and the validation results they check.
package spi

import (
	"github.com/leapstack-labs/lexkit/pkg/diag"
	"github.com/leapstack-labs/lexkit/pkg/token"
)

// TokenCursor is the consumption surface a parser needs from a token
// stream: lookahead, consumption, and checkpoint-based backtracking.
// Implemented by *stream.TokenStream.
type TokenCursor interface {
	Peek(offset int) (token.Token, bool)
	Consume() (token.Token, bool)
	HasMore() bool
	Mark() int
	Reset(pos int) error
	Position() int
	Remaining() int
}

// Node is a parsed tree node (opaque to avoid coupling the core to any
// particular AST).
type Node interface{}

// GrammarParser builds a tree from a token stream.
type GrammarParser interface {
	Parse(ts TokenCursor) (Node, error)
}

// CodeGenerator emits target code from a parsed tree.
type CodeGenerator interface {
	Generate(root Node) (string, error)
}

// RuleValidator is the validation surface configuration-loading code
// checks before a compilation run. Implemented by *lexer.Lexer.
type RuleValidator interface {
	ValidateRules() diag.Result
}

// Stage identifies a compilation stage a plugin can hook.
type Stage int

// Compilation stages, in pipeline order.
const (
	StageLex Stage = iota
	StageParse
	StageGenerate
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	case StageGenerate:
		return "generate"
	default:
		return "unknown"
	}
}

// CompileContext carries per-run state through plugin hooks. Each stage
// fills in its output before the after-hooks run.
type CompileContext struct {
	Source   string
	Filename string
	Tokens   []token.Token // populated after StageLex
	Tree     Node          // populated after StageParse
	Output   string        // populated after StageGenerate
	Metadata map[string]any
}

// StageHook runs before or after a compilation stage. Returning an error
// aborts the run.
type StageHook func(ctx *CompileContext) error

// Plugin contributes hooks around compilation stages. Orchestration is
// owned by an external pipeline; the core only defines the contract.
type Plugin interface {
	Name() string
	// Before returns the hook to run before stage, or nil when the plugin
	// does not hook it.
	Before(stage Stage) StageHook
	// After returns the hook to run after stage, or nil.
	After(stage Stage) StageHook
}
