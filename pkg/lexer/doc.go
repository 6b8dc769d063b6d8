// Package lexer provides a configurable, error-tolerant lexical scanner.
//
// A Lexer is built from an ordered set of rules, each mapping a pattern to
// a token type. Patterns come in three variants — anchored regular
// expressions, literal strings, and custom matcher functions — all
// compiled to the same match-at-offset capability under the lexer's
// case-sensitivity policy.
//
// # Basic Usage
//
//	l := lexer.New(lexer.Config{Rules: []lexer.Rule{
//	    {Type: "NUM", Pattern: lexer.Regex(`[0-9]+`)},
//	    {Type: "PLUS", Pattern: lexer.Literal("+")},
//	}})
//	ts := l.Tokenize("1 + 2")
//	for ts.HasMore() {
//	    tok, _ := ts.Consume()
//	    fmt.Println(tok)
//	}
//
// Rules are tried in precedence order (higher first, registration order on
// ties); the first match wins. Input no rule matches is never fatal: the
// scanner emits a single-character ERROR token and continues, so a full
// scan always covers the whole source.
//
// # Rule Actions
//
// A rule may carry an action that builds the token from the matched text,
// or returns nil to discard the match entirely:
//
//	{Type: "COMMENT", Pattern: lexer.Regex(`//[^\n]*`),
//	    Action: func(string, token.Position) *token.Token { return nil }}
//
// # Validation
//
// ValidateRules reports structural problems — an empty rule set,
// uncompilable patterns, ambiguous duplicate types — as a diag.Result
// without ever panicking; Tokenize itself performs no validation.
package lexer
