package lexer

import (
	"sort"

	"github.com/leapstack-labs/lexkit/pkg/token"
)

// ActionFunc builds the token for a matched rule. value is the raw matched
// text and pos its start position. Returning nil discards the match (the
// matched text is still consumed), which is how comment rules suppress
// output.
type ActionFunc func(value string, pos token.Position) *token.Token

// Rule maps a pattern to a token type.
type Rule struct {
	Type       token.Type
	Pattern    Pattern
	Precedence int        // higher tries first; ties keep registration order
	Action     ActionFunc // optional
}

// compiledRule pairs a rule with its compiled matcher. A rule whose
// pattern failed to compile keeps the error and never matches; the error
// surfaces through ValidateRules.
type compiledRule struct {
	rule  Rule
	match matchFunc
	err   error
}

// sortRules orders rules by precedence descending. The sort is stable, so
// rules of equal precedence keep their registration order.
func sortRules(rules []compiledRule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].rule.Precedence > rules[j].rule.Precedence
	})
}
