package lexer

import (
	"fmt"

	"github.com/leapstack-labs/lexkit/pkg/diag"
	"github.com/leapstack-labs/lexkit/pkg/token"
)

// ValidateRules structurally checks the rule set without touching the
// scanner: an empty rule set and uncompilable patterns are errors, and
// each type registered on more than one rule is a warning, since the
// rules' relative priority is resolved only by position in the sorted
// list. Tokenize performs none of these checks.
func (l *Lexer) ValidateRules() diag.Result {
	res := diag.NewResult()

	if len(l.rules) == 0 {
		res.AddError(diag.Diagnostic{Message: "no rules registered"})
		return res
	}

	counts := make(map[token.Type]int, len(l.rules))
	for _, cr := range l.rules {
		counts[cr.rule.Type]++
	}

	warned := make(map[token.Type]bool)
	for _, cr := range l.rules {
		if cr.err != nil {
			res.AddError(diag.Diagnostic{
				RuleType: cr.rule.Type,
				Message:  fmt.Sprintf("pattern failed to compile: %v", cr.err),
			})
		}
		if counts[cr.rule.Type] > 1 && !warned[cr.rule.Type] {
			warned[cr.rule.Type] = true
			res.AddWarning(diag.Diagnostic{
				RuleType: cr.rule.Type,
				Message: fmt.Sprintf("%d rules registered for type %q; match priority depends on rule order",
					counts[cr.rule.Type], cr.rule.Type),
			})
		}
	}

	return res
}
