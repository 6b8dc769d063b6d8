package lexer

import (
	"fmt"
	"regexp"
	"strings"
)

// matchFunc attempts a match at the given byte offset of source. It returns
// the matched prefix and true, or "" and false when the pattern does not
// match there.
type matchFunc func(source string, offset int) (string, bool)

// Pattern is one of three pattern variants a rule can carry: an anchored
// regular expression, a literal string, or a custom matcher function. Each
// variant compiles to the same match-at-offset capability under the
// lexer's case-sensitivity policy.
type Pattern interface {
	compile(caseSensitive bool) (matchFunc, error)
}

// MatcherFunc is a custom matcher: it returns the matched prefix starting
// exactly at offset, or false when there is no match there.
type MatcherFunc func(source string, offset int) (string, bool)

// Regex returns a regular-expression pattern. The expression is prefix
// matched: it is anchored to the start of the remaining input, with a
// leading ^ folded into the anchor. A leading inline flag group is kept,
// except that a global flag is dropped (matching is attempted once per
// offset) and the case-insensitive flag is forced to agree with the
// lexer's case policy.
func Regex(expr string) Pattern {
	return regexPattern{expr: expr}
}

// Literal returns a pattern that matches text exactly, with every
// character escaped. The lexer's case policy applies the same way it does
// for Regex.
func Literal(text string) Pattern {
	return literalPattern{text: text}
}

// Match returns a pattern backed by a custom matcher function, the escape
// hatch for constructs regular expressions cannot express. The case policy
// is not applied; the function sees the source as-is.
func Match(fn MatcherFunc) Pattern {
	return funcPattern{fn: fn}
}

type regexPattern struct {
	expr string
}

var leadingFlags = regexp.MustCompile(`^\(\?([a-zA-Z]+)\)`)

func (p regexPattern) compile(caseSensitive bool) (matchFunc, error) {
	expr := p.expr
	flags := ""
	if m := leadingFlags.FindStringSubmatch(expr); m != nil {
		flags = m[1]
		expr = expr[len(m[0]):]
	}
	flags = strings.ReplaceAll(flags, "g", "")
	// The lexer's case policy overrides any per-pattern case flag.
	flags = strings.ReplaceAll(flags, "i", "")
	if !caseSensitive {
		flags += "i"
	}

	// Embedded case modifiers are overridden by the policy as well.
	expr = strings.ReplaceAll(expr, "(?i)", "")
	expr = strings.ReplaceAll(expr, "(?i:", "(?:")

	expr = strings.TrimPrefix(expr, "^")
	full := `\A(?:` + expr + `)`
	if flags != "" {
		full = "(?" + flags + ")" + full
	}

	re, err := regexp.Compile(full)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", p.expr, err)
	}

	return func(source string, offset int) (string, bool) {
		loc := re.FindStringIndex(source[offset:])
		// A zero-length match cannot advance the scan; treat it as no match.
		if loc == nil || loc[1] == 0 {
			return "", false
		}
		return source[offset : offset+loc[1]], true
	}, nil
}

type literalPattern struct {
	text string
}

func (p literalPattern) compile(caseSensitive bool) (matchFunc, error) {
	return regexPattern{expr: regexp.QuoteMeta(p.text)}.compile(caseSensitive)
}

type funcPattern struct {
	fn MatcherFunc
}

func (p funcPattern) compile(caseSensitive bool) (matchFunc, error) {
	if p.fn == nil {
		return nil, fmt.Errorf("nil matcher function")
	}
	fn := p.fn
	return func(source string, offset int) (string, bool) {
		m, ok := fn(source, offset)
		if !ok || m == "" {
			return "", false
		}
		return m, true
	}, nil
}
