package lexer

import (
	"fmt"
	"io"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/lexkit/pkg/stream"
	"github.com/leapstack-labs/lexkit/pkg/token"
)

// Config configures a Lexer. Optional fields are resolved once at New;
// scan-time code never consults them.
type Config struct {
	// Rules is the initial rule set.
	Rules []Rule
	// SkipWhitespace controls whitespace skipping between tokens.
	// Nil means true.
	SkipWhitespace *bool
	// WhitespacePattern, when set, restricts skipping to characters
	// matching the pattern instead of the standard whitespace classes.
	WhitespacePattern Pattern
	// CaseSensitive controls whether patterns match case exactly. The
	// policy overrides any case flag embedded in an individual pattern.
	// Nil means true.
	CaseSensitive *bool
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// Lexer converts source text into a token stream according to its rule
// set. Rules are tried in precedence order (higher first, stable on ties);
// the first rule that matches at an offset wins, so overlapping patterns
// are ordered by their authors via precedence, not by match length.
//
// The rule set is mutable shared state across Tokenize calls. No internal
// locking is provided: callers using a Lexer from multiple goroutines must
// serialize rule and configuration mutation against in-flight
// tokenization.
type Lexer struct {
	rules          []compiledRule // precedence-sorted, stable on ties
	skipWhitespace bool
	wsPattern      Pattern   // nil = standard whitespace classes
	wsMatch        matchFunc // compiled wsPattern
	caseSensitive  bool
	logger         *slog.Logger
}

// New creates a Lexer from cfg, resolving defaults.
func New(cfg Config) *Lexer {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	l := &Lexer{
		skipWhitespace: cfg.SkipWhitespace == nil || *cfg.SkipWhitespace,
		caseSensitive:  cfg.CaseSensitive == nil || *cfg.CaseSensitive,
		logger:         logger,
	}
	l.setWhitespacePattern(cfg.WhitespacePattern)
	for _, r := range cfg.Rules {
		l.rules = append(l.rules, l.compileRule(r))
	}
	sortRules(l.rules)
	return l
}

// AddRule appends a rule and re-sorts the rule set.
func (l *Lexer) AddRule(r Rule) {
	l.rules = append(l.rules, l.compileRule(r))
	sortRules(l.rules)
}

// RemoveRule removes every rule whose type equals t.
func (l *Lexer) RemoveRule(t token.Type) {
	kept := l.rules[:0]
	for _, cr := range l.rules {
		if cr.rule.Type != t {
			kept = append(kept, cr)
		}
	}
	l.rules = kept
}

// Rules returns a snapshot of the rule set in match order. Mutating the
// returned slice does not affect the lexer.
func (l *Lexer) Rules() []Rule {
	out := make([]Rule, len(l.rules))
	for i, cr := range l.rules {
		out[i] = cr.rule
	}
	return out
}

// SetCaseSensitive updates the case policy and recompiles every pattern.
// Takes effect on the next Tokenize call.
func (l *Lexer) SetCaseSensitive(sensitive bool) {
	if l.caseSensitive == sensitive {
		return
	}
	l.caseSensitive = sensitive
	for i := range l.rules {
		l.rules[i] = l.compileRule(l.rules[i].rule)
	}
	l.setWhitespacePattern(l.wsPattern)
}

// SetSkipWhitespace enables or disables whitespace skipping. Takes effect
// on the next Tokenize call.
func (l *Lexer) SetSkipWhitespace(skip bool) {
	l.skipWhitespace = skip
}

// SetWhitespacePattern restricts whitespace skipping to characters
// matching p. A nil pattern restores the standard whitespace definition.
// Takes effect on the next Tokenize call.
func (l *Lexer) SetWhitespacePattern(p Pattern) {
	l.setWhitespacePattern(p)
}

func (l *Lexer) setWhitespacePattern(p Pattern) {
	l.wsPattern = p
	l.wsMatch = nil
	if p == nil {
		return
	}
	match, err := p.compile(l.caseSensitive)
	if err != nil {
		// A broken whitespace pattern matches nothing; skipping stops.
		l.logger.Warn("invalid whitespace pattern", "error", err)
		return
	}
	l.wsMatch = match
}

func (l *Lexer) compileRule(r Rule) compiledRule {
	cr := compiledRule{rule: r}
	if r.Pattern == nil {
		cr.err = fmt.Errorf("rule %q has no pattern", r.Type)
		return cr
	}
	cr.match, cr.err = r.Pattern.compile(l.caseSensitive)
	return cr
}

// Tokenize scans source into a fresh token stream. It always runs to
// completion: input no rule matches becomes single-character ERROR tokens
// and the scan continues past them.
func (l *Lexer) Tokenize(source string) *stream.TokenStream {
	return l.TokenizeFile("", source)
}

// TokenizeFile is Tokenize with a source name recorded on every token
// position.
func (l *Lexer) TokenizeFile(filename, source string) *stream.TokenStream {
	st := scanState{source: source, file: filename, line: 1, col: 1}
	var tokens []token.Token
	errorCount := 0

	for st.offset < len(source) {
		if l.skipWhitespace && l.skippableAt(&st) {
			_, size := st.currentRune()
			st.advance(source[st.offset : st.offset+size])
			continue
		}

		if value, cr, ok := l.matchRules(source, st.offset); ok {
			pos := st.pos()
			if cr.rule.Action != nil {
				if tok := cr.rule.Action(value, pos); tok != nil {
					tokens = append(tokens, *tok)
				}
			} else {
				tokens = append(tokens, token.Token{Type: cr.rule.Type, Value: value, Pos: pos})
			}
			st.advance(value)
			continue
		}

		_, size := st.currentRune()
		ch := source[st.offset : st.offset+size]
		tokens = append(tokens, token.Token{
			Type:  token.ERROR,
			Value: ch,
			Pos:   st.pos(),
			Metadata: map[string]any{
				token.MetaError: fmt.Sprintf("Unexpected character: %s", ch),
			},
		})
		errorCount++
		st.advance(ch)
	}

	ts := stream.New(tokens)
	l.logger.Debug("tokenize complete",
		"stream", ts.ID(),
		"file", filename,
		"source_len", len(source),
		"tokens", len(tokens),
		"errors", errorCount)
	return ts
}

// matchRules tries the rules in match order and returns the first match at
// offset. Rules whose pattern failed to compile never match.
func (l *Lexer) matchRules(source string, offset int) (string, *compiledRule, bool) {
	for i := range l.rules {
		cr := &l.rules[i]
		if cr.match == nil {
			continue
		}
		if value, ok := cr.match(source, offset); ok {
			return value, cr, true
		}
	}
	return "", nil, false
}

// skippableAt reports whether the character at the scan position should be
// skipped as whitespace.
func (l *Lexer) skippableAt(st *scanState) bool {
	r, size := st.currentRune()
	if l.wsPattern != nil {
		if l.wsMatch == nil {
			return false
		}
		_, ok := l.wsMatch(st.source[st.offset:st.offset+size], 0)
		return ok
	}
	return unicode.IsSpace(r)
}

// scanState tracks the scan position within one Tokenize call, so the
// Lexer itself stays reusable across sources.
type scanState struct {
	source string
	file   string
	offset int // 0-based byte offset
	line   int // 1-based
	col    int // 1-based, counted in runes
}

func (s *scanState) pos() token.Position {
	return token.Position{Line: s.line, Column: s.col, Offset: s.offset, File: s.file}
}

func (s *scanState) currentRune() (rune, int) {
	return utf8.DecodeRuneInString(s.source[s.offset:])
}

// advance consumes text, updating offset, line and column. A newline
// resets the column to 1 and increments the line.
func (s *scanState) advance(text string) {
	for _, r := range text {
		if r == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
	}
	s.offset += len(text)
}
