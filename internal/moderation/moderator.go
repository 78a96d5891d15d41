// Package moderation screens user-written dare text. It implements a fixed
// heuristic contract (lexicon, patterns, spam ratios), not a complete filter.
package moderation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dareus/dareguard/internal/policy"
)

// Length bounds of the trimmed text, in characters.
const (
	MinLength = 5
	MaxLength = 500
)

// Messages, in pipeline order.
const (
	MsgEmpty      = "Dare text cannot be empty"
	MsgTooShort   = "Dare text too short (minimum 5 characters)"
	MsgTooLong    = "Dare text too long (maximum 500 characters)"
	MsgProfanity  = "Dare contains inappropriate language"
	MsgURL        = "Dares cannot contain URLs or links"
	MsgPhone      = "Dares cannot contain phone numbers"
	MsgEmail      = "Dares cannot contain email addresses"
	MsgSpecial    = "Dare contains too many special characters"
	MsgCaps       = "Please don't use excessive capital letters"
	MsgDangerous  = "Dare may involve dangerous or harmful activities"
	MsgAcceptable = "Dare content is acceptable"
)

const (
	specialRatio  = 0.3
	capsRatio     = 0.7
	capsMinLength = 10
)

var (
	urlRe   = regexp.MustCompile(`(?i)(https?://|www\.|\.com|\.org|\.net)`)
	phoneRe = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9_-]+`)

	leet = strings.NewReplacer("1", "i", "3", "e", "4", "a", "5", "s", "7", "t", "0", "o", "@", "a", "$", "s")
)

// Verdict is the outcome of Moderate. Cleaned is set only when Valid.
type Verdict struct {
	Valid   bool
	Errors  []string
	Cleaned string
}

// Message is the first error, or the acceptance message.
func (v Verdict) Message() string {
	if len(v.Errors) > 0 {
		return v.Errors[0]
	}
	return MsgAcceptable
}

// Moderator holds compiled rules. It is safe for concurrent use.
type Moderator struct {
	lexicon   *regexp.Regexp
	explicit  []*regexp.Regexp
	dangerous []*regexp.Regexp
}

// New compiles a rule set.
func New(rules policy.ModerationRules) (*Moderator, error) {
	m := &Moderator{}
	if len(rules.Lexicon) > 0 {
		words := make([]string, 0, len(rules.Lexicon))
		for _, w := range rules.Lexicon {
			words = append(words, regexp.QuoteMeta(strings.ToLower(w)))
		}
		m.lexicon = regexp.MustCompile(`(?i)\b(?:` + strings.Join(words, "|") + `)\b`)
	}
	var err error
	if m.explicit, err = compileAll(rules.ExplicitPatterns); err != nil {
		return nil, err
	}
	if m.dangerous, err = compileAll(rules.DangerousPatterns); err != nil {
		return nil, err
	}
	return m, nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compile %q: %w", p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// Moderate runs every check and collects all errors in pipeline order.
func (m *Moderator) Moderate(text string, isCustom bool) Verdict {
	var errs []string
	trimmed := strings.TrimSpace(text)
	n := utf8.RuneCountInString(trimmed)

	if trimmed == "" {
		errs = append(errs, MsgEmpty)
	}
	if n < MinLength {
		errs = append(errs, MsgTooShort)
	}
	if n > MaxLength {
		errs = append(errs, MsgTooLong)
	}
	if m.profane(text) {
		errs = append(errs, MsgProfanity)
	}
	if urlRe.MatchString(text) {
		errs = append(errs, MsgURL)
	}
	if phoneRe.MatchString(text) {
		errs = append(errs, MsgPhone)
	}
	if emailRe.MatchString(text) {
		errs = append(errs, MsgEmail)
	}
	special, letters, upper, total := census(text)
	if float64(special) > float64(total)*specialRatio {
		errs = append(errs, MsgSpecial)
	}
	if total > capsMinLength && letters > 0 && float64(upper)/float64(letters) > capsRatio {
		errs = append(errs, MsgCaps)
	}
	if isCustom && matchAny(m.dangerous, text) {
		errs = append(errs, MsgDangerous)
	}

	if len(errs) > 0 {
		return Verdict{Errors: errs}
	}
	return Verdict{Valid: true, Cleaned: trimmed}
}

func (m *Moderator) profane(raw string) bool {
	if m.lexicon != nil && (m.lexicon.MatchString(raw) || m.lexicon.MatchString(Normalize(raw))) {
		return true
	}
	return matchAny(m.explicit, raw)
}

// Normalize lower-cases, undoes leet substitutions and keeps only a-z.
func Normalize(s string) string {
	s = leet.Replace(strings.ToLower(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// census counts characters outside [A-Za-z0-9] and whitespace, ASCII letters,
// upper-case ASCII letters and all characters.
func census(s string) (special, letters, upper, total int) {
	for _, r := range s {
		total++
		switch {
		case r >= 'A' && r <= 'Z':
			letters++
			upper++
		case r >= 'a' && r <= 'z':
			letters++
		case r >= '0' && r <= '9', unicode.IsSpace(r):
		default:
			special++
		}
	}
	return special, letters, upper, total
}

func matchAny(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
