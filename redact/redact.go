// Package redact provides a reusable scrubbing layer for sanitizing PII
// from parsed transcripts before analysis or rendering.
package redact

import (
	"regexp"

	"github.com/sonnes/chatroast/core"
)

// Config controls which rules the Redactor applies.
type Config struct {
	PII        bool
	ExtraRules []Rule
	Allowlist  []string // regex patterns to skip
}

// Redactor applies redaction rules to every message body in a
// ParseResult. Senders are left intact so participation statistics stay
// meaningful.
type Redactor struct {
	rules     []Rule
	allowlist []*regexp.Regexp
}

// New creates a Redactor from the given config.
func New(cfg Config) *Redactor {
	var rules []Rule
	if cfg.PII {
		rules = append(rules, PIIRules()...)
	}
	rules = append(rules, cfg.ExtraRules...)

	allowlist := make([]*regexp.Regexp, 0, len(cfg.Allowlist))
	for _, pattern := range cfg.Allowlist {
		if re, err := regexp.Compile(pattern); err == nil {
			allowlist = append(allowlist, re)
		}
	}

	return &Redactor{rules: rules, allowlist: allowlist}
}

// Transform implements core.Transformer.
func (r *Redactor) Transform(res *core.ParseResult) error {
	for i := range res.Messages {
		res.Messages[i].Body = r.redact(res.Messages[i].Body)
	}
	return nil
}

func (r *Redactor) redact(s string) string {
	for _, rule := range r.rules {
		matches := rule.Detect(s)
		// Replace back-to-front so earlier offsets stay valid.
		for i := len(matches) - 1; i >= 0; i-- {
			m := matches[i]
			if r.allowed(m.Value) {
				continue
			}
			s = s[:m.Start] + rule.Replacement(m) + s[m.End:]
		}
	}
	return s
}

func (r *Redactor) allowed(value string) bool {
	for _, re := range r.allowlist {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}
