// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package sfcinsert

// PathMatcher is a pure predicate over a file path or module id.
type PathMatcher interface {
	Match(path string) bool
}

// MatchFunc adapts a plain function to PathMatcher.
type MatchFunc func(path string) bool

// Match calls f(path).
func (f MatchFunc) Match(path string) bool {
	return f(path)
}

// Matcher evaluates path decisions against compiled ordered patterns.
type Matcher struct {
	compiled        []compiledPattern
	defaultAction   Action
	caseInsensitive bool
}

// NewMatcher compiles ordered path rules into matcher.
func NewMatcher(rules []PathRule, opts MatcherOptions) (*Matcher, error) {
	opts.applyDefaults()

	compiled := make([]compiledPattern, 0, len(rules))
	for _, rule := range rules {
		cp, err := compilePattern(rule, opts.CaseInsensitive)
		if err != nil {
			return nil, err
		}

		compiled = append(compiled, *cp)
	}

	return &Matcher{
		compiled:        compiled,
		defaultAction:   opts.DefaultAction,
		caseInsensitive: opts.CaseInsensitive,
	}, nil
}

// Decide returns deterministic include/exclude decision for one path.
//
// Decision policy:
// - last matched pattern wins
// - if no pattern matched, default action is used
func (m *Matcher) Decide(path string) MatchResult {
	candidate := normalizePath(path)
	if m.caseInsensitive {
		candidate = asciiLower(candidate)
	}

	res := MatchResult{
		Included:  m.defaultAction == ActionInclude,
		Matched:   false,
		RuleIndex: -1,
	}

	for i := range m.compiled {
		if !m.compiled[i].matches(candidate) {
			continue
		}

		res.Matched = true
		res.RuleIndex = i
		res.Included = m.compiled[i].source.Action == ActionInclude
	}

	return res
}

// Match reports whether path is included, so Matcher satisfies PathMatcher.
func (m *Matcher) Match(path string) bool {
	return m.Decide(path).Included
}

// Excluded reports whether path is excluded by decision policy.
func (m *Matcher) Excluded(path string) bool {
	return !m.Decide(path).Included
}
