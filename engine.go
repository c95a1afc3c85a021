// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package sfcinsert

import (
	"fmt"
	"log/slog"
	"strings"
)

// ReadFunc returns current file content, as a dev server reads a changed file.
type ReadFunc func() (string, error)

// Engine selects rules for files and applies their fragments.
//
// Engine is immutable after NewEngine and safe for concurrent use.
type Engine struct {
	// extensions accepts handled file paths.
	extensions *Matcher
	// parser turns source into a node tree.
	parser Parser
	// logger receives debug output.
	logger *slog.Logger
	// flag is a required source prefix when non-empty.
	flag string
	// ignoreFlag is a skip source prefix when non-empty.
	ignoreFlag string
	// rules are compiled in Options.Rules order.
	rules []compiledRule
	// debug enables transformed source logging.
	debug bool
}

// compiledRule is one rule with its resolved predicate.
type compiledRule struct {
	matcher   PathMatcher
	name      string
	fragments Fragments
}

// NewEngine compiles options into an engine.
func NewEngine(opts Options) (*Engine, error) {
	opts.applyDefaults()

	extensions, err := newExtensionMatcher(opts.Extensions)
	if err != nil {
		return nil, fmt.Errorf("compile extensions: %w", err)
	}

	rules := make([]compiledRule, 0, len(opts.Rules))
	for i, rule := range opts.Rules {
		matcher, err := compileRuleMatcher(rule, opts.CaseInsensitive)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, rule.Name, err)
		}

		rules = append(rules, compiledRule{
			matcher:   matcher,
			name:      rule.Name,
			fragments: rule.Fragments,
		})
	}

	return &Engine{
		extensions: extensions,
		parser:     opts.Parser,
		logger:     opts.Logger,
		flag:       opts.Flag,
		ignoreFlag: opts.IgnoreFlag,
		rules:      rules,
		debug:      opts.Debug,
	}, nil
}

// compileRuleMatcher resolves the predicate of one rule.
func compileRuleMatcher(rule Rule, caseInsensitive bool) (PathMatcher, error) {
	if rule.Matcher != nil {
		return rule.Matcher, nil
	}

	patterns := ParsePatternList(rule.Match)
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: no match patterns", ErrInvalidRule)
	}

	return NewMatcher(patterns, MatcherOptions{
		CaseInsensitive: caseInsensitive,
		DefaultAction:   ActionExclude,
	})
}

// Transform applies the first rule accepting path to code.
//
// Files rejected by the extension filter or by the flags are returned
// unhandled. Handled files without an accepting rule are returned unchanged
// with RuleIndex -1.
func (e *Engine) Transform(path string, code string) (Result, error) {
	if e == nil {
		return Result{}, ErrNilEngine
	}

	res := Result{
		Code:      code,
		RuleIndex: -1,
	}

	if !e.Handles(path, code) {
		return res, nil
	}

	res.Handled = true
	for i := range e.rules {
		if !e.rules[i].matcher.Match(path) {
			continue
		}

		res.RuleIndex = i
		res.Code = transformWith(e.parser, code, e.rules[i].fragments)
		res.Changed = res.Code != code

		if e.debug {
			e.logger.Info("transformed component",
				slog.String("path", path),
				slog.Int("rule", i),
				slog.String("rule_name", e.rules[i].name),
				slog.Bool("changed", res.Changed),
				slog.String("code", res.Code),
			)
		}

		break
	}

	return res, nil
}

// Handles reports whether path and code pass the extension and flag filters.
func (e *Engine) Handles(path string, code string) bool {
	if e == nil || !e.extensions.Match(path) {
		return false
	}

	if e.ignoreFlag != "" && strings.HasPrefix(code, e.ignoreFlag) {
		return false
	}

	if e.flag != "" && !strings.HasPrefix(code, e.flag) {
		return false
	}

	return true
}

// WrapRead wraps read so content read for path goes through Transform.
//
// Read errors are returned as is. Paths rejected by the extension filter
// get read back unwrapped.
func (e *Engine) WrapRead(path string, read ReadFunc) ReadFunc {
	if e == nil || read == nil || !e.extensions.Match(path) {
		return read
	}

	return func() (string, error) {
		code, err := read()
		if err != nil {
			return "", err
		}

		res, err := e.Transform(path, code)
		if err != nil {
			return code, err
		}

		return res.Code, nil
	}
}

// RuleCount returns the number of compiled rules.
func (e *Engine) RuleCount() int {
	if e == nil {
		return 0
	}

	return len(e.rules)
}
