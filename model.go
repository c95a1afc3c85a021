// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package sfcinsert

import "log/slog"

// Action represents a decision action of one path pattern.
type Action uint8

const (
	// ActionUnknown is unset/invalid action placeholder.
	ActionUnknown Action = iota
	// ActionExclude means matching path should be rejected.
	ActionExclude
	// ActionInclude means matching path should be accepted.
	ActionInclude
)

// PathRule is one gitignore-like path pattern with its action.
type PathRule struct {
	// Pattern is a gitignore-like pattern.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Action is a decision action applied when the pattern matches.
	Action Action `json:"action" yaml:"action"`
}

// MatcherOptions controls matcher behavior.
type MatcherOptions struct {
	// CaseInsensitive enables ASCII case-insensitive matching.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
	// DefaultAction is applied when no pattern matched.
	DefaultAction Action `json:"default_action,omitempty" yaml:"default_action,omitempty"`
}

// MatchResult is a deterministic decision produced by matcher.
type MatchResult struct {
	// Included reports final include decision.
	Included bool `json:"included" yaml:"included"`
	// Matched reports whether at least one pattern matched.
	Matched bool `json:"matched" yaml:"matched"`
	// RuleIndex is the matched pattern index in matcher input order, -1 when no match.
	RuleIndex int `json:"rule_index" yaml:"rule_index"`
}

// Fragments is the text inserted at the four anchor points of a component.
// Empty fields are not inserted.
type Fragments struct {
	// ScriptTop is inserted just after the opening script setup tag.
	ScriptTop string `json:"script_top,omitempty" yaml:"script_top,omitempty"`
	// ScriptBottom is inserted just before the closing script tag.
	ScriptBottom string `json:"script_bottom,omitempty" yaml:"script_bottom,omitempty"`
	// MarkupTop is inserted just after the opening template tag.
	MarkupTop string `json:"markup_top,omitempty" yaml:"markup_top,omitempty"`
	// MarkupBottom is inserted just before the closing template tag.
	MarkupBottom string `json:"markup_bottom,omitempty" yaml:"markup_bottom,omitempty"`
}

// Empty reports whether no fragment is set.
func (f Fragments) Empty() bool {
	return f.ScriptTop == "" && f.ScriptBottom == "" && f.MarkupTop == "" && f.MarkupBottom == ""
}

// Rule pairs a path predicate with the fragments inserted into accepted files.
type Rule struct {
	// Name is an optional label used in logs.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Match lists gitignore-like patterns; "!" negates, last matching pattern wins.
	Match []string `json:"match,omitempty" yaml:"match,omitempty"`
	// Matcher is a programmatic predicate used instead of Match when set.
	Matcher PathMatcher `json:"-" yaml:"-"`
	// Fragments are inserted when the rule is selected.
	Fragments `yaml:",inline"`
}

// Options controls Engine behavior.
type Options struct {
	// Extensions limits handled files by extension. Empty value defaults to "vue".
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	// Flag, when set, limits handled files to sources starting with it.
	Flag string `json:"flag,omitempty" yaml:"flag,omitempty"`
	// IgnoreFlag, when set, skips sources starting with it.
	IgnoreFlag string `json:"ignore_flag,omitempty" yaml:"ignore_flag,omitempty"`
	// Rules are evaluated in order; the first accepting rule is applied.
	Rules []Rule `json:"rules,omitempty" yaml:"rules,omitempty"`
	// CaseInsensitive enables ASCII case-insensitive path matching.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
	// Debug logs every transformed source through Logger.
	Debug bool `json:"debug,omitempty" yaml:"debug,omitempty"`
	// Logger receives debug output. Nil defaults to slog.Default().
	Logger *slog.Logger `json:"-" yaml:"-"`
	// Parser turns source into a node tree. Nil defaults to SFCParser.
	Parser Parser `json:"-" yaml:"-"`
}

// Result is the outcome of Engine.Transform.
type Result struct {
	// Code is the transformed source, or the input when nothing applied.
	Code string `json:"code" yaml:"code"`
	// Handled reports whether the file passed extension and flag filters.
	Handled bool `json:"handled" yaml:"handled"`
	// Changed reports whether Code differs from the input.
	Changed bool `json:"changed" yaml:"changed"`
	// RuleIndex is the applied rule index in Options.Rules, -1 when none.
	RuleIndex int `json:"rule_index" yaml:"rule_index"`
}

const defaultExtension = "vue"

// applyDefaults fills zero-valued options with defaults.
func (opts *MatcherOptions) applyDefaults() {
	if !opts.DefaultAction.valid() {
		opts.DefaultAction = ActionInclude
	}
}

// applyDefaults fills zero-valued options with defaults.
func (opts *Options) applyDefaults() {
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{defaultExtension}
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.Parser == nil {
		opts.Parser = SFCParser{}
	}
}

// valid reports whether action value is supported.
func (a Action) valid() bool {
	return a == ActionExclude || a == ActionInclude
}
