// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package sfcinsert

// MergeRules merges rule slices preserving input order.
func MergeRules(ruleSets ...[]Rule) []Rule {
	total := 0
	for _, set := range ruleSets {
		total += len(set)
	}

	out := make([]Rule, 0, total)
	for _, set := range ruleSets {
		out = append(out, set...)
	}

	return out
}

// MergeOptions layers over on top of base.
//
// Rules are concatenated (base first), extensions are unioned in order,
// and non-zero scalar fields of over replace those of base.
func MergeOptions(base Options, over Options) Options {
	out := base
	out.Rules = MergeRules(base.Rules, over.Rules)
	out.Extensions = mergeExtensions(base.Extensions, over.Extensions)

	if over.Flag != "" {
		out.Flag = over.Flag
	}

	if over.IgnoreFlag != "" {
		out.IgnoreFlag = over.IgnoreFlag
	}

	out.CaseInsensitive = base.CaseInsensitive || over.CaseInsensitive
	out.Debug = base.Debug || over.Debug

	if over.Logger != nil {
		out.Logger = over.Logger
	}

	if over.Parser != nil {
		out.Parser = over.Parser
	}

	return out
}

// mergeExtensions unions extension lists keeping first-seen order.
func mergeExtensions(a []string, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, rule := range ParseExtensions(append(append([]string(nil), a...), b...)) {
		if _, ok := seen[rule.Pattern]; ok {
			continue
		}

		seen[rule.Pattern] = struct{}{}
		out = append(out, rule.Pattern)
	}

	return out
}
