// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package sfcinsert

import "strings"

// ParseExtensions converts extension list to include rules.
//
// Accepted extension forms:
//   - "vue"
//   - ".vue"
//   - "*.vue"
//
// Empty values are skipped. Returned patterns are normalized to lower-case
// "*.ext" form and preserve input order.
func ParseExtensions(exts []string) []PathRule {
	rules := make([]PathRule, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		ext = asciiLower(ext)
		if ext == "" {
			continue
		}

		rules = append(rules, PathRule{
			Action:  ActionInclude,
			Pattern: "*." + ext,
		})
	}

	return rules
}

// newExtensionMatcher builds an allow-list matcher accepting only listed extensions.
// Extension matching ignores ASCII case.
func newExtensionMatcher(exts []string) (*Matcher, error) {
	return NewMatcher(ParseExtensions(exts), MatcherOptions{
		CaseInsensitive: true,
		DefaultAction:   ActionExclude,
	})
}
