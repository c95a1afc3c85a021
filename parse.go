// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package sfcinsert

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParsePatterns parses gitignore-like selection patterns from reader.
//
// Semantics:
// - blank lines and comments are ignored
// - plain lines create include rule
// - "!" creates exclude rule
// - "\#" and "\!" escape leading comment/negation tokens
func ParsePatterns(r io.Reader) ([]PathRule, error) {
	s := bufio.NewScanner(r)
	rules := make([]PathRule, 0, 8)

	for s.Scan() {
		if rule, ok := parsePatternLine(s.Text()); ok {
			rules = append(rules, rule)
		}
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan patterns: %w", err)
	}

	return rules, nil
}

// ParsePatternsString parses patterns from string input.
func ParsePatternsString(src string) ([]PathRule, error) {
	return ParsePatterns(strings.NewReader(src))
}

// ParsePatternList parses patterns given one per slice element, as in Rule.Match.
func ParsePatternList(lines []string) []PathRule {
	rules := make([]PathRule, 0, len(lines))
	for _, line := range lines {
		if rule, ok := parsePatternLine(line); ok {
			rules = append(rules, rule)
		}
	}

	return rules
}

// parsePatternLine parses one pattern line, reporting false for blanks and comments.
func parsePatternLine(line string) (PathRule, bool) {
	line = trimTrailingSpaces(strings.TrimRight(line, "\r"))
	line = strings.TrimLeft(line, " \t")
	if line == "" || strings.HasPrefix(line, "#") {
		return PathRule{}, false
	}

	if strings.HasPrefix(line, `\#`) {
		line = line[1:]
	}

	action := ActionInclude
	if strings.HasPrefix(line, "!") {
		action = ActionExclude
		line = line[1:]
	} else if strings.HasPrefix(line, `\!`) {
		line = line[1:]
	}

	if line == "" {
		return PathRule{}, false
	}

	return PathRule{Action: action, Pattern: line}, true
}

// trimTrailingSpaces removes trailing spaces unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
