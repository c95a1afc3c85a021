// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package sfcinsert

import (
	"fmt"
	"regexp"
	"strings"
)

// compiledPattern is matcher-internal compiled representation of one path rule.
//
// Candidates are always file paths, so directory-only patterns match
// descendants of a matching directory and never the basename itself.
type compiledPattern struct {
	// re is matched against the basename when base is set, the full path otherwise.
	re *regexp.Regexp
	// source is the rule the pattern was compiled from.
	source PathRule
	// base means the pattern has no slash and targets the final component.
	base bool
}

// compilePattern compiles one path rule into a regexp matcher.
func compilePattern(rule PathRule, caseInsensitive bool) (*compiledPattern, error) {
	if !rule.Action.valid() {
		return nil, fmt.Errorf("%w: unsupported action %d", ErrInvalidRule, rule.Action)
	}

	pattern := strings.ReplaceAll(strings.TrimSpace(rule.Pattern), `\`, `/`)
	if caseInsensitive {
		pattern = asciiLower(pattern)
	}

	if pattern == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPattern)
	}

	anchored := strings.HasPrefix(pattern, "/")
	dirOnly := strings.HasSuffix(pattern, "/")
	pattern = strings.Trim(pattern, "/")
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty after normalization (%q)", ErrInvalidPattern, rule.Pattern)
	}

	hasSlash := anchored || strings.Contains(pattern, "/")

	var src string
	switch {
	case !hasSlash && !dirOnly:
		src = "^" + globToRegex(pattern, false) + "$"
	case !hasSlash:
		src = `(?:^|/)` + globToRegex(pattern, false) + `/`
	default:
		prefix := `(?:^|.*/)`
		if anchored {
			prefix = `^`
		}

		src = prefix + globToRegex(pattern, true)
		if dirOnly {
			src += `/.*`
		}

		src += `$`
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrInvalidPattern, rule.Pattern, err)
	}

	return &compiledPattern{
		re:     re,
		source: rule,
		base:   !hasSlash && !dirOnly,
	}, nil
}

// matches reports whether pattern matches normalized candidate path.
func (p *compiledPattern) matches(candidate string) bool {
	if candidate == "" {
		return false
	}

	if p.base {
		return p.re.MatchString(pathBase(candidate))
	}

	return p.re.MatchString(candidate)
}

// globToRegex converts a gitignore-like glob to regex body.
// With multiSegment unset "**" behaves like "*".
func globToRegex(pat string, multiSegment bool) string {
	var b strings.Builder

	for i := 0; i < len(pat); i++ {
		if multiSegment && strings.HasPrefix(pat[i:], "**/") {
			// "**/" matches zero or more directories.
			b.WriteString(`(?:.*/)?`)
			i += 2
			continue
		}

		if end := findCharClassEnd(pat, i); end >= 0 {
			writeCharClass(&b, pat[i+1:end])
			i = end
			continue
		}

		switch c := pat[i]; c {
		case '*':
			double := i+1 < len(pat) && pat[i+1] == '*'
			if double {
				i++
			}

			if double && multiSegment {
				b.WriteString(`.*`)
			} else {
				b.WriteString(`[^/]*`)
			}
		case '?':
			b.WriteString(`[^/]`)
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	return b.String()
}

// writeCharClass writes glob char class body as regex class.
func writeCharClass(b *strings.Builder, body string) {
	b.WriteByte('[')

	switch {
	case strings.HasPrefix(body, "!"):
		b.WriteByte('^')
		body = body[1:]
	case strings.HasPrefix(body, "^"):
		b.WriteString(`\^`)
		body = body[1:]
	}

	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\', '[', ']':
			b.WriteByte('\\')
		}

		b.WriteByte(body[i])
	}

	b.WriteByte(']')
}

// findCharClassEnd locates closing bracket for a glob char class starting at start.
func findCharClassEnd(pat string, start int) int {
	if start >= len(pat) || pat[start] != '[' {
		return -1
	}

	idx := start + 1
	if idx < len(pat) && (pat[idx] == '!' || pat[idx] == '^') {
		idx++
	}

	if idx < len(pat) && pat[idx] == ']' {
		idx++
	}

	if end := strings.IndexByte(pat[idx:], ']'); end >= 0 {
		return idx + end
	}

	return -1
}
