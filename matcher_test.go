// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package sfcinsert

import (
	"errors"
	"testing"
)

func mustMatcher(t *testing.T, src string, opts MatcherOptions) *Matcher {
	t.Helper()

	rules, err := ParsePatternsString(src)
	if err != nil {
		t.Fatalf("ParsePatternsString: %v", err)
	}

	m, err := NewMatcher(rules, opts)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}

	return m
}

func TestMatcherSelection(t *testing.T) {
	t.Parallel()

	m := mustMatcher(t, `
pages/
!pages/admin/**
pages/admin/login.vue
`, MatcherOptions{DefaultAction: ActionExclude})

	tests := []struct {
		path string
		want bool
	}{
		{path: "src/pages/index.vue", want: true},
		{path: "/home/dev/app/src/pages/blog/post.vue", want: true},
		{path: "src/pages/admin/users.vue", want: false},
		{path: "src/pages/admin/login.vue", want: true},
		{path: "src/mypages/index.vue", want: false},
		{path: "src/components/pages.vue", want: false},
	}

	for _, tt := range tests {
		tt := tt
		if got := m.Match(tt.path); got != tt.want {
			t.Fatalf("Match(%q)=%v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestMatcherAnchoredPattern(t *testing.T) {
	t.Parallel()

	m := mustMatcher(t, "/src/pages/*.vue", MatcherOptions{DefaultAction: ActionExclude})

	if !m.Match("src/pages/index.vue") {
		t.Fatalf("src/pages/index.vue must match")
	}

	if !m.Match("./src/pages/index.vue") {
		t.Fatalf("./src/pages/index.vue must match after normalization")
	}

	if m.Match("packages/web/src/pages/index.vue") {
		t.Fatalf("nested src/pages must not match anchored pattern")
	}

	if m.Match("src/pages/blog/post.vue") {
		t.Fatalf("single-segment wildcard must not cross directories")
	}
}

func TestMatcherCharClass(t *testing.T) {
	t.Parallel()

	m := mustMatcher(t, "Step[0-2].vue\nItem[!0-9].vue", MatcherOptions{DefaultAction: ActionExclude})

	for path, want := range map[string]bool{
		"wizard/Step1.vue": true,
		"wizard/Step9.vue": false,
		"list/ItemA.vue":   true,
		"list/Item7.vue":   false,
	} {
		if got := m.Match(path); got != want {
			t.Fatalf("Match(%q)=%v, want %v", path, got, want)
		}
	}
}

func TestMatcherCaseInsensitive(t *testing.T) {
	t.Parallel()

	m := mustMatcher(t, "Pages/*.VUE", MatcherOptions{
		CaseInsensitive: true,
		DefaultAction:   ActionExclude,
	})

	if !m.Match(`C:\app\src\PAGES\Home.vue`) {
		t.Fatalf("windows path must match in case-insensitive mode")
	}

	strict := mustMatcher(t, "Pages/*.VUE", MatcherOptions{DefaultAction: ActionExclude})
	if strict.Match("src/pages/Home.vue") {
		t.Fatalf("case-sensitive matcher must not ignore case")
	}
}

func TestMatcherDoubleStar(t *testing.T) {
	t.Parallel()

	m := mustMatcher(t, "src/**/Layout.vue\nlayouts/**", MatcherOptions{DefaultAction: ActionExclude})

	for path, want := range map[string]bool{
		"src/Layout.vue":                true,
		"src/a/b/Layout.vue":            true,
		"web/src/a/Layout.vue":          true,
		"src/a/Layouts.vue":             false,
		"app/layouts/default.vue":       true,
		"app/layouts/admin/default.vue": true,
		"app/layouts":                   false,
	} {
		if got := m.Match(path); got != want {
			t.Fatalf("Match(%q)=%v, want %v", path, got, want)
		}
	}
}

func TestMatcherDecide(t *testing.T) {
	t.Parallel()

	m, err := NewMatcher(nil, MatcherOptions{})
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}

	got := m.Decide("src/App.vue")
	if !got.Included || got.Matched || got.RuleIndex != -1 {
		t.Fatalf("unexpected fallback decision: %+v", got)
	}

	m = mustMatcher(t, "*.vue\n!App.vue", MatcherOptions{DefaultAction: ActionExclude})
	got = m.Decide("src/App.vue")
	if got.Included || !got.Matched || got.RuleIndex != 1 {
		t.Fatalf("Decide()=%+v, want exclusion by rule 1", got)
	}

	if !m.Excluded("src/App.vue") || m.Excluded("src/Home.vue") {
		t.Fatalf("unexpected Excluded results")
	}

	if m.Match("") {
		t.Fatalf("empty path must not match")
	}
}

func TestMatcherInvalidRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule PathRule
		want error
	}{
		{name: "unknown action", rule: PathRule{Pattern: "*.vue"}, want: ErrInvalidRule},
		{name: "empty pattern", rule: PathRule{Action: ActionInclude, Pattern: "  "}, want: ErrInvalidPattern},
		{name: "root only", rule: PathRule{Action: ActionInclude, Pattern: "/"}, want: ErrInvalidPattern},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewMatcher([]PathRule{tt.rule}, MatcherOptions{})
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewMatcher err=%v, want %v", err, tt.want)
			}
		})
	}
}

func TestMatchFunc(t *testing.T) {
	t.Parallel()

	var calls int
	var m PathMatcher = MatchFunc(func(path string) bool {
		calls++
		return path == "a.vue"
	})

	if !m.Match("a.vue") || m.Match("b.vue") || calls != 2 {
		t.Fatalf("MatchFunc must delegate every call, calls=%d", calls)
	}
}
