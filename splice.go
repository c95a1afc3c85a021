// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package sfcinsert

import "strings"

// anchor indexes one of the four insertion points.
type anchor uint8

const (
	anchorScriptStart anchor = iota
	anchorScriptEnd
	anchorMarkupStart
	anchorMarkupEnd

	anchorCount
)

// insertion is one planned splice step.
type insertion struct {
	text string
	at   anchor
}

// Splice inserts fragments into doc at the anchors of present regions.
//
// Regions are processed in document order, top before bottom. Each fragment
// is wrapped in newlines, and every anchor not yet used that sits at or after
// the insertion point is shifted by the inserted length. Regions extending
// past the end of doc are treated as absent. doc is returned as is when
// nothing is inserted.
func Splice(doc string, anchors AnchorSet, frags Fragments) string {
	script := anchors.Script.Present() && anchors.Script.End <= len(doc)
	markup := anchors.Markup.Present() && anchors.Markup.End <= len(doc)

	scriptSteps := [2]insertion{
		{at: anchorScriptStart, text: frags.ScriptTop},
		{at: anchorScriptEnd, text: frags.ScriptBottom},
	}
	markupSteps := [2]insertion{
		{at: anchorMarkupStart, text: frags.MarkupTop},
		{at: anchorMarkupEnd, text: frags.MarkupBottom},
	}

	plan := make([]insertion, 0, anchorCount)
	switch {
	case script && markup:
		// Equal starts cannot happen for well-formed input; they take the script-first order.
		if anchors.Markup.Start < anchors.Script.Start {
			plan = append(append(plan, markupSteps[:]...), scriptSteps[:]...)
		} else {
			plan = append(append(plan, scriptSteps[:]...), markupSteps[:]...)
		}
	case markup:
		plan = append(plan, markupSteps[:]...)
	case script:
		plan = append(plan, scriptSteps[:]...)
	default:
		return doc
	}

	offsets := [anchorCount]int{
		anchorScriptStart: anchors.Script.Start,
		anchorScriptEnd:   anchors.Script.End,
		anchorMarkupStart: anchors.Markup.Start,
		anchorMarkupEnd:   anchors.Markup.End,
	}

	var used [anchorCount]bool
	for _, step := range plan {
		used[step.at] = true
		if step.text == "" {
			continue
		}

		at := offsets[step.at]
		wrapped := "\n" + step.text + "\n"
		doc = insertAt(doc, at, wrapped)

		for i := range offsets {
			if !used[i] && offsets[i] >= at {
				offsets[i] += len(wrapped)
			}
		}
	}

	return doc
}

// insertAt returns doc with text inserted at byte offset at.
func insertAt(doc string, at int, text string) string {
	var b strings.Builder
	b.Grow(len(doc) + len(text))
	b.WriteString(doc[:at])
	b.WriteString(text)
	b.WriteString(doc[at:])

	return b.String()
}
