// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package sfcinsert

const (
	scriptTag   = "script"
	markupTag   = "template"
	setupMarker = "setup"

	markupOpen  = "<template>"
	markupClose = "</template>"
)

// RegionKind names an anchor region.
type RegionKind uint8

const (
	// RegionScript is the content of the script setup block.
	RegionScript RegionKind = iota + 1
	// RegionMarkup is the content of the template block.
	RegionMarkup
)

// String returns the block tag name of kind.
func (k RegionKind) String() string {
	switch k {
	case RegionScript:
		return scriptTag
	case RegionMarkup:
		return markupTag
	default:
		return "unknown"
	}
}

// Region is the content span of one anchor region.
type Region struct {
	// Kind is the region kind.
	Kind RegionKind `json:"kind" yaml:"kind"`
	// Start is the offset just inside the opening tag.
	Start int `json:"start" yaml:"start"`
	// End is the offset just inside the closing tag.
	End int `json:"end" yaml:"end"`
	// Found reports whether the parser produced the region.
	Found bool `json:"found" yaml:"found"`
}

// Present reports whether region can be used as an insertion target.
func (r Region) Present() bool {
	return r.Found && r.Start >= 0 && r.Start <= r.End
}

// AnchorSet holds the content spans of both regions of one document.
type AnchorSet struct {
	Script Region `json:"script" yaml:"script"`
	Markup Region `json:"markup" yaml:"markup"`
}

// Locate derives anchors from the top-level children of root.
//
// The first script child counts only when it carries the setup marker and a
// non-empty text child. The first template child counts when its span leaves
// room for both tags. Missing or inconsistent regions are reported as not present.
func Locate(root *Node) AnchorSet {
	set := AnchorSet{
		Script: Region{Kind: RegionScript},
		Markup: Region{Kind: RegionMarkup},
	}

	if script := root.Child(scriptTag); script != nil && script.HasProp(setupMarker) {
		if text := script.firstText(); text != nil {
			set.Script.Start = text.Loc.Start.Offset
			set.Script.End = text.Loc.End.Offset
			set.Script.Found = true
		}
	}

	if markup := root.Child(markupTag); markup != nil {
		set.Markup.Start = markup.Loc.Start.Offset + len(markupOpen)
		set.Markup.End = markup.Loc.End.Offset - len(markupClose)
		set.Markup.Found = true
	}

	return set
}
