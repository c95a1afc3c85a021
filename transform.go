// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package sfcinsert

// TransformSFC inserts frags into component source code using SFCParser.
//
// Unparsable source and source without eligible regions are returned unchanged.
func TransformSFC(code string, frags Fragments) string {
	return transformWith(SFCParser{}, code, frags)
}

// LocateSFC parses code with SFCParser and returns its anchors.
func LocateSFC(code string) (AnchorSet, error) {
	root, err := SFCParser{}.Parse(code)
	if err != nil {
		return AnchorSet{}, err
	}

	return Locate(root), nil
}

// transformWith runs parse, locate and splice with parser.
func transformWith(parser Parser, code string, frags Fragments) string {
	if frags.Empty() {
		return code
	}

	root, err := parser.Parse(code)
	if err != nil || root == nil {
		return code
	}

	return Splice(code, Locate(root), frags)
}
