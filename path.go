// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package sfcinsert

import (
	"path"
	"strings"
)

// normalizePath converts a module id or file path to slash-separated relative clean form.
//
// Absolute paths and Windows volume names are reduced to their slash form without
// the leading root so unanchored patterns match at any depth.
func normalizePath(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, `\`) {
		raw = strings.ReplaceAll(raw, `\`, `/`)
	}

	if len(raw) >= 2 && raw[1] == ':' && isASCIILetter(raw[0]) {
		raw = raw[2:]
	}

	raw = strings.TrimPrefix(raw, "./")
	raw = strings.TrimLeft(raw, "/")
	if raw == "" {
		return ""
	}

	if isCleanPath(raw) {
		return raw
	}

	raw = strings.TrimPrefix(path.Clean("/"+raw), "/")
	if raw == "." {
		return ""
	}

	return raw
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			continue
		}

		b := []byte(s)
		for j := i; j < len(b); j++ {
			if b[j] >= 'A' && b[j] <= 'Z' {
				b[j] += 'a' - 'A'
			}
		}

		return string(b)
	}

	return s
}

// pathBase returns final path component using slash separator.
func pathBase(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}

	return p
}

// isCleanPath reports whether path needs no path.Clean pass.
func isCleanPath(p string) bool {
	switch {
	case p == "." || p == "..":
		return false
	case strings.HasSuffix(p, "/"),
		strings.HasPrefix(p, "../"),
		strings.HasSuffix(p, "/.."),
		strings.HasSuffix(p, "/."):
		return false
	case strings.Contains(p, "//"),
		strings.Contains(p, "/./"),
		strings.Contains(p, "/../"):
		return false
	}

	return true
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
