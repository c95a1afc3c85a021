// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package sfcinsert

import "errors"

// Sentinel errors for sfcinsert operations.
var (
	// ErrInvalidRule indicates malformed or unsupported rule input.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrInvalidPattern indicates malformed or unsupported path pattern.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidConfig indicates a config file that cannot be decoded.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrParse indicates component source the parser could not turn into a tree.
	ErrParse = errors.New("parse component")
	// ErrNilEngine indicates a nil Engine receiver.
	ErrNilEngine = errors.New("engine is nil")
)
