// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

/*
Package sfcinsert inserts text fragments into Vue single-file components.

Fragments are placed just inside the boundaries of the `<template>` block and the
`<script setup>` block. Offsets stay valid across up to four sequential insertions
into the same buffer, whatever the relative order of the two blocks.

Basic flow:
  - parse component source (`SFCParser` or any `Parser`)
  - locate content anchors (`Locate`)
  - splice fragments into the source (`Splice`)
  - or do all three at once (`TransformSFC`)

For file pipelines, use `Engine`:
  - filter files by extension (`Options.Extensions`, `ParseExtensions`)
  - honor opt-in/opt-out prefix markers (`Options.Flag`, `Options.IgnoreFlag`)
  - select the first rule whose gitignore-like path patterns accept the file
  - load rules from YAML (`LoadConfigFile`) and merge several files (`MergeOptions`)
  - wrap hot-reload readers (`WrapRead`)

Offsets are byte offsets into UTF-8 source. Nothing is shared between calls,
so every function and a constructed `Engine` are safe for concurrent use.
*/
package sfcinsert
