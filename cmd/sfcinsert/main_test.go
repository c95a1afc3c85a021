// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

const testComponent = "<template><main/></template>\n<script setup>\nx\n</script>\n"

const testConfig = `
rules:
  - name: tip
    match: ["*.vue"]
    markup_top: <Tip/>
    script_bottom: useTip()
`

// runCLI parses args and runs the selected command, returning its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var cli CLI
	parser, err := kong.New(&cli, kongOptions()...)
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}

	var stdout bytes.Buffer
	err = ctx.Run(&env{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		stdout: &stdout,
	})

	return stdout.String(), err
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

func setupProject(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := filepath.Join(dir, "sfcinsert.yaml")
	writeFile(t, cfg, testConfig)
	writeFile(t, filepath.Join(dir, "src", "App.vue"), testComponent)
	writeFile(t, filepath.Join(dir, "src", "main.ts"), "import App from './App.vue'\n")
	writeFile(t, filepath.Join(dir, "node_modules", "lib", "Lib.vue"), testComponent)

	return dir, cfg
}

const wantComponent = "<template>\n<Tip/>\n<main/></template>\n<script setup>\nx\n\nuseTip()\n</script>\n"

func TestApplyPrints(t *testing.T) {
	t.Parallel()

	dir, cfg := setupProject(t)
	app := filepath.Join(dir, "src", "App.vue")

	out, err := runCLI(t, "apply", "-c", cfg, filepath.Join(dir, "src"))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if want := "==> " + app + " <==\n" + wantComponent + "\n"; out != want {
		t.Fatalf("apply output=%q, want %q", out, want)
	}

	data, err := os.ReadFile(app)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if string(data) != testComponent {
		t.Fatalf("apply without --write must not modify files")
	}
}

func TestApplyWrite(t *testing.T) {
	t.Parallel()

	dir, cfg := setupProject(t)

	out, err := runCLI(t, "apply", "--write", "-c", cfg, dir)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if out != "" {
		t.Fatalf("apply --write output=%q, want empty", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, "src", "App.vue"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if string(data) != wantComponent {
		t.Fatalf("App.vue=%q, want %q", data, wantComponent)
	}

	lib, err := os.ReadFile(filepath.Join(dir, "node_modules", "lib", "Lib.vue"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if string(lib) != testComponent {
		t.Fatalf("node_modules must be skipped")
	}
}

func TestApplyErrors(t *testing.T) {
	t.Parallel()

	dir, _ := setupProject(t)

	if _, err := runCLI(t, "apply", filepath.Join(dir, "src")); err == nil {
		t.Fatalf("apply without config must fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "rules:\n  - name: broken\n")
	if _, err := runCLI(t, "apply", "-c", bad, dir); err == nil || !strings.Contains(err.Error(), "broken") {
		t.Fatalf("apply with rule without patterns err=%v", err)
	}
}

func TestAnchors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	app := filepath.Join(dir, "App.vue")
	plain := filepath.Join(dir, "Plain.vue")
	writeFile(t, app, testComponent)
	writeFile(t, plain, "<script>\nexport default {}\n</script>\n")

	out, err := runCLI(t, "anchors", app, plain)
	if err != nil {
		t.Fatalf("anchors: %v", err)
	}

	want := app + "\ttemplate\t10\t17\t\"<main/>\"\n" +
		app + "\tscript\t43\t46\t\"\\nx\\n\"\n" +
		plain + "\ttemplate\tabsent\n" +
		plain + "\tscript\tabsent\n"

	if out != want {
		t.Fatalf("anchors output=%q, want %q", out, want)
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}

	if out != "sfcinsert version dev\n" {
		t.Fatalf("version output=%q", out)
	}
}
