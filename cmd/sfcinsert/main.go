// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

// Command sfcinsert inserts configured fragments into Vue single-file components.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/woozymasta/sfcinsert"
	"github.com/woozymasta/sfcinsert/internal/logging"
)

var version = "dev"

// skipDirs are never descended into when walking directories.
var skipDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
}

// CLI defines the command-line interface for sfcinsert.
type CLI struct {
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format (text, json)"`

	Apply   ApplyCmd   `cmd:"" help:"Insert configured fragments into components"`
	Anchors AnchorsCmd `cmd:"" help:"Print located regions of components"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// env carries process dependencies into command Run methods.
type env struct {
	logger *slog.Logger
	stdout io.Writer
}

// ApplyCmd runs components through the configured rules.
type ApplyCmd struct {
	Config []string `name:"config" short:"c" required:"" type:"existingfile" help:"Rules config file (repeatable, merged in order)"`
	Write  bool     `name:"write" short:"w" help:"Rewrite changed files in place instead of printing them"`
	Debug  bool     `name:"debug" help:"Log every transformed component"`
	Paths  []string `arg:"" type:"path" help:"Component files or directories"`
}

// Run applies the rules to every file under Paths.
func (c *ApplyCmd) Run(e *env) error {
	opts, err := sfcinsert.LoadConfigFiles(c.Config...)
	if err != nil {
		return err
	}

	opts.Debug = opts.Debug || c.Debug
	opts.Logger = e.logger

	engine, err := sfcinsert.NewEngine(opts)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	files, err := collectFiles(c.Paths)
	if err != nil {
		return err
	}

	var handled, changed int
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		res, err := engine.Transform(filepath.ToSlash(path), string(data))
		if err != nil {
			return fmt.Errorf("transform %s: %w", path, err)
		}

		if !res.Handled {
			continue
		}

		handled++
		if !res.Changed {
			e.logger.Debug("component unchanged", slog.String("path", path), slog.Int("rule", res.RuleIndex))
			continue
		}

		changed++
		if !c.Write {
			if _, err := fmt.Fprintf(e.stdout, "==> %s <==\n%s\n", path, res.Code); err != nil {
				return err
			}

			continue
		}

		if err := writeInPlace(path, res.Code); err != nil {
			return err
		}

		e.logger.Info("component updated", slog.String("path", path), slog.Int("rule", res.RuleIndex))
	}

	e.logger.Info("apply finished",
		slog.Int("files", len(files)),
		slog.Int("handled", handled),
		slog.Int("changed", changed),
		slog.Int("rules", engine.RuleCount()),
	)

	return nil
}

// AnchorsCmd prints where fragments would be inserted.
type AnchorsCmd struct {
	Paths []string `arg:"" type:"existingfile" help:"Component files"`
}

// Run prints located regions of every file.
func (c *AnchorsCmd) Run(e *env) error {
	for _, path := range c.Paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		code := string(data)
		anchors, err := sfcinsert.LocateSFC(code)
		if err != nil {
			e.logger.Warn("component not parsed", slog.String("path", path), slog.Any("error", err))
			continue
		}

		for _, region := range []sfcinsert.Region{anchors.Markup, anchors.Script} {
			if !region.Present() {
				if _, err := fmt.Fprintf(e.stdout, "%s\t%s\tabsent\n", path, region.Kind); err != nil {
					return err
				}

				continue
			}

			content := ""
			if region.End <= len(code) {
				content = code[region.Start:region.End]
			}

			if _, err := fmt.Fprintf(e.stdout, "%s\t%s\t%d\t%d\t%s\n",
				path, region.Kind, region.Start, region.End, strconv.Quote(content)); err != nil {
				return err
			}
		}
	}

	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

// Run prints the version.
func (c *VersionCmd) Run(e *env) error {
	_, err := fmt.Fprintf(e.stdout, "sfcinsert version %s\n", version)
	return err
}

// collectFiles expands directories into the regular files below them.
func collectFiles(paths []string) ([]string, error) {
	files := make([]string, 0, len(paths))
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}

		if !info.IsDir() {
			files = append(files, root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if _, skip := skipDirs[d.Name()]; skip && path != root {
					return filepath.SkipDir
				}

				return nil
			}

			if d.Type().IsRegular() {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	return files, nil
}

// writeInPlace replaces file content keeping its permissions.
func writeInPlace(path string, code string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(code), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// kongOptions returns parser options shared by main and tests.
func kongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("sfcinsert"),
		kong.Description("Insert fragments into Vue single-file component template and script setup blocks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kongOptions()...)

	level, err := logging.ParseLevel(cli.LogLevel)
	ctx.FatalIfErrorf(err)
	format, err := logging.ParseFormat(cli.LogFormat)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&env{
		logger: logging.New(os.Stderr, level, format),
		stdout: os.Stdout,
	})
	ctx.FatalIfErrorf(err)
}
