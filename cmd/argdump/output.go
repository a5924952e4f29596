// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ogier/getarg"
)

// Format is an output format for the dump.
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// ParseFormat parses a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %q (valid: table, yaml, json)", s)
	}
}

// dump is the structured form of an ArgSet.
type dump struct {
	Options    map[string]string `yaml:"options" json:"options"`
	Positional []string          `yaml:"positional" json:"positional"`
}

// Write renders args to w in the given format.
func Write(w io.Writer, format Format, args *getarg.ArgSet) error {
	switch format {
	case FormatYAML:
		return yaml.NewEncoder(w).Encode(newDump(args))
	case FormatJSON:
		return yaml.NewEncoder(w, yaml.JSON()).Encode(newDump(args))
	default:
		return writeTable(w, args)
	}
}

func newDump(args *getarg.ArgSet) dump {
	return dump{
		Options:    args.Map(),
		Positional: args.Args(),
	}
}

func writeTable(w io.Writer, args *getarg.ArgSet) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithTrimSpace(tw.Off),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"KEY", "VALUE"})

	var appendErr error
	args.Visit(func(key, value string) {
		if appendErr != nil {
			return
		}
		if err := table.Append([]string{"-" + key, value}); err != nil {
			appendErr = fmt.Errorf("failed to append row: %w", err)
		}
	})
	if appendErr != nil {
		return appendErr
	}
	if args.Len() > 0 {
		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}
	_, err := fmt.Fprintf(w, "positional: %s\n", strings.Join(args.Args(), " "))
	return err
}
