// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argdump prints how its own command line is parsed.
//
// Usage:
//
//	argdump [-format=table|yaml|json] [-verbose] [args...]
//
// Every option, including -format and -verbose, is shown in the output.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ogier/getarg"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "argdump:", err)
		os.Exit(2)
	}
}

// newLogger returns a development-style console logger writing to w.
func newLogger(w io.Writer) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

func run(arguments []string, stdout, stderr io.Writer) error {
	parser := getarg.NewParser("argdump")
	args := parser.Parse(arguments)

	if args.GetBool("-verbose") {
		logger := newLogger(stderr)
		defer logger.Sync() //nolint:errcheck
		parser.SetLogger(logger)
		args = parser.Parse(arguments)
		logger.Debug("parsed", zap.Int("options", args.Len()), zap.Int("positional", args.NArg()))
	}

	format, err := ParseFormat(args.GetString("-format", string(FormatTable)))
	if err != nil {
		return err
	}
	if err := Write(stdout, format, args); err != nil {
		return fmt.Errorf("failed to write %s output: %w", format, err)
	}
	return nil
}
