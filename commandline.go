// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getarg

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
)

// The parser for the command line, named after os.Args[0].
var commandLineParser = NewParser(os.Args[0])

// The current command-line snapshot. Each parse stores a complete set, so
// readers never see a partially built map.
var commandLine atomic.Pointer[ArgSet]

var parsed atomic.Bool

func init() {
	commandLine.Store(newArgSet(os.Args[0]))
}

// SetLogger sets the logger for command-line parsing. It must be called
// before Parse or ParseArgs.
func SetLogger(logger *zap.Logger) {
	commandLineParser.SetLogger(logger)
}

// Parse parses the command-line arguments from os.Args[1:] and makes them
// the current command-line set.
func Parse() {
	ParseArgs(os.Args[1:])
}

// ParseArgs parses arguments, which should not include the command name,
// and replaces the current command-line set with the result.
func ParseArgs(arguments []string) *ArgSet {
	a := commandLineParser.Parse(arguments)
	commandLine.Store(a)
	parsed.Store(true)
	return a
}

// Parsed reports whether the command line has been parsed.
func Parsed() bool {
	return parsed.Load()
}

// CommandLine returns the current command-line set. Before parsing it is
// empty.
func CommandLine() *ArgSet {
	return commandLine.Load()
}

// SoftSet sets the named command-line option unless it was already given.
// It reports whether the option was set.
func SoftSet(key, value string) bool {
	for {
		old := commandLine.Load()
		a, ok := old.SoftSet(key, value)
		if !ok {
			return false
		}
		if commandLine.CompareAndSwap(old, a) {
			return true
		}
	}
}

// Like SoftSet, but stores a boolean as "1" or "0".
func SoftSetBool(key string, value bool) bool {
	if value {
		return SoftSet(key, "1")
	}
	return SoftSet(key, "0")
}

// Has reports whether the named option was given on the command line.
func Has(key string) bool { return CommandLine().Has(key) }

// GetString returns the value of the named command-line option, or def if
// it was not given.
func GetString(key, def string) string { return CommandLine().GetString(key, def) }

// GetInt returns the named command-line option as an integer, or def if it
// was not given. Values that are not integers yield 0.
func GetInt(key string, def int64) int64 { return CommandLine().GetInt(key, def) }

// GetBool reports whether the named command-line option is set to anything
// but "0".
func GetBool(key string) bool { return CommandLine().GetBool(key) }

// Like GetBool, but returns def when the option was not given.
func GetBoolDefault(key string, def bool) bool { return CommandLine().GetBoolDefault(key, def) }

// GetAll returns every value given for the named command-line option.
func GetAll(key string) []string { return CommandLine().GetAll(key) }

// Arg returns the i'th positional command-line argument.
func Arg(i int) string { return CommandLine().Arg(i) }

// NArg is the number of positional command-line arguments.
func NArg() int { return CommandLine().NArg() }

// Args returns the positional command-line arguments.
func Args() []string { return CommandLine().Args() }
