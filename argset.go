// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
	Package getarg implements startup argument parsing into a key/value
	configuration store.

	Usage:

	Parse the command line once, early in main:
		getarg.Parse()
	or build an independent snapshot from an explicit argument list:
		args := getarg.NewParser("mytool").Parse(os.Args[1:])

	Options are then looked up by name, with one leading dash:
		if getarg.GetBool("-debug") { ... }
		port := getarg.GetInt("-port", 8333)
		dir := getarg.GetString("-datadir", defaultDir)

	Command line syntax:
		-flag       // flag is set, stored as the empty string
		-flag=x     // flag is set to x
		-noflag     // same as -flag=0
		-noflag=0   // same as -flag=1
	One or two minus signs may be used; they are equivalent.
	When both -flag and -noflag appear, -flag wins no matter the order.
	Arguments without a leading dash are collected as positional
	arguments and are available from Args.

	Unknown options are never rejected; every option on the command line
	is stored and can be queried.
*/
package getarg

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// An ArgSet is an immutable snapshot of parsed arguments. It is safe for
// concurrent use.
type ArgSet struct {
	name   string
	values map[string]string   // normalized key -> value
	multi  map[string][]string // every direct value of a key, in order
	args   []string            // positional arguments
}

func newArgSet(name string) *ArgSet {
	return &ArgSet{
		name:   name,
		values: make(map[string]string),
		multi:  make(map[string][]string),
	}
}

// normalizeKey strips the conventional single leading dash from a lookup key.
func normalizeKey(key string) string {
	return strings.TrimPrefix(key, "-")
}

// Name returns the name of the parser that produced the set.
func (a *ArgSet) Name() string { return a.name }

// Has reports whether the named option was given.
func (a *ArgSet) Has(key string) bool {
	_, ok := a.values[normalizeKey(key)]
	return ok
}

// GetString returns the value of the named option, or def if the option
// was not given. An option given with an empty value, such as -name= or a
// bare -name, yields the empty string rather than def.
func (a *ArgSet) GetString(key, def string) string {
	if v, ok := a.values[normalizeKey(key)]; ok {
		return v
	}
	return def
}

// GetInt returns the value of the named option as a base-10 integer, or def
// if the option was not given. A value that is not a valid integer,
// including the empty value of a bare flag, yields 0 rather than def.
func (a *ArgSet) GetInt(key string, def int64) int64 {
	v, ok := a.values[normalizeKey(key)]
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// GetBool reports whether the named option is set to anything but "0".
// A missing option is false.
func (a *ArgSet) GetBool(key string) bool {
	return a.GetBoolDefault(key, false)
}

// Like GetBool, but returns def when the option was not given.
func (a *ArgSet) GetBoolDefault(key string, def bool) bool {
	v, ok := a.values[normalizeKey(key)]
	if !ok {
		return def
	}
	return v != "0"
}

// GetAll returns every value given directly for the named option, in the
// order they appeared. Values implied by a -no prefix are not included.
func (a *ArgSet) GetAll(key string) []string {
	return slices.Clone(a.multi[normalizeKey(key)])
}

// Arg returns the i'th positional argument. Arg(0) is the first one.
func (a *ArgSet) Arg(i int) string {
	if i < 0 || i >= len(a.args) {
		return ""
	}
	return a.args[i]
}

// NArg is the number of positional arguments.
func (a *ArgSet) NArg() int { return len(a.args) }

// Args returns the positional arguments.
func (a *ArgSet) Args() []string { return slices.Clone(a.args) }

// Len returns the number of distinct options in the set.
func (a *ArgSet) Len() int { return len(a.values) }

// Keys returns the option names, without dashes, in lexicographical order.
func (a *ArgSet) Keys() []string {
	keys := lo.Keys(a.values)
	slices.Sort(keys)
	return keys
}

// Visit visits the options in lexicographical order, calling fn for each.
func (a *ArgSet) Visit(fn func(key, value string)) {
	for _, key := range a.Keys() {
		fn(key, a.values[key])
	}
}

// Map returns a copy of the option map.
func (a *ArgSet) Map() map[string]string {
	return maps.Clone(a.values)
}

// SoftSet returns a copy of the set with the named option set to value,
// unless the option was already given, in which case it returns the set
// itself and false. The receiver is never modified.
func (a *ArgSet) SoftSet(key, value string) (*ArgSet, bool) {
	key = normalizeKey(key)
	if _, ok := a.values[key]; ok {
		return a, false
	}
	b := &ArgSet{
		name:   a.name,
		values: maps.Clone(a.values),
		multi:  maps.Clone(a.multi),
		args:   a.args,
	}
	b.values[key] = value
	return b, true
}

// Like SoftSet, but stores a boolean as "1" or "0".
func (a *ArgSet) SoftSetBool(key string, value bool) (*ArgSet, bool) {
	if value {
		return a.SoftSet(key, "1")
	}
	return a.SoftSet(key, "0")
}
