// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getarg

import (
	"strings"

	"go.uber.org/zap"
)

// negationPrefix marks an option as the negation of the option named by
// the rest of the key.
const negationPrefix = "no"

// A Parser turns raw argument lists into ArgSets. The zero Parser is not
// usable; create one with NewParser.
type Parser struct {
	name   string
	logger *zap.Logger
}

// NewParser returns a parser whose sets carry the given name.
func NewParser(name string) *Parser {
	return &Parser{
		name:   name,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger used to report parsing decisions at debug
// level. If logger is nil, logging is disabled.
func (p *Parser) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	p.logger = logger
}

// stripDashes removes one or two leading dashes. It reports false for
// tokens that do not start with a dash.
func stripDashes(s string) (string, bool) {
	switch {
	case strings.HasPrefix(s, "--"):
		return s[2:], true
	case strings.HasPrefix(s, "-"):
		return s[1:], true
	default:
		return "", false
	}
}

// negation interprets key=value as a -no option. It returns the negated key
// and the value it implies, or false if the token is an ordinary option.
// Only a missing value, "1" or "0" make a negation; -nofoo=bar stays a
// literal option named "nofoo".
func negation(key, value string, hasValue bool) (string, string, bool) {
	if len(key) <= len(negationPrefix) || !strings.HasPrefix(key, negationPrefix) {
		return "", "", false
	}
	positive := key[len(negationPrefix):]
	switch {
	case !hasValue || value == "1":
		return positive, "0", true
	case value == "0":
		return positive, "1", true
	default:
		return "", "", false
	}
}

// Parse parses the argument list, which should not include the command
// name, into a new ArgSet. Parsing never fails: every token is either
// stored as an option or kept as a positional argument.
func (p *Parser) Parse(arguments []string) *ArgSet {
	a := newArgSet(p.name)
	a.args = make([]string, 0, len(arguments))
	negated := make(map[string]string)

	for len(arguments) > 0 {
		s := arguments[0]
		arguments = arguments[1:]

		name, ok := stripDashes(s)
		if !ok || len(name) == 0 || name[0] == '=' {
			p.logger.Debug("positional argument", zap.String("arg", s))
			a.args = append(a.args, s)
			continue
		}

		key, value, hasValue := strings.Cut(name, "=")
		if positive, implied, ok := negation(key, value, hasValue); ok {
			p.logger.Debug("negated option",
				zap.String("arg", s),
				zap.String("key", positive),
				zap.String("value", implied))
			negated[positive] = implied
			continue
		}
		if hasValue && strings.HasPrefix(key, negationPrefix) && len(key) > len(negationPrefix) {
			p.logger.Debug("option kept literally",
				zap.String("arg", s),
				zap.String("key", key))
		}

		// a bare flag is stored as the empty string, which reads as true
		a.values[key] = value
		a.multi[key] = append(a.multi[key], value)
	}

	for key, value := range negated {
		if _, direct := a.values[key]; direct {
			p.logger.Debug("negation overridden by option", zap.String("key", key))
			continue
		}
		a.values[key] = value
	}
	return a
}
