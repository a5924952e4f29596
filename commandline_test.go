// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getarg

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// resetCommandLine restores an empty command-line set after the test.
func resetCommandLine(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		commandLine.Store(newArgSet(os.Args[0]))
		parsed.Store(false)
	})
}

func TestParseArgsReplaces(t *testing.T) {
	resetCommandLine(t)

	ParseArgs([]string{"-jurassic", "-bar=12", "pos"})
	require.True(t, Parsed())
	assert.True(t, GetBool("-jurassic"))
	assert.Equal(t, int64(12), GetInt("-bar", 0))
	assert.Equal(t, []string{"pos"}, Args())
	assert.Equal(t, 1, NArg())
	assert.Equal(t, "pos", Arg(0))

	ParseArgs([]string{"-nojurassic"})
	assert.False(t, GetBoolDefault("-jurassic", true))
	assert.False(t, Has("-bar"))
	assert.Equal(t, "fallback", GetString("-bar", "fallback"))
	assert.Equal(t, 0, NArg())
}

func TestParseFromOSArgs(t *testing.T) {
	resetCommandLine(t)
	saved := os.Args
	t.Cleanup(func() { os.Args = saved })

	os.Args = []string{"testgetarg", "--connect=a", "-connect=b"}
	Parse()
	assert.Equal(t, "b", GetString("-connect", ""))
	assert.Equal(t, []string{"a", "b"}, GetAll("-connect"))
}

func TestCommandLineBeforeParse(t *testing.T) {
	resetCommandLine(t)
	commandLine.Store(newArgSet(os.Args[0]))
	parsed.Store(false)

	assert.False(t, Parsed())
	assert.Equal(t, 0, CommandLine().Len())
	assert.True(t, GetBoolDefault("-anything", true))
}

func TestSoftSet(t *testing.T) {
	resetCommandLine(t)
	ParseArgs([]string{"-listen=0"})
	before := CommandLine()

	assert.False(t, SoftSet("-listen", "1"))
	assert.True(t, SoftSet("-port", "8333"))
	assert.True(t, SoftSetBool("-discover", false))
	assert.False(t, SoftSetBool("-discover", true))

	assert.False(t, GetBool("-listen"))
	assert.Equal(t, int64(8333), GetInt("-port", 0))
	assert.False(t, GetBoolDefault("-discover", true))

	// the earlier snapshot is untouched
	assert.False(t, before.Has("-port"))
	assert.Equal(t, 1, before.Len())
}

func TestArgSetSoftSet(t *testing.T) {
	a := NewParser("testgetarg").Parse([]string{"-a=1", "pos"})
	b, ok := a.SoftSetBool("-b", true)
	require.True(t, ok)
	assert.NotSame(t, a, b)
	assert.True(t, b.GetBool("-b"))
	assert.False(t, a.Has("-b"))
	assert.Equal(t, []string{"pos"}, b.Args())
	assert.Equal(t, "testgetarg", b.Name())

	c, ok := b.SoftSet("-a", "2")
	assert.False(t, ok)
	assert.Same(t, b, c)
}

func TestConcurrentReparse(t *testing.T) {
	resetCommandLine(t)
	ParseArgs([]string{"-a=1", "-b=1"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				a := CommandLine()
				// every snapshot is complete: a and b always agree
				if a.GetString("-a", "") != a.GetString("-b", "") {
					t.Error("observed a partially built snapshot")
					return
				}
			}
		}()
	}
	for i := 0; i < 100; i++ {
		if i%2 == 0 {
			ParseArgs([]string{"-a=2", "-b=2"})
		} else {
			ParseArgs([]string{"-a=1", "-b=1"})
		}
	}
	wg.Wait()
}

func TestVisit(t *testing.T) {
	a := NewParser("testgetarg").Parse([]string{"-zeta=1", "-alpha", "-nomid"})
	var got [][2]string
	a.Visit(func(key, value string) {
		got = append(got, [2]string{key, value})
	})
	assert.Equal(t, [][2]string{{"alpha", ""}, {"mid", "0"}, {"zeta", "1"}}, got)
	assert.Equal(t, 3, a.Len())

	m := a.Map()
	m["alpha"] = "changed"
	assert.Equal(t, "", a.GetString("-alpha", "x"))
}

func TestSetLogger(t *testing.T) {
	resetCommandLine(t)
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	ParseArgs([]string{"-nojurassic"})
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "negated option", entry.Message)
	assert.Equal(t, "jurassic", entry.ContextMap()["key"])
}
