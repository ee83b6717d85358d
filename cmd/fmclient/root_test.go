// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"request", "status", "cancel", "remove"}, names)

	for _, flag := range []string{"config", "url", "user", "tui", "verbose"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRootCommand_ArgsValidation(t *testing.T) {
	tests := [][]string{
		{"request"},
		{"status"},
		{"cancel"},
		{"remove", "a.root", "b.root"},
	}

	for _, args := range tests {
		root := newRootCommand()
		root.SetArgs(args)
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})

		require.Error(t, root.Execute(), args)
	}
}
