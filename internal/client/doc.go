// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the FileMover command line application runtime.
//
// It wires the polling client, a terminal region sink and a watcher (plain
// log lines or the terminal UI) into the request, status, cancel and remove
// commands.
package client
