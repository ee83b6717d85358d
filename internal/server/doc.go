// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the portal's HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown, after which registered cleanup hooks (such as stopping the
// polling jobs) run once.
package server
