// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the portal's HTTP transport.
//
// It serves the FileMover landing page with its masthead, the standalone
// masthead fragment, a JSON relay for the named FileMover commands and the
// per-user job API. Request tracing, access logging and response compression
// are applied as middleware before requests reach the service layer.
package http
