// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the portal's use cases between the HTTP handlers
// and the FileMover, identity and masthead clients.
package service
