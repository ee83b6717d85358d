// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package masthead

import "errors"

var (
	ErrEmptyPageID = errors.New("empty page id")
	ErrRender      = errors.New("masthead render failed")
)
