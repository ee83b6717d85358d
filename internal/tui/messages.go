// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/fm-portal/models"
)

type jobEventMsg struct {
	index int
	event models.PollEvent
}

type jobClosedMsg struct {
	index int
}
