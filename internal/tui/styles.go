// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/fm-portal/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	lfnStyle   = lipgloss.NewStyle().Bold(true)
)

var stateStyles = map[models.PollState]lipgloss.Style{
	models.PollIdle:      lipgloss.NewStyle().Faint(true),
	models.PollRequested: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	models.PollPolling:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	models.PollDone:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	models.PollFailed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	models.PollStopped:   lipgloss.NewStyle().Faint(true),
}

func stateStyle(s models.PollState) lipgloss.Style {
	if style, ok := stateStyles[s]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
