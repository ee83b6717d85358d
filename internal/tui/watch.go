// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/fm-portal/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusWidth = 60

type jobRow struct {
	lfn      string
	state    models.PollState
	interval time.Duration
	status   string
	err      error
	closed   bool
}

type watchModel struct {
	sources    []Source
	rows       []jobRow
	spinner    spinner.Model
	quitByUser bool
}

func newWatchModel(sources []Source) watchModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	rows := make([]jobRow, len(sources))
	for i, src := range sources {
		rows[i] = jobRow{lfn: src.LFN()}
	}

	return watchModel{sources: sources, rows: rows, spinner: s}
}

// waitForEvent reads the next event of one source. It is re-issued after
// every event, so each source has at most one reader at a time.
func waitForEvent(index int, events <-chan models.PollEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return jobClosedMsg{index: index}
		}
		return jobEventMsg{index: index, event: ev}
	}
}

func (m watchModel) Init() tea.Cmd {
	if len(m.sources) == 0 {
		return tea.Quit
	}

	cmds := []tea.Cmd{m.spinner.Tick}
	for i, src := range m.sources {
		cmds = append(cmds, waitForEvent(i, src.Events()))
	}
	return tea.Batch(cmds...)
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		return m, nil

	case jobEventMsg:
		m.rows[msg.index] = m.rows[msg.index].apply(msg.event)
		return m, waitForEvent(msg.index, m.sources[msg.index].Events())

	case jobClosedMsg:
		m.rows[msg.index].closed = true
		m.rows[msg.index].state = m.sources[msg.index].State()
		if m.allClosed() {
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (r jobRow) apply(ev models.PollEvent) jobRow {
	r.state = ev.State
	r.interval = ev.Interval
	if text := PlainText(ev.Response.HTML); text != "" {
		r.status = text
	}
	if ev.Err != nil {
		r.err = ev.Err
	}
	return r
}

func (m watchModel) allClosed() bool {
	for _, r := range m.rows {
		if !r.closed {
			return false
		}
	}
	return true
}

// states reads the final states from the sources: events are published
// without blocking and a row may have missed the last one.
func (m watchModel) states() map[string]models.PollState {
	states := make(map[string]models.PollState, len(m.sources))
	for _, src := range m.sources {
		states[src.LFN()] = src.State()
	}
	return states
}

func (m watchModel) View() string {
	var b strings.Builder

	for i, r := range m.rows {
		if i > 0 {
			b.WriteString("\n")
		}

		marker := " "
		if !r.state.Terminal() && !r.closed {
			marker = m.spinner.View()
		}
		b.WriteString(marker)
		b.WriteString(" ")
		b.WriteString(lfnStyle.Render(r.lfn))
		b.WriteString("  ")
		b.WriteString(stateStyle(r.state).Render(r.state.String()))
		if r.state == models.PollPolling && r.interval > 0 {
			b.WriteString(helpStyle.Render(fmt.Sprintf(" (next in %s)", r.interval)))
		}

		if r.err != nil {
			b.WriteString("\n    ")
			b.WriteString(errorStyle.Render(humanizeServerUnavailableError(r.err)))
		} else if r.status != "" {
			b.WriteString("\n    ")
			b.WriteString(fitText(r.status, statusWidth))
		}
	}

	return renderPage("FILEMOVER", b.String(), "q: quit")
}
