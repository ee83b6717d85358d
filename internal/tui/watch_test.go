// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/fm-portal/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	lfn    string
	events chan models.PollEvent
	state  models.PollState
}

func newFakeSource(lfn string) *fakeSource {
	return &fakeSource{lfn: lfn, events: make(chan models.PollEvent, 8)}
}

func (f *fakeSource) LFN() string                     { return f.lfn }
func (f *fakeSource) Events() <-chan models.PollEvent { return f.events }
func (f *fakeSource) State() models.PollState         { return f.state }

func update(t *testing.T, m watchModel, msg tea.Msg) (watchModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	wm, ok := next.(watchModel)
	require.True(t, ok)
	return wm, cmd
}

// isQuit запускает команду и проверяет, что она завершает программу.
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestWatchModel_AppliesEvents(t *testing.T) {
	src := newFakeSource("/store/a/file.root")
	m := newWatchModel([]Source{src})

	m, cmd := update(t, m, jobEventMsg{index: 0, event: models.PollEvent{
		LFN:      src.lfn,
		State:    models.PollPolling,
		Interval: 6 * time.Second,
		Response: models.Response{HTML: "<div class=\"fm\">Staging <b>50%</b></div>"},
	}})

	require.NotNil(t, cmd, "next event must be awaited")
	assert.Equal(t, models.PollPolling, m.rows[0].state)
	assert.Equal(t, 6*time.Second, m.rows[0].interval)
	assert.Equal(t, "Staging 50%", m.rows[0].status)

	view := m.View()
	assert.Contains(t, view, "/store/a/file.root")
	assert.Contains(t, view, "polling")
	assert.Contains(t, view, "next in 6s")
	assert.Contains(t, view, "Staging 50%")
}

func TestWatchModel_WaitForEvent(t *testing.T) {
	src := newFakeSource("/store/a/file.root")
	src.events <- models.PollEvent{State: models.PollDone}
	close(src.events)

	msg := waitForEvent(3, src.events)()
	ev, ok := msg.(jobEventMsg)
	require.True(t, ok)
	assert.Equal(t, 3, ev.index)
	assert.Equal(t, models.PollDone, ev.event.State)

	assert.Equal(t, jobClosedMsg{index: 3}, waitForEvent(3, src.events)())
}

func TestWatchModel_QuitsWhenAllClosed(t *testing.T) {
	a, b := newFakeSource("/store/a.root"), newFakeSource("/store/b.root")
	a.state, b.state = models.PollDone, models.PollFailed
	m := newWatchModel([]Source{a, b})

	m, _ = update(t, m, jobEventMsg{index: 0, event: models.PollEvent{State: models.PollDone}})
	m, cmd := update(t, m, jobClosedMsg{index: 0})
	assert.Nil(t, cmd)

	m, _ = update(t, m, jobEventMsg{index: 1, event: models.PollEvent{State: models.PollFailed, Err: errors.New("dial tcp: connection refused")}})
	m, cmd = update(t, m, jobClosedMsg{index: 1})
	assert.True(t, isQuit(cmd))
	assert.False(t, m.quitByUser)

	assert.Equal(t, map[string]models.PollState{
		"/store/a.root": models.PollDone,
		"/store/b.root": models.PollFailed,
	}, m.states())
	assert.Contains(t, m.View(), "FileMover service unreachable")
}

func TestWatchModel_FinalStateFromSource(t *testing.T) {
	src := newFakeSource("/store/a.root")
	m := newWatchModel([]Source{src})

	m, _ = update(t, m, jobEventMsg{index: 0, event: models.PollEvent{State: models.PollPolling, Interval: time.Second}})

	// событие done потеряно, но задание завершилось
	src.state = models.PollDone
	m, cmd := update(t, m, jobClosedMsg{index: 0})

	assert.True(t, isQuit(cmd))
	assert.Equal(t, models.PollDone, m.rows[0].state)
	assert.Equal(t, map[string]models.PollState{"/store/a.root": models.PollDone}, m.states())
	assert.Contains(t, m.View(), "done")
}

func TestWatchModel_UserQuit(t *testing.T) {
	m := newWatchModel([]Source{newFakeSource("/store/a.root")})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.True(t, m.quitByUser)
	assert.True(t, isQuit(cmd))
}

func TestWatchModel_Spinner(t *testing.T) {
	m := newWatchModel([]Source{newFakeSource("/store/a.root")})

	_, cmd := update(t, m, spinner.TickMsg{ID: m.spinner.ID()})
	assert.NotNil(t, cmd)
}

func TestWatchModel_NoSources(t *testing.T) {
	assert.True(t, isQuit(newWatchModel(nil).Init()))
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "plain", want: "plain"},
		{in: "<div>\n  Your request <!-- templateLoading --> is\tqueued </div>", want: "Your request is queued"},
		{in: "<table><tr><td>a</td><td>b</td></tr></table>", want: "a b"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PlainText(tt.in))
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "ab", fitText("abcdefgh", 2))
}
