// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"sync"

	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/internal/poller"
	"github.com/MKhiriev/fm-portal/internal/tui"
	"github.com/MKhiriev/fm-portal/models"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// LogWatcher logs every state change of every job.
type LogWatcher struct {
	logger *logger.Logger
}

func NewLogWatcher(logger *logger.Logger) *LogWatcher {
	return &LogWatcher{logger: logger}
}

// Watch drains the event streams of all jobs concurrently. Jobs stop on
// their own when ctx is cancelled, which closes their streams.
func (w *LogWatcher) Watch(_ context.Context, jobs []*poller.Job) (map[string]models.PollState, error) {
	var (
		g      errgroup.Group
		mu     sync.Mutex
		states = make(map[string]models.PollState, len(jobs))
	)

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			log := w.logger.WithLFN(job.LFN())
			for ev := range job.Events() {
				e := log.Info()
				if ev.Err != nil {
					e = log.Error().Err(ev.Err)
				}
				e.Stringer("state", ev.State).Dur("interval", ev.Interval).Msg("status")
			}

			mu.Lock()
			states[job.LFN()] = job.Wait()
			mu.Unlock()
			return nil
		})
	}

	return states, g.Wait()
}

// TUIWatcher shows the jobs in the terminal status view.
type TUIWatcher struct {
	opts []tea.ProgramOption
}

func NewTUIWatcher(opts ...tea.ProgramOption) *TUIWatcher {
	return &TUIWatcher{opts: opts}
}

func (w *TUIWatcher) Watch(_ context.Context, jobs []*poller.Job) (map[string]models.PollState, error) {
	sources := make([]tui.Source, len(jobs))
	for i, job := range jobs {
		sources[i] = job
	}
	return tui.Watch(sources, w.opts...)
}
