// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fm-portal/internal/config"
	"github.com/MKhiriev/fm-portal/internal/dispatch"
	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/internal/poller"
	"github.com/MKhiriev/fm-portal/internal/tui"
	"github.com/MKhiriev/fm-portal/models"
)

type App struct {
	poller  *poller.Client
	user    string
	watcher Watcher
	logger  *logger.Logger
}

func NewApp(dispatcher dispatch.Dispatcher, region poller.Region, watcher Watcher, cfg config.FileMover, logger *logger.Logger) (*App, error) {
	p, err := poller.NewClient(dispatcher, region, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create polling client: %w", err)
	}

	return &App{
		poller:  p,
		user:    cfg.User,
		watcher: watcher,
		logger:  logger,
	}, nil
}

// Request submits every LFN and watches the resulting jobs. A failed
// submission does not prevent the others from being watched.
func (a *App) Request(ctx context.Context, lfns []string) error {
	if len(lfns) == 0 {
		return ErrNoLFN
	}

	var (
		jobs []*poller.Job
		errs []error
	)
	for _, lfn := range lfns {
		job, err := a.poller.Submit(ctx, a.user, lfn)
		if err != nil {
			a.logger.Error().Err(err).Str("lfn", lfn).Msg("request rejected")
			errs = append(errs, err)
		}
		if job != nil {
			jobs = append(jobs, job)
		}
	}

	return errors.Join(append(errs, a.watch(ctx, jobs))...)
}

// Status polls every LFN until the service no longer reports it pending.
func (a *App) Status(ctx context.Context, lfns []string, interval time.Duration) error {
	if len(lfns) == 0 {
		return ErrNoLFN
	}

	jobs := make([]*poller.Job, 0, len(lfns))
	for _, lfn := range lfns {
		job, err := a.poller.PollStatus(ctx, a.user, lfn, interval)
		if err != nil {
			a.poller.Close()
			return err
		}
		jobs = append(jobs, job)
	}

	return a.watch(ctx, jobs)
}

func (a *App) Cancel(ctx context.Context, lfn string) error {
	_, err := a.poller.Cancel(ctx, a.user, lfn)
	return err
}

func (a *App) Remove(ctx context.Context, lfn string) error {
	_, err := a.poller.Remove(ctx, a.user, lfn)
	return err
}

// Close stops every job still polling.
func (a *App) Close() {
	a.poller.Close()
}

func (a *App) watch(ctx context.Context, jobs []*poller.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	states, err := a.watcher.Watch(ctx, jobs)
	if errors.Is(err, tui.ErrUserQuit) {
		a.poller.Close()
		return nil
	}
	if err != nil {
		a.poller.Close()
		return err
	}

	failed := 0
	for lfn, state := range states {
		if state != models.PollDone {
			a.logger.Warn().Str("lfn", lfn).Stringer("state", state).Msg("request did not complete")
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrJobsFailed, failed, len(states))
	}
	return nil
}
