// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package poller

import (
	"context"
	"fmt"
	"html"
	"sync"
	"time"

	"github.com/MKhiriev/fm-portal/internal/config"
	"github.com/MKhiriev/fm-portal/internal/dispatch"
	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/models"
)

// LoadingPlaceholder is written to the response region while a request is
// in flight.
const LoadingPlaceholder = `<div><img src="images/loading.gif" alt="loading" /> please wait</div>`

// Client submits retrieval requests and tracks one polling [Job] per user
// and LFN.
type Client struct {
	dispatcher dispatch.Dispatcher
	region     Region

	initialDelay time.Duration
	maxDelay     time.Duration

	mu   sync.Mutex
	jobs map[string]*Job

	logger *logger.Logger
}

// NewClient returns a Client sending commands through dispatcher and writing
// responses to region. Only the delay settings of cfg are used.
func NewClient(dispatcher dispatch.Dispatcher, region Region, cfg config.FileMover, logger *logger.Logger) (*Client, error) {
	if dispatcher == nil || region == nil {
		return nil, fmt.Errorf("%w: dispatcher and region are required", ErrInvalidConfig)
	}
	if cfg.InitialDelay <= 0 || cfg.MaxDelay <= 0 || cfg.InitialDelay > cfg.MaxDelay {
		return nil, fmt.Errorf("%w: delays %s/%s", ErrInvalidConfig, cfg.InitialDelay, cfg.MaxDelay)
	}

	return &Client{
		dispatcher:   dispatcher,
		region:       region,
		initialDelay: cfg.InitialDelay,
		maxDelay:     cfg.MaxDelay,
		jobs:         make(map[string]*Job),
		logger:       logger,
	}, nil
}

// Submit shows the loading placeholder, sends the request command and, once
// the service has accepted it, schedules the first status poll after the
// initial delay.
//
// When the request command fails the returned job is already in
// [models.PollFailed] and the error is returned as well. The job outlives
// the call and is bound to ctx.
func (c *Client) Submit(ctx context.Context, user, lfn string) (*Job, error) {
	lfn = models.NormalizeLFN(lfn)
	if lfn == "" {
		return nil, ErrEmptyLFN
	}

	req := models.PollRequest{LFN: lfn, User: user, Interval: c.initialDelay}
	job := newJob(req, c.logger.WithLFN(lfn))

	c.region.Update(models.ResponseRegion, LoadingPlaceholder)
	job.setState(models.PollRequested, 0, nil, nil)

	resp, err := c.dispatcher.Send(ctx, models.CommandRequest, c.params(req))
	if err != nil {
		c.region.Update(models.ResponseRegion, failureHTML(err))
		job.abort(err)
		return job, fmt.Errorf("submit %s: %w", lfn, err)
	}
	c.region.Update(models.ResponseRegion, resp.HTML)

	schedule := newSchedule(c.initialDelay, c.maxDelay)
	first, _ := schedule.Next()

	c.track(job)
	job.start(ctx, c, first, schedule)
	job.logger.Info().Dur("first_poll", first).Msg("request accepted")

	return job, nil
}

// PollStatus polls statusOne right away and keeps polling while the service
// reports the request as pending, waiting min(interval*2, max) between polls
// with interval doubling each time.
func (c *Client) PollStatus(ctx context.Context, user, lfn string, interval time.Duration) (*Job, error) {
	lfn = models.NormalizeLFN(lfn)
	if lfn == "" {
		return nil, ErrEmptyLFN
	}
	if interval <= 0 {
		interval = c.initialDelay
	}

	req := models.PollRequest{LFN: lfn, User: user, Interval: interval}
	job := newJob(req, c.logger.WithLFN(lfn))

	c.track(job)
	job.start(ctx, c, 0, newSchedule(nextInterval(interval, c.maxDelay), c.maxDelay))

	return job, nil
}

// Cancel stops the job tracked for user and lfn, then sends the cancel
// command. The response is written to the LFN's region.
func (c *Client) Cancel(ctx context.Context, user, lfn string) (models.Response, error) {
	return c.oneShot(ctx, models.CommandCancel, user, lfn)
}

// Remove stops the job tracked for user and lfn, then sends the remove
// command. The response is written to the LFN's region.
func (c *Client) Remove(ctx context.Context, user, lfn string) (models.Response, error) {
	return c.oneShot(ctx, models.CommandRemove, user, lfn)
}

// Resolve sends resolveLfn with the lookup form values and writes the
// result to the response region.
func (c *Client) Resolve(ctx context.Context, params models.Params) (models.Response, error) {
	c.region.Update(models.ResponseRegion, LoadingPlaceholder)

	resp, err := c.dispatcher.Send(ctx, models.CommandResolveLFN, params)
	if err != nil {
		c.region.Update(models.ResponseRegion, failureHTML(err))
		return models.Response{}, fmt.Errorf("resolve: %w", err)
	}
	c.region.Update(models.ResponseRegion, resp.HTML)

	return resp, nil
}

// Job returns the running job for user and lfn.
func (c *Client) Job(user, lfn string) (*Job, bool) {
	key := models.PollRequest{LFN: models.NormalizeLFN(lfn), User: user}.Key()

	c.mu.Lock()
	defer c.mu.Unlock()
	j, ok := c.jobs[key]
	return j, ok
}

// Jobs returns the running jobs.
func (c *Client) Jobs() []*Job {
	c.mu.Lock()
	defer c.mu.Unlock()

	jobs := make([]*Job, 0, len(c.jobs))
	for _, j := range c.jobs {
		jobs = append(jobs, j)
	}
	return jobs
}

// Close stops every running job and waits for them to exit.
func (c *Client) Close() {
	for _, j := range c.Jobs() {
		j.Stop()
	}
}

func (c *Client) oneShot(ctx context.Context, cmd models.Command, user, lfn string) (models.Response, error) {
	lfn = models.NormalizeLFN(lfn)
	if lfn == "" {
		return models.Response{}, ErrEmptyLFN
	}
	req := models.PollRequest{LFN: lfn, User: user}
	tag := models.LFNTag(lfn)

	if c.untrack(req.Key()) {
		c.logger.WithLFN(lfn).Debug().Str("command", string(cmd)).Msg("stopped polling job")
	}

	resp, err := c.dispatcher.Send(ctx, cmd, c.params(req))
	if err != nil {
		c.region.Update(tag, failureHTML(err))
		return models.Response{}, fmt.Errorf("%s %s: %w", cmd, lfn, err)
	}
	c.region.Update(tag, resp.HTML)

	return resp, nil
}

// track registers job, stopping any job it replaces.
func (c *Client) track(job *Job) {
	c.mu.Lock()
	prev := c.jobs[job.req.Key()]
	c.jobs[job.req.Key()] = job
	c.mu.Unlock()

	if prev != nil {
		prev.Stop()
	}
}

// untrack stops and forgets the job for key. It reports whether one existed.
func (c *Client) untrack(key string) bool {
	c.mu.Lock()
	job, ok := c.jobs[key]
	delete(c.jobs, key)
	c.mu.Unlock()

	if ok {
		job.Stop()
	}
	return ok
}

// forget drops job from the tracked set unless it was already replaced.
func (c *Client) forget(job *Job) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.jobs[job.req.Key()] == job {
		delete(c.jobs, job.req.Key())
	}
}

// params builds the query parameters of a single-LFN command. The user is
// only sent when known.
func (c *Client) params(req models.PollRequest) models.Params {
	params := models.LFNParams(req.LFN)
	if req.User != "" {
		params["user"] = req.User
	}
	return params
}

func failureHTML(err error) string {
	return `<div class="fm_error">` + html.EscapeString(err.Error()) + `</div>`
}
