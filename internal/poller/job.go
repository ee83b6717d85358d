// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package poller

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/internal/utils"
	"github.com/MKhiriev/fm-portal/models"
	"github.com/sethvargo/go-retry"
)

// eventBuffer is the capacity of Job.Events. Events are dropped, never
// blocked on, when the consumer falls behind.
const eventBuffer = 32

// Job is the handle of one polling loop. All methods are safe for concurrent
// use.
type Job struct {
	id  string
	req models.PollRequest

	mu       sync.Mutex
	state    models.PollState
	interval time.Duration
	last     models.Response
	err      error

	cancel  context.CancelFunc
	stopped bool
	done    chan struct{}
	events  chan models.PollEvent

	logger *logger.Logger
}

func newJob(req models.PollRequest, logger *logger.Logger) *Job {
	return &Job{
		id:       utils.NewID(),
		req:      req,
		state:    models.PollIdle,
		interval: req.Interval,
		done:     make(chan struct{}),
		events:   make(chan models.PollEvent, eventBuffer),
		logger:   logger,
	}
}

// ID returns the job's unique id.
func (j *Job) ID() string { return j.id }

// LFN returns the logical file name the job follows.
func (j *Job) LFN() string { return j.req.LFN }

// User returns the user the request was submitted for.
func (j *Job) User() string { return j.req.User }

// State returns the current lifecycle state.
func (j *Job) State() models.PollState {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}

// Interval returns the delay before the next poll, or the delay that
// preceded the last one once the job has finished.
func (j *Job) Interval() time.Duration {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.interval
}

// Last returns the most recent status response.
func (j *Job) Last() models.Response {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.last
}

// Err returns the error that moved the job to [models.PollFailed].
func (j *Job) Err() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.err
}

// Events streams state transitions and status responses. The channel is
// closed once the job reaches a terminal state.
func (j *Job) Events() <-chan models.PollEvent {
	return j.events
}

// Done is closed once the polling loop has exited.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Wait blocks until the polling loop has exited and returns the final state.
func (j *Job) Wait() models.PollState {
	<-j.done
	return j.State()
}

// Stop suppresses the pending poll and blocks until the loop has exited.
// Safe to call more than once and on finished jobs.
func (j *Job) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.stopped = true
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	<-j.done
}

// setState records a transition and publishes it. resp may be nil.
func (j *Job) setState(state models.PollState, interval time.Duration, resp *models.Response, err error) {
	j.mu.Lock()
	j.state = state
	if interval > 0 {
		j.interval = interval
	}
	if resp != nil {
		j.last = *resp
	}
	if err != nil {
		j.err = err
	}
	ev := models.PollEvent{
		JobID:    j.id,
		LFN:      j.req.LFN,
		State:    j.state,
		Interval: j.interval,
		Response: j.last,
		Err:      j.err,
	}
	j.mu.Unlock()

	select {
	case j.events <- ev:
	default:
		j.logger.Debug().Str("job_id", j.id).Str("state", state.String()).Msg("event dropped, consumer is behind")
	}
}

// start launches the polling loop. first is the delay before the first poll;
// zero polls immediately. Later delays come from schedule.
func (j *Job) start(ctx context.Context, c *Client, first time.Duration, schedule retry.Backoff) {
	jobCtx, cancel := context.WithCancel(ctx)

	j.mu.Lock()
	if j.stopped {
		j.mu.Unlock()
		cancel()
		j.finish(models.PollStopped, nil, nil)
		close(j.events)
		close(j.done)
		return
	}
	j.cancel = cancel
	j.mu.Unlock()
	j.setState(models.PollPolling, first, nil, nil)

	go func() {
		defer c.forget(j)
		defer close(j.done)
		defer close(j.events)
		defer cancel()

		j.run(jobCtx, c, first, schedule)
	}()
}

func (j *Job) run(ctx context.Context, c *Client, delay time.Duration, schedule retry.Backoff) {
	for {
		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				j.finish(models.PollStopped, nil, nil)
				return
			case <-timer.C:
			}
		}
		if ctx.Err() != nil {
			j.finish(models.PollStopped, nil, nil)
			return
		}

		resp, err := c.dispatcher.Send(ctx, models.CommandStatusOne, c.params(j.req))
		if err != nil {
			if ctx.Err() != nil {
				j.finish(models.PollStopped, nil, nil)
				return
			}
			j.logger.Error().Err(err).Msg("status poll failed")
			c.region.Update(models.LFNTag(j.req.LFN), failureHTML(err))
			j.finish(models.PollFailed, nil, err)
			return
		}

		c.region.Update(models.LFNTag(j.req.LFN), resp.HTML)
		if !resp.Pending {
			j.finish(models.PollDone, &resp, nil)
			return
		}

		delay, _ = schedule.Next()
		j.setState(models.PollPolling, delay, &resp, nil)
		j.logger.Debug().Dur("next", delay).Msg("still pending")
	}
}

// abort ends a job whose loop was never started.
func (j *Job) abort(err error) {
	j.finish(models.PollFailed, nil, err)
	close(j.events)
	close(j.done)
}

func (j *Job) finish(state models.PollState, resp *models.Response, err error) {
	j.setState(state, 0, resp, err)
	j.logger.Info().Str("state", state.String()).Msg("polling finished")
}
