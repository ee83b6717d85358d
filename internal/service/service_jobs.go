// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/fm-portal/internal/config"
	"github.com/MKhiriev/fm-portal/internal/dispatch"
	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/internal/poller"
	"github.com/MKhiriev/fm-portal/models"
)

const (
	// defaultSessionTTL is how long finished jobs and idle sessions are kept.
	defaultSessionTTL = 30 * time.Minute
	pruneEvery        = time.Minute
)

type sessionJob struct {
	job *poller.Job
	// finished is zero while the job polls.
	finished time.Time
}

// session is the portal-side state of one owner: their regions and the last
// job of every LFN they submitted.
type session struct {
	client  *poller.Client
	regions *poller.MemoryRegions

	// touched is guarded by jobService.mu.
	touched time.Time

	mu    sync.Mutex
	order []string
	jobs  map[string]*sessionJob
}

// remember records job and consumes its events until the loop exits, so
// nobody has to read them and the finish time is known.
func (s *session) remember(job *poller.Job, now func() time.Time) {
	s.mu.Lock()
	if _, ok := s.jobs[job.LFN()]; !ok {
		s.order = append(s.order, job.LFN())
	}
	entry := &sessionJob{job: job}
	s.jobs[job.LFN()] = entry
	s.mu.Unlock()

	go func() {
		for range job.Events() {
		}
		<-job.Done()

		s.mu.Lock()
		entry.finished = now()
		s.mu.Unlock()
	}()
}

func (s *session) forget(lfn string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forgetLocked(lfn)
}

func (s *session) forgetLocked(lfn string) {
	delete(s.jobs, lfn)
	s.order = slices.DeleteFunc(s.order, func(l string) bool { return l == lfn })
	s.regions.Delete(models.LFNTag(lfn))
}

// prune drops jobs that finished before cutoff and reports how many jobs
// remain.
func (s *session) prune(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for lfn, entry := range s.jobs {
		if !entry.finished.IsZero() && entry.finished.Before(cutoff) {
			s.forgetLocked(lfn)
		}
	}
	return len(s.jobs)
}

func (s *session) status(lfn string) (models.JobStatus, bool) {
	s.mu.Lock()
	entry, ok := s.jobs[lfn]
	s.mu.Unlock()
	if !ok {
		return models.JobStatus{}, false
	}

	tag := models.LFNTag(lfn)
	html, _ := s.regions.Get(tag)
	return models.JobStatus{
		LFN:        lfn,
		Tag:        tag,
		State:      entry.job.State(),
		IntervalMS: entry.job.Interval().Milliseconds(),
		HTML:       html,
	}, true
}

type jobService struct {
	dispatcher dispatch.Dispatcher
	cfg        config.FileMover

	mu        sync.Mutex
	sessions  map[string]*session
	ttl       time.Duration
	now       func() time.Time
	lastPrune time.Time

	logger *logger.Logger
}

// NewJobService returns a JobService polling through dispatcher with the
// delays of cfg. Finished jobs and idle sessions are evicted after
// defaultSessionTTL.
func NewJobService(dispatcher dispatch.Dispatcher, cfg config.FileMover, logger *logger.Logger) (JobService, error) {
	// reject bad delays at startup rather than on the first submit
	if _, err := poller.NewClient(dispatcher, poller.NewMemoryRegions(), cfg, logger); err != nil {
		return nil, err
	}

	return &jobService{
		dispatcher: dispatcher,
		cfg:        cfg,
		sessions:   make(map[string]*session),
		ttl:        defaultSessionTTL,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *jobService) session(owner models.Owner) (*session, error) {
	if owner.Session == "" {
		return nil, ErrNoSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastPrune) >= pruneEvery {
		s.pruneLocked(now)
	}

	if sess, ok := s.sessions[owner.Session]; ok {
		sess.touched = now
		return sess, nil
	}

	regions := poller.NewMemoryRegions()
	client, err := poller.NewClient(s.dispatcher, regions, s.cfg, s.logger)
	if err != nil {
		return nil, err
	}

	sess := &session{client: client, regions: regions, touched: now, jobs: make(map[string]*sessionJob)}
	s.sessions[owner.Session] = sess

	return sess, nil
}

func (s *jobService) lookup(owner models.Owner) (*session, bool) {
	if owner.Session == "" {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[owner.Session]
	if ok {
		sess.touched = s.now()
	}
	return sess, ok
}

// pruneLocked evicts finished jobs older than the ttl and sessions left
// empty and untouched for as long.
func (s *jobService) pruneLocked(now time.Time) {
	s.lastPrune = now
	cutoff := now.Add(-s.ttl)

	for key, sess := range s.sessions {
		if sess.prune(cutoff) == 0 && sess.touched.Before(cutoff) {
			sess.client.Close()
			delete(s.sessions, key)
		}
	}
}

// Submit starts a request. Its polling job is detached from ctx's
// cancellation so it outlives the HTTP request; Close stops it.
func (s *jobService) Submit(ctx context.Context, owner models.Owner, lfn string) (models.JobStatus, error) {
	sess, err := s.session(owner)
	if err != nil {
		return models.JobStatus{}, err
	}

	job, err := sess.client.Submit(context.WithoutCancel(ctx), owner.User, lfn)
	if job == nil {
		return models.JobStatus{}, err
	}
	sess.remember(job, s.now)

	status, _ := sess.status(job.LFN())
	return status, err
}

func (s *jobService) Cancel(ctx context.Context, owner models.Owner, lfn string) (models.JobStatus, error) {
	sess, ok := s.lookup(owner)
	if !ok {
		return models.JobStatus{}, fmt.Errorf("%w: %s", ErrJobNotFound, lfn)
	}

	if _, err := sess.client.Cancel(ctx, owner.User, lfn); err != nil {
		return models.JobStatus{}, err
	}

	status, ok := sess.status(models.NormalizeLFN(lfn))
	if !ok {
		return models.JobStatus{}, fmt.Errorf("%w: %s", ErrJobNotFound, lfn)
	}
	return status, nil
}

func (s *jobService) Remove(ctx context.Context, owner models.Owner, lfn string) error {
	sess, err := s.session(owner)
	if err != nil {
		return err
	}

	if _, err = sess.client.Remove(ctx, owner.User, lfn); err != nil {
		return err
	}
	sess.forget(models.NormalizeLFN(lfn))

	return nil
}

func (s *jobService) Resolve(ctx context.Context, owner models.Owner, params models.Params) (models.Response, error) {
	sess, err := s.session(owner)
	if err != nil {
		return models.Response{}, err
	}
	return sess.client.Resolve(ctx, params)
}

func (s *jobService) Jobs(owner models.Owner) []models.JobStatus {
	sess, ok := s.lookup(owner)
	if !ok {
		return nil
	}

	sess.mu.Lock()
	order := slices.Clone(sess.order)
	sess.mu.Unlock()

	jobs := make([]models.JobStatus, 0, len(order))
	for _, lfn := range order {
		if status, ok := sess.status(lfn); ok {
			jobs = append(jobs, status)
		}
	}
	return jobs
}

func (s *jobService) Region(owner models.Owner, id string) (string, bool) {
	sess, ok := s.lookup(owner)
	if !ok {
		return "", false
	}
	return sess.regions.Get(id)
}

func (s *jobService) Close() {
	s.mu.Lock()
	sessions := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.client.Close()
	}
}
