// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PollState is the lifecycle state of one retrieval request as seen by the
// polling client.
type PollState int

const (
	PollIdle PollState = iota
	PollRequested
	PollPolling
	PollDone
	PollFailed
	PollStopped
)

func (s PollState) String() string {
	switch s {
	case PollIdle:
		return "idle"
	case PollRequested:
		return "requested"
	case PollPolling:
		return "polling"
	case PollDone:
		return "done"
	case PollFailed:
		return "failed"
	case PollStopped:
		return "stopped"
	default:
		return "invalid"
	}
}

// Terminal reports whether no further polls follow this state.
func (s PollState) Terminal() bool {
	return s == PollDone || s == PollFailed || s == PollStopped
}

// PollRequest identifies one retrieval request and carries the delay before
// its next status poll.
type PollRequest struct {
	LFN      string
	User     string
	Interval time.Duration
}

// Key identifies the request among all requests a client tracks.
func (p PollRequest) Key() string {
	return p.User + "\x00" + p.LFN
}

// PollEvent is emitted by a polling job on every state change and every
// status response.
type PollEvent struct {
	JobID    string
	LFN      string
	State    PollState
	Interval time.Duration
	Response Response
	Err      error
}

// MarshalText renders the state by name in JSON and logs.
func (s PollState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// JobStatus is the portal's view of one retrieval request of a user.
type JobStatus struct {
	LFN   string    `json:"lfn"`
	Tag   string    `json:"tag"`
	State PollState `json:"state"`

	// IntervalMS is the current delay between status polls.
	IntervalMS int64 `json:"interval_ms"`

	// HTML is the markup last written to the request's region.
	HTML string `json:"html"`
}
