// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EffectKind names a client-side action the FileMover service asks for.
// The service used to ship these as inline script; they are now decoded into
// a closed set of kinds and interpreted by fixed client logic.
type EffectKind string

const (
	// EffectPollStatus asks the client to poll statusOne for Arg (an LFN).
	EffectPollStatus EffectKind = "poll-status"
	// EffectClearInterval asks the client to stop periodic refreshes.
	EffectClearInterval EffectKind = "clear-interval"
	// EffectDBSStatus asks the client to poll dbsStatus for Arg (an instance).
	EffectDBSStatus EffectKind = "dbs-status"
	// EffectFormAction resets the event form action to Arg.
	EffectFormAction EffectKind = "form-action"
	// EffectUnknown is a script block that matched no known pattern. It is
	// reported and never executed.
	EffectUnknown EffectKind = "unknown"
)

// SideEffect is one decoded script instruction from a service response.
type SideEffect struct {
	Kind EffectKind `json:"kind"`
	Arg  string     `json:"arg,omitempty"`
}

// Response is the typed form of a FileMover service reply.
type Response struct {
	// Region is the element id the HTML is meant for. Empty when the service
	// did not name one.
	Region string `json:"region,omitempty"`

	// HTML is the markup with every script block removed.
	HTML string `json:"html"`

	// Pending reports whether the body carried the loading marker, i.e. the
	// job has not left the loading state yet.
	Pending bool `json:"pending"`

	Effects []SideEffect `json:"effects,omitempty"`
}

// HasEffect reports whether the response carries an effect of the given kind.
func (r Response) HasEffect(kind EffectKind) bool {
	for _, e := range r.Effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
