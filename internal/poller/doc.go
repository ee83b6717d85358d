// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package poller submits FileMover retrieval requests and follows them until
// the service stops reporting them as pending.
//
// A [Client] owns the command [dispatch.Dispatcher], a [Region] sink for the
// returned markup and the set of running [Job]s. Every job is a cancellable
// goroutine polling statusOne on a capped exponential schedule: 3s, 6s, 10s,
// 10s and so on with the default configuration.
//
// Cancel and Remove stop the job tracked for the same user and LFN before
// the command is sent, so no poll fires after either returns. A cancel sent
// straight through the dispatcher does not touch running jobs.
package poller
