// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package poller

import (
	"time"

	"github.com/sethvargo/go-retry"
)

// newSchedule returns the delays between consecutive statusOne polls,
// starting at first and doubling up to max.
func newSchedule(first, max time.Duration) retry.Backoff {
	if first > max {
		first = max
	}
	return retry.WithCappedDuration(max, retry.NewExponential(first))
}

// nextInterval is the delay that follows interval: min(interval*2, max).
func nextInterval(interval, max time.Duration) time.Duration {
	if interval*2 < max {
		return interval * 2
	}
	return max
}
