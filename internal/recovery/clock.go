// SPDX-License-Identifier: MPL-2.0

package recovery

import "time"

type (
	// Clock abstracts time for the narrative delay and the reason log
	// timestamps. Tests substitute testutil.FakeClock.
	Clock interface {
		Now() time.Time
		After(d time.Duration) <-chan time.Time
	}

	// RealClock uses the system clock.
	RealClock struct{}
)

// Now returns the current system time.
func (RealClock) Now() time.Time { return time.Now() }

// After returns a channel that receives the time after d.
func (RealClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
