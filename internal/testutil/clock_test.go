// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"slices"
	"testing"
	"time"
)

func TestNewFakeClock_ZeroUsesReference(t *testing.T) {
	t.Parallel()

	if got := NewFakeClock(time.Time{}).Now(); !got.Equal(ReferenceTime) {
		t.Errorf("Now() = %v, want %v", got, ReferenceTime)
	}
}

func TestFakeClock_AfterFiresOnAdvance(t *testing.T) {
	t.Parallel()

	clock := NewFakeClock(time.Time{})
	ch := clock.After(3 * time.Second)

	select {
	case <-ch:
		t.Fatal("After() fired before the clock advanced")
	default:
	}

	clock.Advance(2 * time.Second)
	select {
	case <-ch:
		t.Fatal("After() fired before its target")
	default:
	}
	if clock.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", clock.Pending())
	}

	clock.Advance(time.Second)
	select {
	case got := <-ch:
		if want := ReferenceTime.Add(3 * time.Second); !got.Equal(want) {
			t.Errorf("After() delivered %v, want %v", got, want)
		}
	default:
		t.Fatal("After() did not fire at its target")
	}
	if clock.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", clock.Pending())
	}
}

func TestFakeClock_SetFiresDueWaiters(t *testing.T) {
	t.Parallel()

	clock := NewFakeClock(time.Time{})
	early := clock.After(time.Second)
	late := clock.After(time.Hour)

	clock.Set(ReferenceTime.Add(time.Minute))

	select {
	case <-early:
	default:
		t.Error("early waiter should have fired")
	}
	select {
	case <-late:
		t.Error("late waiter should still be pending")
	default:
	}
}

func TestFakeClock_NonPositiveFiresImmediately(t *testing.T) {
	t.Parallel()

	clock := NewFakeClock(time.Time{})
	for _, d := range []time.Duration{0, -time.Second} {
		select {
		case <-clock.After(d):
		default:
			t.Errorf("After(%v) should fire immediately", d)
		}
	}
}

func TestAutoClock(t *testing.T) {
	t.Parallel()

	clock := NewAutoClock(time.Time{})
	for range 3 {
		select {
		case <-clock.After(3 * time.Second):
		default:
			t.Fatal("auto clock should fire immediately")
		}
	}

	if got, want := clock.Now(), ReferenceTime.Add(9*time.Second); !got.Equal(want) {
		t.Errorf("Now() = %v, want %v", got, want)
	}
	want := []time.Duration{3 * time.Second, 3 * time.Second, 3 * time.Second}
	if got := clock.Waits(); !slices.Equal(got, want) {
		t.Errorf("Waits() = %v, want %v", got, want)
	}
}
