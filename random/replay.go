// SPDX-License-Identifier: MIT
// Package: netgen/random
//
// replay.go — scripted Source for deterministic fixtures.

package random

// Replay is a Source that returns a fixed sequence of draws in order, for
// both primitives alike. Once exhausted it cycles from the start.
// Values are returned as given; callers are responsible for keeping them
// inside the interval each primitive promises.
type Replay struct {
	draws []float64
	pos   int
	calls int
}

// NewReplay returns a Replay over a copy of draws. Panics on an empty list.
func NewReplay(draws ...float64) *Replay {
	if len(draws) == 0 {
		panic("random: NewReplay with no draws")
	}
	cp := make([]float64, len(draws))
	copy(cp, draws)

	return &Replay{draws: cp}
}

func (r *Replay) next() float64 {
	u := r.draws[r.pos]
	r.pos = (r.pos + 1) % len(r.draws)
	r.calls++

	return u
}

// UniformOpenClosed implements Source.
func (r *Replay) UniformOpenClosed() float64 { return r.next() }

// UniformHalfOpen implements Source.
func (r *Replay) UniformHalfOpen() float64 { return r.next() }

// Calls reports how many draws have been consumed so far.
func (r *Replay) Calls() int { return r.calls }
