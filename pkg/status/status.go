// Copyright 2025 The md5check Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package status provides the sinks the verification engine records
// per-file outcomes into. A sink is selected once per run: Aggregate when
// a front-end wants the full shared record, Counter when a progress tick
// is all that is needed.
package status

import (
	"sync"
	"sync/atomic"
)

// Outcome classifies the result of verifying one file.
type Outcome int

const (
	// OutcomeCorrect means the computed digest matched the expected one.
	OutcomeCorrect Outcome = iota
	// OutcomeIncorrect means the file was read fine but the digest differed.
	OutcomeIncorrect
	// OutcomeError means the file could not be opened or read.
	OutcomeError
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Sink receives one RecordOutcome call per verified file. Implementations
// must be safe for concurrent invocation from multiple workers.
type Sink interface {
	// RecordOutcome records the result of one file check. actual is the
	// computed digest in lowercase hex, empty when the file could not be
	// read.
	RecordOutcome(path, actual, expected string, outcome Outcome)
}

// Snapshot is a consistent copy of an Aggregate's state at one instant.
type Snapshot struct {
	// CurrentFile, CurrentDigest and CurrentExpected describe the most
	// recently recorded file.
	CurrentFile     string
	CurrentDigest   string
	CurrentExpected string

	// Correct, Incorrect and Errors count recorded outcomes by kind.
	Correct   int
	Incorrect int
	Errors    int
}

// Total returns the number of outcomes recorded so far.
func (s Snapshot) Total() int {
	return s.Correct + s.Incorrect + s.Errors
}

var _ Sink = (*Aggregate)(nil)

// Aggregate is the shared-write, shared-read sink used by interactive
// front-ends. Each RecordOutcome sets the whole current_* field group and
// bumps exactly one counter under a single write lock, so Snapshot never
// observes a torn update and the counter sum exactly tracks the number of
// recorded outcomes.
//
// Across updates the current_* tuple is only as fresh as the last worker
// to write it: under parallel execution a reader may see the correct
// counter already incremented for file A while CurrentFile still names
// file B. This relaxed consistency is part of the contract: enforcing
// ordering across updates would serialize the parallel path.
type Aggregate struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewAggregate returns an empty Aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{}
}

// RecordOutcome implements Sink.
func (a *Aggregate) RecordOutcome(path, actual, expected string, outcome Outcome) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.snap.CurrentFile = path
	a.snap.CurrentDigest = actual
	a.snap.CurrentExpected = expected

	switch outcome {
	case OutcomeCorrect:
		a.snap.Correct++
	case OutcomeIncorrect:
		a.snap.Incorrect++
	case OutcomeError:
		a.snap.Errors++
	}
}

// Snapshot returns a consistent copy of the aggregate state. It may be
// called at any time, from any goroutine, including while a run is in
// flight.
func (a *Aggregate) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snap
}

var _ Sink = (*Counter)(nil)

// Counter is the tick-only sink used by batch front-ends driving a
// progress bar. It advances one monotonic counter per recorded outcome
// and discards everything else. Increments are atomic, so no ticks are
// lost under concurrent workers.
type Counter struct {
	ticks atomic.Uint64
}

// NewCounter returns a Counter at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// RecordOutcome implements Sink.
func (c *Counter) RecordOutcome(path, actual, expected string, outcome Outcome) {
	c.ticks.Add(1)
}

// Ticks returns the number of outcomes recorded so far.
func (c *Counter) Ticks() uint64 {
	return c.ticks.Load()
}
