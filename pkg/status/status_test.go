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

package status

import (
	"sync"
	"testing"
)

func TestAggregateRecordsFieldsAndCounters(t *testing.T) {
	a := NewAggregate()

	a.RecordOutcome("a.txt", "1111", "1111", OutcomeCorrect)
	a.RecordOutcome("b.txt", "2222", "ffff", OutcomeIncorrect)
	a.RecordOutcome("c.txt", "", "3333", OutcomeError)

	snap := a.Snapshot()

	if snap.Correct != 1 || snap.Incorrect != 1 || snap.Errors != 1 {
		t.Fatalf("counters = {%d,%d,%d}, want {1,1,1}", snap.Correct, snap.Incorrect, snap.Errors)
	}
	if snap.CurrentFile != "c.txt" || snap.CurrentDigest != "" || snap.CurrentExpected != "3333" {
		t.Fatalf("current fields = %q/%q/%q, want last recorded update",
			snap.CurrentFile, snap.CurrentDigest, snap.CurrentExpected)
	}
	if snap.Total() != 3 {
		t.Fatalf("Total() = %d, want 3", snap.Total())
	}
}

func TestAggregateSnapshotIsACopy(t *testing.T) {
	a := NewAggregate()
	a.RecordOutcome("a.txt", "1111", "1111", OutcomeCorrect)

	snap := a.Snapshot()
	snap.Correct = 99
	snap.CurrentFile = "mutated"

	if got := a.Snapshot(); got.Correct != 1 || got.CurrentFile != "a.txt" {
		t.Fatalf("mutating a snapshot leaked into the aggregate: %+v", got)
	}
}

func TestAggregateConcurrentCountsExact(t *testing.T) {
	a := NewAggregate()

	const workers = 8
	const perWorker = 1000

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				switch i % 3 {
				case 0:
					a.RecordOutcome("f", "d", "d", OutcomeCorrect)
				case 1:
					a.RecordOutcome("f", "d", "e", OutcomeIncorrect)
				default:
					a.RecordOutcome("f", "", "e", OutcomeError)
				}
			}
		}(w)
	}
	wg.Wait()

	snap := a.Snapshot()
	if snap.Total() != workers*perWorker {
		t.Fatalf("Total() = %d, want %d (no update may be lost)", snap.Total(), workers*perWorker)
	}
}

func TestCounterConcurrentTicks(t *testing.T) {
	c := NewCounter()

	const workers = 16
	const perWorker = 1000

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				c.RecordOutcome("f", "d", "d", OutcomeCorrect)
			}
		}()
	}
	wg.Wait()

	if got := c.Ticks(); got != workers*perWorker {
		t.Fatalf("Ticks() = %d, want %d", got, workers*perWorker)
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeCorrect, "correct"},
		{OutcomeIncorrect, "incorrect"},
		{OutcomeError, "error"},
		{Outcome(42), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.outcome.String(); got != tc.want {
			t.Fatalf("Outcome(%d).String() = %q, want %q", tc.outcome, got, tc.want)
		}
	}
}
