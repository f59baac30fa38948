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

// Package verify implements the concurrent verification engine: it drives
// a parsed checksum list through streaming digest computation, compares
// results against expectations, records outcomes into a status sink and
// emits events onto an outbound channel for whatever front-end is
// observing the run.
package verify

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/SuperCoolGuy855/md5check/pkg/config"
	hashengines "github.com/SuperCoolGuy855/md5check/pkg/hashing/engines"
	hashio "github.com/SuperCoolGuy855/md5check/pkg/hashing/engines/io"
	"github.com/SuperCoolGuy855/md5check/pkg/manifest"
	"github.com/SuperCoolGuy855/md5check/pkg/status"
)

// Runner executes one verification run. Construct it with NewRunner, call
// Run exactly once (typically on its own goroutine), then discard it: a
// new run takes a new Runner, sink and channel.
type Runner struct {
	cfg       config.RunConfig
	sink      status.Sink
	events    chan<- Event
	newHasher hashio.FileHasherFactory
}

// NewRunner validates cfg and builds a Runner sending events into events.
//
// The events channel must have capacity for one event per work item plus
// two (see NewEventChannel); the engine relies on sends never blocking so
// an abandoned consumer cannot wedge workers. The channel is closed by
// Run after the final Completed event.
func NewRunner(cfg config.RunConfig, sink status.Sink, events chan<- Event) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run config: %w", err)
	}

	if sink == nil {
		return nil, fmt.Errorf("status sink must not be nil")
	}

	factory := func(path string) (hashio.FileHasher, error) {
		engine, err := hashengines.Create(cfg.Algorithm)
		if err != nil {
			return nil, err
		}
		return hashio.NewSimpleFileHasher(path, engine, cfg.BlockSize)
	}

	return &Runner{
		cfg:       cfg,
		sink:      sink,
		events:    events,
		newHasher: factory,
	}, nil
}

// Run verifies every item and closes the event channel when done.
//
// An Idle placeholder is emitted first. With cfg.Sort the items are
// reordered by (path, expected digest) on a private copy, leaving the
// caller's slice untouched. Each item is then checked: an unreadable file
// yields a Failure event and an error outcome, a digest mismatch yields a
// Mismatch event and an incorrect outcome, a match yields a silent
// correct outcome. A single file failure never aborts the run and no item
// is retried.
//
// Sequential execution preserves list order for both sink updates and
// events. Parallel execution fans items across a worker pool sized to
// available hardware parallelism with no ordering among items, but the
// counter totals in the sink are exact either way and the final
// Completed(elapsed) event is a barrier: it is sent only after every
// outcome is recorded and every per-item event queued.
func (r *Runner) Run(items []manifest.Entry) {
	defer close(r.events)

	r.events <- Idle{}

	if r.cfg.Sort {
		sorted := make([]manifest.Entry, len(items))
		copy(sorted, items)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Compare(sorted[j]) < 0
		})
		items = sorted
	}

	start := time.Now()

	if r.cfg.Parallel {
		r.runParallel(items)
	} else {
		for _, item := range items {
			r.checkOne(item)
		}
	}

	r.events <- Completed{Elapsed: time.Since(start)}
}

// Run is the convenience entry point: it builds a Runner and executes the
// run on the calling goroutine. Front-ends normally invoke it on a
// background goroutine and drain events at their own pace.
func Run(items []manifest.Entry, cfg config.RunConfig, sink status.Sink, events chan<- Event) error {
	runner, err := NewRunner(cfg, sink, events)
	if err != nil {
		return err
	}

	runner.Run(items)
	return nil
}

// runParallel fans the work list out across a worker pool. Workers pull
// from an unbuffered jobs channel so fast workers take more items.
func (r *Runner) runParallel(items []manifest.Entry) {
	workers := runtime.NumCPU()
	if workers > len(items) {
		workers = len(items)
	}
	if workers == 0 {
		return
	}

	jobs := make(chan manifest.Entry)

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for item := range jobs {
				r.checkOne(item)
			}
		}()
	}

	for _, item := range items {
		jobs <- item
	}
	close(jobs)

	wg.Wait()
}

// checkOne verifies a single work item: digest, compare, record, emit.
func (r *Runner) checkOne(item manifest.Entry) {
	actual, err := r.digestFile(item.Path)
	if err != nil {
		r.events <- Failure{Description: err.Error()}
		r.sink.RecordOutcome(item.Path, "", item.Expected, status.OutcomeError)
		return
	}

	if actual != item.Expected {
		r.events <- Mismatch{Path: item.Path}
		r.sink.RecordOutcome(item.Path, actual, item.Expected, status.OutcomeIncorrect)
		return
	}

	r.sink.RecordOutcome(item.Path, actual, item.Expected, status.OutcomeCorrect)
}

func (r *Runner) digestFile(path string) (string, error) {
	hasher, err := r.newHasher(path)
	if err != nil {
		return "", err
	}

	d, err := hasher.Compute()
	if err != nil {
		return "", err
	}

	return d.Hex(), nil
}
