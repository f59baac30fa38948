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

package verify

import "time"

// Event is one notification on a run's outbound channel. The variant set
// is closed: Idle, Mismatch, Failure and Completed. A consumer drains
// events in arrival order; matches produce no event so the stream stays
// focused on actionable results.
type Event interface {
	isEvent()
}

// Idle is a no-op placeholder emitted once at run start so a consumer
// always has at least one entry to render.
type Idle struct{}

// Mismatch reports a file whose computed digest differed from the
// expected one.
type Mismatch struct {
	Path string
}

// Failure reports a file that could not be opened or read. The run
// continues past it.
type Failure struct {
	Description string
}

// Completed is the final event of a run, emitted strictly after every
// outcome has been recorded into the sink and every per-item event has
// been queued. The engine closes the channel right after sending it.
type Completed struct {
	Elapsed time.Duration
}

func (Idle) isEvent()      {}
func (Mismatch) isEvent()  {}
func (Failure) isEvent()   {}
func (Completed) isEvent() {}

// NewEventChannel returns an event channel sized for a run over itemCount
// work items: capacity itemCount+2 holds the Idle marker, at most one
// event per item and the final Completed. With that capacity producer
// sends never block, so a consumer that stops draining mid-run (the only
// cancellation mechanism) leaves the workers running to completion with
// their remaining events parked in the buffer.
func NewEventChannel(itemCount int) chan Event {
	return make(chan Event, itemCount+2)
}
