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

// Package hashengines defines the hash engine interfaces used by the
// verification engine, plus a registry of named algorithms.
//
// Any fixed-width digest algorithm with a streaming update/finalize contract
// can be plugged in; md5 is the canonical algorithm for checksum-list
// verification, since the list format carries 32-hex-digit digests.
package hashengines

import (
	"github.com/SuperCoolGuy855/md5check/pkg/hashing/digests"
)

// HashEngine is the core interface for computing a digest.
type HashEngine interface {
	// Compute finalizes the computation and returns the resulting digest.
	Compute() (digests.Digest, error)

	// DigestName returns the canonical name of the hash algorithm.
	// The name is carried into the algorithm field of the Digest
	// returned by Compute.
	DigestName() string

	// DigestSize returns the size in bytes of digests produced by this
	// engine. The returned value must match the Size() of the Digest
	// returned by Compute.
	DigestSize() int
}

// Streaming is the interface for incrementally feeding data to an engine.
// It is separate from HashEngine so that one-shot engines stay possible.
type Streaming interface {
	// Update appends additional bytes to the data being hashed.
	Update(data []byte)

	// Reset clears the hash state and optionally seeds it with new data.
	Reset(data []byte)
}

// StreamingHashEngine combines HashEngine and Streaming for block-wise
// incremental hashing.
type StreamingHashEngine interface {
	HashEngine
	Streaming
}
