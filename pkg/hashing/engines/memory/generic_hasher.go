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

// Package memory provides in-memory streaming hash engines and registers
// the built-in algorithms with the engine registry. Importing this package
// (possibly blank) makes "md5", "sha1", "sha256" and "blake2b" available
// through hashengines.Create.
package memory

import (
	"hash"

	"github.com/SuperCoolGuy855/md5check/pkg/hashing/digests"
	hashengines "github.com/SuperCoolGuy855/md5check/pkg/hashing/engines"
)

var _ hashengines.StreamingHashEngine = (*GenericHashEngine)(nil)

// HashFactoryFunc creates a new hash.Hash instance.
type HashFactoryFunc func() (hash.Hash, error)

// GenericHashEngine adapts any hash.Hash implementation to the
// StreamingHashEngine interface, so each algorithm does not need its own
// wrapper type.
type GenericHashEngine struct {
	name    string
	size    int
	factory HashFactoryFunc
	h       hash.Hash
}

// NewGenericHashEngine creates a generic engine named name producing
// size-byte digests from hash.Hash instances built by factory. If
// initialData is non-empty it is written into the hash immediately.
func NewGenericHashEngine(name string, size int, factory HashFactoryFunc, initialData []byte) (*GenericHashEngine, error) {
	h, err := factory()
	if err != nil {
		return nil, err
	}

	engine := &GenericHashEngine{
		name:    name,
		size:    size,
		factory: factory,
		h:       h,
	}

	if len(initialData) > 0 {
		// hash.Hash.Write never returns an error per its contract.
		_, _ = engine.h.Write(initialData)
	}

	return engine, nil
}

// Update appends additional bytes to the data being hashed.
func (e *GenericHashEngine) Update(data []byte) {
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Reset clears the hash state and optionally seeds it with new data.
func (e *GenericHashEngine) Reset(data []byte) {
	h, err := e.factory()
	if err != nil {
		// The factory already succeeded once in the constructor, so a
		// failure here would be a programming error in the factory.
		panic(err)
	}
	e.h = h
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Compute finalizes the hash and returns the digest.
func (e *GenericHashEngine) Compute() (digests.Digest, error) {
	sum := e.h.Sum(nil)
	return digests.NewDigest(e.name, sum), nil
}

// DigestName returns the algorithm identifier.
func (e *GenericHashEngine) DigestName() string {
	return e.name
}

// DigestSize returns the byte length of the produced digest.
func (e *GenericHashEngine) DigestSize() int {
	return e.size
}
