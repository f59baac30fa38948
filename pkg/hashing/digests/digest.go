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

// Package digests provides the immutable digest value type produced by all
// hash engines.
package digests

import (
	"encoding/hex"
	"fmt"
)

// Digest is a computed hash digest together with the name of the algorithm
// that produced it.
//
// Digest is effectively immutable: fields are unexported and the raw value
// is defensively copied on the way in and out, so a Digest can be shared
// between goroutines without synchronization.
type Digest struct {
	algorithm string
	value     []byte
}

// NewDigest creates a Digest for the given algorithm name and raw bytes.
// The value slice is copied.
func NewDigest(algorithm string, value []byte) Digest {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return Digest{
		algorithm: algorithm,
		value:     valueCopy,
	}
}

// Algorithm returns the name of the algorithm that produced this digest.
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	valueCopy := make([]byte, len(d.value))
	copy(valueCopy, d.value)
	return valueCopy
}

// Hex returns the lowercase hexadecimal encoding of the digest value. This
// is the form checksum-list files carry and the form the verification
// engine compares against.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// Size returns the length in bytes of the digest value.
func (d Digest) Size() int {
	return len(d.value)
}

// String returns "algorithm:hexvalue", e.g. "md5:d41d8cd9...".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether two digests have the same algorithm name and value.
func (d Digest) Equal(other Digest) bool {
	if d.algorithm != other.algorithm {
		return false
	}

	if len(d.value) != len(other.value) {
		return false
	}

	for i := range d.value {
		if d.value[i] != other.value[i] {
			return false
		}
	}

	return true
}
