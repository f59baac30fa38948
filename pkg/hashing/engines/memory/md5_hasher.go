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

package memory

import (
	"crypto/md5"
	"hash"

	"github.com/SuperCoolGuy855/md5check/pkg/hashing/digests"
	hashengines "github.com/SuperCoolGuy855/md5check/pkg/hashing/engines"
)

var _ hashengines.StreamingHashEngine = (*MD5Engine)(nil)

func init() {
	hashengines.MustRegister("md5", func() (hashengines.StreamingHashEngine, error) {
		return NewMD5Engine(nil), nil
	})
}

// MD5Engine is a StreamingHashEngine wrapping crypto/md5. It is the
// canonical engine for checksum-list verification: the list format carries
// 32-hex-digit digests, which is exactly md5's output width.
//
// md5 is used here as a fingerprint, not for cryptographic strength.
type MD5Engine struct {
	h hash.Hash
}

// NewMD5Engine constructs a new md5 engine. If initialData is non-nil it
// is written into the hash immediately.
func NewMD5Engine(initialData []byte) *MD5Engine {
	e := &MD5Engine{h: md5.New()}
	if len(initialData) > 0 {
		_, _ = e.h.Write(initialData)
	}
	return e
}

// Update appends more bytes into the hash state.
func (e *MD5Engine) Update(data []byte) {
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Reset clears the hash state and optionally seeds it with new data.
func (e *MD5Engine) Reset(data []byte) {
	e.h = md5.New()
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Compute finalizes the hash and returns a Digest value.
func (e *MD5Engine) Compute() (digests.Digest, error) {
	sum := e.h.Sum(nil)
	return digests.NewDigest(e.DigestName(), sum), nil
}

// DigestName returns the algorithm identifier.
func (e *MD5Engine) DigestName() string {
	return "md5"
}

// DigestSize returns the byte length of the produced digest.
func (e *MD5Engine) DigestSize() int {
	return md5.Size
}
