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

package io

import (
	"fmt"
	"io"
	"os"

	"github.com/SuperCoolGuy855/md5check/pkg/hashing/digests"
	hashengines "github.com/SuperCoolGuy855/md5check/pkg/hashing/engines"
)

var _ FileHasher = (*SimpleFileHasher)(nil)

// SimpleFileHasher streams an entire file into an inner StreamingHashEngine
// in fixed-size blocks. The working set is bounded by one block buffer, so
// files larger than available memory are fine, and a zero-length file
// produces the algorithm's empty-input digest.
//
// Files are always read as raw bytes; there is no text mode.
type SimpleFileHasher struct {
	filePath      string
	contentHasher hashengines.StreamingHashEngine
	blockSize     int
}

// NewSimpleFileHasher constructs a SimpleFileHasher reading filePath in
// blockSize-byte blocks. blockSize 0 means "read the whole file at once";
// negative values are rejected.
func NewSimpleFileHasher(
	filePath string,
	contentHasher hashengines.StreamingHashEngine,
	blockSize int,
) (*SimpleFileHasher, error) {
	if blockSize < 0 {
		return nil, fmt.Errorf("block size must be non-negative, got %d", blockSize)
	}

	if filePath == "" {
		return nil, fmt.Errorf("file path must be non-empty")
	}

	if contentHasher == nil {
		return nil, fmt.Errorf("content hasher must not be nil")
	}

	return &SimpleFileHasher{
		filePath:      filePath,
		contentHasher: contentHasher,
		blockSize:     blockSize,
	}, nil
}

// SetFile changes the file that will be hashed on the next Compute call.
func (h *SimpleFileHasher) SetFile(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("file path must be non-empty")
	}
	h.filePath = filePath
	return nil
}

// DigestName returns the inner content hasher's algorithm name.
func (h *SimpleFileHasher) DigestName() string {
	return h.contentHasher.DigestName()
}

// DigestSize is delegated to the inner content hasher.
func (h *SimpleFileHasher) DigestSize() int {
	return h.contentHasher.DigestSize()
}

// Compute hashes the whole file and returns its digest.
//
// I/O errors from open or read are propagated; there is no retry. The
// inner engine is reset before each computation, so one hasher can be
// reused across files via SetFile.
func (h *SimpleFileHasher) Compute() (digests.Digest, error) {
	h.contentHasher.Reset(nil)

	f, err := os.Open(h.filePath)
	if err != nil {
		return digests.Digest{}, fmt.Errorf("open file %q: %w", h.filePath, err)
	}
	defer f.Close()

	if h.blockSize == 0 {
		data, err := io.ReadAll(f)
		if err != nil {
			return digests.Digest{}, fmt.Errorf("read file %q: %w", h.filePath, err)
		}
		h.contentHasher.Update(data)
	} else {
		buf := make([]byte, h.blockSize)
		for {
			n, err := f.Read(buf)
			if n > 0 {
				h.contentHasher.Update(buf[:n])
			}
			if err != nil {
				if err == io.EOF {
					break
				}
				return digests.Digest{}, fmt.Errorf("read file %q: %w", h.filePath, err)
			}
		}
	}

	d, err := h.contentHasher.Compute()
	if err != nil {
		return digests.Digest{}, fmt.Errorf("compute digest: %w", err)
	}

	return d, nil
}
