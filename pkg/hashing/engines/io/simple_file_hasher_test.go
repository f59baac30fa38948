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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/SuperCoolGuy855/md5check/pkg/hashing/engines/memory"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestComputeEmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.txt", nil)

	h, err := NewSimpleFileHasher(path, memory.NewMD5Engine(nil), 1024)
	if err != nil {
		t.Fatalf("NewSimpleFileHasher() error = %v", err)
	}

	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if d.Hex() != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Fatalf("digest of empty file = %s, want md5 empty-input digest", d.Hex())
	}
}

func TestComputeIndependentOfBlockSize(t *testing.T) {
	// File larger than every tested block size, not a multiple of any.
	content := bytes.Repeat([]byte("0123456789abcdef-"), 700)
	path := writeTempFile(t, "big.bin", content)

	var digests []string
	for _, blockSize := range []int{0, 1024, 4096, 1 << 20} {
		h, err := NewSimpleFileHasher(path, memory.NewMD5Engine(nil), blockSize)
		if err != nil {
			t.Fatalf("NewSimpleFileHasher(blockSize=%d) error = %v", blockSize, err)
		}

		d, err := h.Compute()
		if err != nil {
			t.Fatalf("Compute(blockSize=%d) error = %v", blockSize, err)
		}
		digests = append(digests, d.Hex())
	}

	for i := 1; i < len(digests); i++ {
		if digests[i] != digests[0] {
			t.Fatalf("digest varies with block size: %v", digests)
		}
	}
}

func TestComputeMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")

	h, err := NewSimpleFileHasher(path, memory.NewMD5Engine(nil), 1024)
	if err != nil {
		t.Fatalf("NewSimpleFileHasher() error = %v", err)
	}

	if _, err := h.Compute(); err == nil {
		t.Fatalf("Compute() on missing file should fail")
	}
}

func TestComputeIsRepeatable(t *testing.T) {
	path := writeTempFile(t, "data.bin", []byte("same bytes every time"))

	h, err := NewSimpleFileHasher(path, memory.NewMD5Engine(nil), 1024)
	if err != nil {
		t.Fatalf("NewSimpleFileHasher() error = %v", err)
	}

	d1, err := h.Compute()
	if err != nil {
		t.Fatalf("first Compute() error = %v", err)
	}
	d2, err := h.Compute()
	if err != nil {
		t.Fatalf("second Compute() error = %v", err)
	}

	if !d1.Equal(d2) {
		t.Fatalf("repeat Compute() differs: %s vs %s", d1.Hex(), d2.Hex())
	}
}

func TestSetFile(t *testing.T) {
	a := writeTempFile(t, "a.txt", []byte("aaa"))
	b := writeTempFile(t, "b.txt", []byte("bbb"))

	h, err := NewSimpleFileHasher(a, memory.NewMD5Engine(nil), 1024)
	if err != nil {
		t.Fatalf("NewSimpleFileHasher() error = %v", err)
	}

	da, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if err := h.SetFile(b); err != nil {
		t.Fatalf("SetFile() error = %v", err)
	}

	db, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() after SetFile error = %v", err)
	}

	if da.Equal(db) {
		t.Fatalf("different files produced the same digest")
	}
}

func TestConstructorValidation(t *testing.T) {
	if _, err := NewSimpleFileHasher("x", memory.NewMD5Engine(nil), -1); err == nil {
		t.Fatalf("negative block size should be rejected")
	}
	if _, err := NewSimpleFileHasher("", memory.NewMD5Engine(nil), 1024); err == nil {
		t.Fatalf("empty path should be rejected")
	}
	if _, err := NewSimpleFileHasher("x", nil, 1024); err == nil {
		t.Fatalf("nil content hasher should be rejected")
	}
}
