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
	"testing"

	hashengines "github.com/SuperCoolGuy855/md5check/pkg/hashing/engines"
)

func TestMD5KnownVectors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"abc", "900150983cd24fb0d6963f7d28e17f72"},
	}

	for _, tc := range tests {
		e := NewMD5Engine(nil)
		e.Update([]byte(tc.input))

		d, err := e.Compute()
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if d.Hex() != tc.want {
			t.Fatalf("md5(%q) = %s, want %s", tc.input, d.Hex(), tc.want)
		}
		if d.Algorithm() != "md5" {
			t.Fatalf("Algorithm() = %q, want md5", d.Algorithm())
		}
	}
}

func TestMD5StreamingEqualsOneShot(t *testing.T) {
	oneShot := NewMD5Engine([]byte("hello world"))

	streamed := NewMD5Engine(nil)
	streamed.Update([]byte("hello "))
	streamed.Update([]byte("world"))

	d1, err := oneShot.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	d2, err := streamed.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if !d1.Equal(d2) {
		t.Fatalf("streamed digest %s != one-shot digest %s", d2.Hex(), d1.Hex())
	}
}

func TestMD5Reset(t *testing.T) {
	e := NewMD5Engine([]byte("garbage"))
	e.Reset(nil)

	d, err := e.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if d.Hex() != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Fatalf("digest after Reset = %s, want empty-input digest", d.Hex())
	}
}

func TestRegisteredAlgorithms(t *testing.T) {
	for _, algo := range []string{"md5", "sha1", "sha256", "blake2b"} {
		engine, err := hashengines.Create(algo)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", algo, err)
		}
		if engine.DigestName() != algo {
			t.Fatalf("DigestName() = %q, want %q", engine.DigestName(), algo)
		}
		if engine.DigestSize() <= 0 {
			t.Fatalf("DigestSize() = %d for %q, want positive", engine.DigestSize(), algo)
		}
	}
}

func TestCreateUnknownAlgorithm(t *testing.T) {
	if _, err := hashengines.Create("whirlpool"); err == nil {
		t.Fatalf("Create of unregistered algorithm should fail")
	}
}

func TestEnginesAreIndependent(t *testing.T) {
	a, err := hashengines.Create("md5")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	b, err := hashengines.Create("md5")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	a.Update([]byte("only in a"))

	db, err := b.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if db.Hex() != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Fatalf("engine b saw engine a's input: %s", db.Hex())
	}
}
