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

package config

import (
	"os"
	"path/filepath"
	"testing"

	_ "github.com/SuperCoolGuy855/md5check/pkg/hashing/engines/memory"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Algorithm != "md5" {
		t.Fatalf("Algorithm = %q, want md5", cfg.Algorithm)
	}
	if !cfg.Parallel {
		t.Fatalf("Parallel = false, want true")
	}
	if cfg.Sort {
		t.Fatalf("Sort = true, want false")
	}
	if cfg.BlockSize != DefaultBlockSize {
		t.Fatalf("BlockSize = %d, want %d", cfg.BlockSize, DefaultBlockSize)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestValidateBlockSize(t *testing.T) {
	cfg := Default()
	cfg.BlockSize = MinBlockSize
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() at minimum block size = %v, want nil", err)
	}

	cfg.BlockSize = MinBlockSize - 1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate() should reject block size below %d", MinBlockSize)
	}
}

func TestValidateAlgorithm(t *testing.T) {
	cfg := Default()
	cfg.Algorithm = "rot13"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate() should reject an unregistered algorithm")
	}

	cfg.Algorithm = "sha256"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() with sha256 = %v, want nil", err)
	}
}

func TestFileApply(t *testing.T) {
	algo := "sha256"
	parallel := false
	blockSize := 65536

	f := File{
		Algorithm: &algo,
		Parallel:  &parallel,
		BlockSize: &blockSize,
	}

	cfg := f.Apply(Default())

	if cfg.Algorithm != "sha256" || cfg.Parallel || cfg.BlockSize != 65536 {
		t.Fatalf("Apply() = %+v, want set fields overlaid", cfg)
	}
	// Sort was not set in the file, so the default survives.
	if cfg.Sort {
		t.Fatalf("Apply() changed Sort without the key being set")
	}
}

func TestFileApplyZero(t *testing.T) {
	cfg := File{}.Apply(Default())
	if cfg != Default() {
		t.Fatalf("zero File must apply nothing: got %+v", cfg)
	}
}

func TestLoadFileMissing(t *testing.T) {
	f, err := LoadFile(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() on missing file = %v, want nil error", err)
	}
	if f.Algorithm != nil || f.Parallel != nil || f.Sort != nil || f.BlockSize != nil {
		t.Fatalf("missing file should decode to the zero File: %+v", f)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "md5check.yaml")
	content := "algorithm: sha1\nsort: true\nblock_size: 4096\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	cfg := f.Apply(Default())
	if cfg.Algorithm != "sha1" || !cfg.Sort || cfg.BlockSize != 4096 {
		t.Fatalf("loaded config = %+v, want file values applied", cfg)
	}
	if !cfg.Parallel {
		t.Fatalf("parallel key absent from file, default must survive")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("block_size: [not an int\n"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatalf("LoadFile() should fail on malformed YAML")
	}
}
