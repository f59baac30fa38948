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

// Package config holds the verification run configuration and the optional
// YAML defaults file the CLI reads it from.
package config

import (
	"fmt"

	hashengines "github.com/SuperCoolGuy855/md5check/pkg/hashing/engines"
)

const (
	// MinBlockSize is the smallest accepted read block size in bytes.
	MinBlockSize = 1024

	// DefaultBlockSize is the read block size used when nothing else is
	// configured.
	DefaultBlockSize = 8192

	// DefaultAlgorithm is the hash algorithm checksum lists are assumed
	// to carry digests for.
	DefaultAlgorithm = "md5"
)

// RunConfig is the configuration for one verification run.
//
// It is a plain value type: the engine captures it by value at run start,
// so a front-end mutating its own settings afterwards cannot affect an
// in-flight run.
type RunConfig struct {
	// Algorithm names the registered hash engine used to digest files.
	Algorithm string

	// Parallel selects the data-parallel execution strategy.
	Parallel bool

	// Sort reorders the work list by (path, expected digest) before
	// dispatch. This groups same-named or same-hash entries for easier
	// visual scanning of output; it is not a performance knob.
	Sort bool

	// BlockSize is the read block size in bytes, at least MinBlockSize.
	BlockSize int
}

// Default returns the built-in configuration: md5, parallel, unsorted,
// 8 KiB blocks.
func Default() RunConfig {
	return RunConfig{
		Algorithm: DefaultAlgorithm,
		Parallel:  true,
		Sort:      false,
		BlockSize: DefaultBlockSize,
	}
}

// Validate checks the configuration before a run starts.
func (c RunConfig) Validate() error {
	if c.BlockSize < MinBlockSize {
		return fmt.Errorf("block size must be at least %d bytes, got %d", MinBlockSize, c.BlockSize)
	}

	if !hashengines.IsSupported(c.Algorithm) {
		return fmt.Errorf("unsupported hash algorithm: %s (supported: %v)",
			c.Algorithm, hashengines.SupportedAlgorithms())
	}

	return nil
}
