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

// Package io provides hash engines that read their input from files.
package io

import (
	hashengines "github.com/SuperCoolGuy855/md5check/pkg/hashing/engines"
)

// FileHasher is a marker interface for hash engines whose input is a file
// rather than in-memory content.
type FileHasher interface {
	hashengines.HashEngine
}

// FileHasherFactory builds a FileHasher for a path. The verification
// engine calls the factory once per work item, so every worker gets its
// own independent hash state.
type FileHasherFactory func(path string) (FileHasher, error)
