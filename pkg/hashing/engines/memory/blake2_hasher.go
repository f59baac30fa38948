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
	"hash"

	hashengines "github.com/SuperCoolGuy855/md5check/pkg/hashing/engines"
	"golang.org/x/crypto/blake2b"
)

func init() {
	// blake2b-256: same digest width as sha256 but considerably faster on
	// large files.
	hashengines.MustRegister("blake2b", func() (hashengines.StreamingHashEngine, error) {
		return NewGenericHashEngine("blake2b", blake2b.Size256, func() (hash.Hash, error) {
			return blake2b.New256(nil)
		}, nil)
	})
}
