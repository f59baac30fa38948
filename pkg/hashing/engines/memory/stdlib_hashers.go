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
	"crypto/sha1"
	"crypto/sha256"
	"hash"

	hashengines "github.com/SuperCoolGuy855/md5check/pkg/hashing/engines"
)

// sha1 and sha256 ride on the generic engine. Checksum lists for these
// algorithms carry 40 and 64 hex digits respectively.
func init() {
	hashengines.MustRegister("sha1", func() (hashengines.StreamingHashEngine, error) {
		return NewGenericHashEngine("sha1", sha1.Size, func() (hash.Hash, error) {
			return sha1.New(), nil
		}, nil)
	})

	hashengines.MustRegister("sha256", func() (hashengines.StreamingHashEngine, error) {
		return NewGenericHashEngine("sha256", sha256.Size, func() (hash.Hash, error) {
			return sha256.New(), nil
		}, nil)
	})
}
