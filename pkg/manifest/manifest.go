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

// Package manifest parses checksum-list files into an ordered list of
// verification work items.
//
// The accepted line format is the conventional md5sum/sha1sum one:
//
//	<hex-digest><SP>[*]<path-to-end-of-line>
//
// The digest must be exactly 2*digestSize lowercase hex characters. After
// the separating space, a single leading '*' (the "binary mode" marker) or
// a second space is stripped; the remainder of the line is the path,
// verbatim, with no escaping. Lines not matching this shape are silently
// skipped, which tolerates comment and header lines in common checksum
// dialects. Both marker forms are read identically: files are always
// streamed as raw bytes.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyManifest is returned when a checksum list contains no valid
// entries at all. This is the only fatal parse condition; it is reported
// before any verification run starts.
var ErrEmptyManifest = errors.New("no checksum entries found")

// Entry is one checksum-list line: a file path paired with its expected
// digest in lowercase hex. Entries are immutable once parsed; the
// verification engine reads them but never mutates them.
type Entry struct {
	// Path of the file to verify, as written in the list. Relative paths
	// resolve against the process working directory.
	Path string

	// Expected digest, lowercase hex.
	Expected string
}

// Compare orders entries lexicographically by (Path, Expected). The order
// is total, so a sorted work list is deterministic even when the same path
// appears with two different expected digests.
func (e Entry) Compare(other Entry) int {
	if c := strings.Compare(e.Path, other.Path); c != 0 {
		return c
	}
	return strings.Compare(e.Expected, other.Expected)
}

// Parse reads a checksum list from r and returns its entries in file
// order. digestSize is the digest width in bytes of the algorithm the list
// was generated with (16 for md5, giving the canonical 32 hex digits).
//
// Returns ErrEmptyManifest (wrapped) when no line matches.
func Parse(r io.Reader, digestSize int) ([]Entry, error) {
	if digestSize <= 0 {
		return nil, fmt.Errorf("digest size must be positive, got %d", digestSize)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read checksum list: %w", err)
	}

	hexLen := 2 * digestSize
	var entries []Entry

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")

		entry, ok := parseLine(line, hexLen)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("parse checksum list: %w", ErrEmptyManifest)
	}

	return entries, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string, digestSize int) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open checksum list %q: %w", path, err)
	}
	defer f.Close()

	return Parse(f, digestSize)
}

// parseLine matches one line against the checksum format. ok is false for
// lines that should be skipped.
func parseLine(line string, hexLen int) (Entry, bool) {
	// Digest, separator and at least one path character.
	if len(line) < hexLen+2 {
		return Entry{}, false
	}

	digest := line[:hexLen]
	if !isLowerHex(digest) {
		return Entry{}, false
	}

	if line[hexLen] != ' ' {
		return Entry{}, false
	}

	path := line[hexLen+1:]
	if path[0] == '*' || path[0] == ' ' {
		path = path[1:]
	}

	if path == "" {
		return Entry{}, false
	}

	return Entry{Path: path, Expected: digest}, true
}

func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
