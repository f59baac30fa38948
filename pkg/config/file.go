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
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// DefaultFileName is the config file name looked up in the working
// directory when no --config flag is given.
const DefaultFileName = ".md5check.yaml"

// File is the optional YAML defaults file. All fields are pointers so an
// absent key leaves the corresponding RunConfig field untouched.
//
//	algorithm: md5
//	parallel: true
//	sort: false
//	block_size: 8192
type File struct {
	Algorithm *string `yaml:"algorithm"`
	Parallel  *bool   `yaml:"parallel"`
	Sort      *bool   `yaml:"sort"`
	BlockSize *int    `yaml:"block_size"`
}

// LoadFile reads and decodes a defaults file. A missing file is not an
// error; it decodes to the zero File, which applies nothing.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("read config file %q: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse config file %q: %w", path, err)
	}

	return f, nil
}

// Apply overlays the file's set fields onto c and returns the result.
func (f File) Apply(c RunConfig) RunConfig {
	if f.Algorithm != nil {
		c.Algorithm = *f.Algorithm
	}
	if f.Parallel != nil {
		c.Parallel = *f.Parallel
	}
	if f.Sort != nil {
		c.Sort = *f.Sort
	}
	if f.BlockSize != nil {
		c.BlockSize = *f.BlockSize
	}
	return c
}
