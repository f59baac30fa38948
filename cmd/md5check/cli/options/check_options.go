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

package options

import (
	"github.com/spf13/cobra"

	"github.com/SuperCoolGuy855/md5check/pkg/config"
)

// CheckOptions are the flags of the check command. They overlay the YAML
// defaults file: only flags the user actually set override it.
type CheckOptions struct {
	Parallel   bool   // --parallel
	Sequential bool   // --sequential
	Sort       bool   // --sort
	BlockSize  int    // --block-size
	Algorithm  string // --algorithm
	NoProgress bool   // --no-progress
}

// AddFlags registers the check flags on cmd.
func (o *CheckOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.Parallel, "parallel", "p", true,
		"Hash files concurrently across all CPUs.")
	cmd.Flags().BoolVar(&o.Sequential, "sequential", false,
		"Process files one at a time in list order (overrides --parallel).")
	cmd.Flags().BoolVarP(&o.Sort, "sort", "s", false,
		"Sort the work list by (path, digest) before checking.")
	cmd.Flags().IntVarP(&o.BlockSize, "block-size", "b", config.DefaultBlockSize,
		"Read block size in bytes (minimum 1024).")
	cmd.Flags().StringVarP(&o.Algorithm, "algorithm", "a", config.DefaultAlgorithm,
		"Hash algorithm the checksum list was generated with.")
	cmd.Flags().BoolVar(&o.NoProgress, "no-progress", false,
		"Disable the in-place progress line.")
}

// ToRunConfig merges the defaults file and the flags the user set into a
// run configuration. Flag values win over file values, which win over the
// built-in defaults.
func (o *CheckOptions) ToRunConfig(cmd *cobra.Command, file config.File) config.RunConfig {
	cfg := file.Apply(config.Default())

	flags := cmd.Flags()
	if flags.Changed("parallel") {
		cfg.Parallel = o.Parallel
	}
	if flags.Changed("sort") {
		cfg.Sort = o.Sort
	}
	if flags.Changed("block-size") {
		cfg.BlockSize = o.BlockSize
	}
	if flags.Changed("algorithm") {
		cfg.Algorithm = o.Algorithm
	}
	if o.Sequential {
		cfg.Parallel = false
	}

	return cfg
}
