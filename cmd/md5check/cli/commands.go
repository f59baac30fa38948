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

// Package cli wires the md5check commands together.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/SuperCoolGuy855/md5check/cmd/md5check/cli/options"
)

var ro = &options.RootOptions{}

// New builds the md5check root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "md5check",
		Short: "Verify files against a checksum list.",
		Long: `md5check verifies large sets of files against a checksum list
(one "<hash> <path>" pair per line, md5sum format), reporting per-file
mismatches and errors plus aggregate counts. Files can be hashed
concurrently across all CPUs for throughput.`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}
	ro.AddFlags(cmd)

	cmd.AddCommand(Check())
	cmd.AddCommand(TUI())
	return cmd
}
