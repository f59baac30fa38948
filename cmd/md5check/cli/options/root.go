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

// Package options defines the flag sets shared by the md5check commands.
package options

import (
	"github.com/spf13/cobra"

	"github.com/SuperCoolGuy855/md5check/pkg/logging"
)

// RootOptions are the persistent flags available on every command.
type RootOptions struct {
	Verbose    bool   // --verbose
	LogFormat  string // --log-format
	ConfigFile string // --config
}

// AddFlags registers the persistent flags on cmd.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Enable debug logging.")
	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", "text",
		"Log output format (text or json).")
	cmd.PersistentFlags().StringVar(&o.ConfigFile, "config", "",
		"Path to a YAML defaults file (default: .md5check.yaml in the working directory).")
}

// NewLogger builds the logger configured by these options.
func (o *RootOptions) NewLogger() logging.Logger {
	level := logging.LevelInfo
	if o.Verbose {
		level = logging.LevelDebug
	}

	return logging.NewLoggerWithOptions(logging.LoggerOptions{
		Level:  level,
		Format: logging.ParseLogFormat(o.LogFormat),
	})
}
