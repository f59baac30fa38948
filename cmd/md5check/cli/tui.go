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

package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SuperCoolGuy855/md5check/internal/tui"
	"github.com/SuperCoolGuy855/md5check/pkg/config"
)

// TUI returns the interactive verification command.
func TUI() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [LIST_FILE]",
		Short: "Verify checksum lists interactively.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := ro.ConfigFile
			if configPath == "" {
				configPath = config.DefaultFileName
			}
			file, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			cfg := file.Apply(config.Default())

			listPath := ""
			if len(args) == 1 {
				listPath = args[0]
			}

			program := tea.NewProgram(tui.New(cfg, listPath), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run interactive UI: %w", err)
			}
			return nil
		},
	}
}
