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

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the verification TUI.
type KeyMap struct {
	// Log scrolling.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Settings, frozen while a run is in flight.
	ToggleParallel key.Binding
	ToggleSort     key.Binding
	BlockUp        key.Binding
	BlockDown      key.Binding

	// Load a new checksum list / start a run.
	NewList  key.Binding
	StartRun key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	ToggleParallel: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "toggle parallel"),
	),
	ToggleSort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "toggle sort"),
	),
	BlockUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "double block size"),
	),
	BlockDown: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "halve block size"),
	),
	NewList: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "load checksum list"),
	),
	StartRun: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "start run"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
