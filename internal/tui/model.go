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

// Package tui implements the interactive front-end: a bubbletea program
// that loads checksum lists, edits run settings, launches verification
// runs on a background goroutine and renders the shared aggregate status
// plus a scrollable event log.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SuperCoolGuy855/md5check/pkg/config"
	hashengines "github.com/SuperCoolGuy855/md5check/pkg/hashing/engines"
	_ "github.com/SuperCoolGuy855/md5check/pkg/hashing/engines/memory"
	"github.com/SuperCoolGuy855/md5check/pkg/manifest"
	"github.com/SuperCoolGuy855/md5check/pkg/status"
	"github.com/SuperCoolGuy855/md5check/pkg/verify"
)

// frameInterval is how often the aggregate status pane is refreshed while
// a run is in flight. Events arrive on their own; the tick only covers
// silent matches, which update the sink but emit nothing.
const frameInterval = 100 * time.Millisecond

// maxBlockSize caps the block size adjustment at 1 GiB.
const maxBlockSize = 1 << 30

// runEventMsg wraps one engine event for delivery through the bubbletea
// message loop.
type runEventMsg struct {
	event verify.Event
}

// frameTickMsg drives the periodic status refresh during a run.
type frameTickMsg struct{}

// Model is the TUI state. It implements tea.Model by value, bubbletea
// style: Update returns the modified copy.
type Model struct {
	keys KeyMap

	// settings is the editable configuration. Run captures it by value,
	// so edits during a run only affect the next one.
	settings config.RunConfig

	listPath string
	entries  []manifest.Entry

	// Per-run state. agg and events are replaced on every run.
	agg     *status.Aggregate
	events  <-chan verify.Event
	running bool
	elapsed time.Duration

	log []string

	vp       viewport.Model
	prog     progress.Model
	input    textinput.Model
	entering bool

	errMsg string
	width  int
	height int
	ready  bool
}

// New builds a Model with the given initial settings. If listPath is
// non-empty the checksum list is loaded immediately.
func New(cfg config.RunConfig, listPath string) Model {
	input := textinput.New()
	input.Placeholder = "path/to/checksums.md5"

	m := Model{
		keys:     DefaultKeyMap,
		settings: cfg,
		prog:     progress.New(progress.WithDefaultGradient()),
		input:    input,
	}

	if listPath != "" {
		m.loadList(listPath)
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// listenForRunEvent returns a command that blocks until the engine emits
// the next event, then delivers it as a runEventMsg. A closed channel
// delivers nothing, ending the listen loop.
func listenForRunEvent(events <-chan verify.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return runEventMsg{event: event}
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameTickMsg{}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		return m, nil

	case runEventMsg:
		return m.handleRunEvent(msg.event)

	case frameTickMsg:
		if !m.running {
			return m, nil
		}
		return m, frameTick()

	case tea.KeyMsg:
		if m.entering {
			return m.handleEntryKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleRunEvent(event verify.Event) (tea.Model, tea.Cmd) {
	switch event := event.(type) {
	case verify.Idle:
		m.appendLog("ready")
	case verify.Mismatch:
		m.appendLog(fmt.Sprintf("mismatch: %s", event.Path))
	case verify.Failure:
		m.appendLog(fmt.Sprintf("error: %s", event.Description))
	case verify.Completed:
		m.running = false
		m.elapsed = event.Elapsed
		m.appendLog(fmt.Sprintf("completed in %s", event.Elapsed.Round(time.Millisecond)))
		return m, nil
	}

	return m, listenForRunEvent(m.events)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NewList):
		if m.running {
			return m, nil
		}
		m.entering = true
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.ToggleParallel):
		if !m.running {
			m.settings.Parallel = !m.settings.Parallel
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleSort):
		if !m.running {
			m.settings.Sort = !m.settings.Sort
		}
		return m, nil

	case key.Matches(msg, m.keys.BlockUp):
		if !m.running && m.settings.BlockSize < maxBlockSize {
			m.settings.BlockSize *= 2
		}
		return m, nil

	case key.Matches(msg, m.keys.BlockDown):
		if !m.running && m.settings.BlockSize/2 >= config.MinBlockSize {
			m.settings.BlockSize /= 2
		}
		return m, nil

	case key.Matches(msg, m.keys.StartRun):
		return m.startRun()
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m Model) handleEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.entering = false
		m.input.Blur()
		m.loadList(m.input.Value())
		return m, nil
	case "esc":
		m.entering = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// loadList parses a checksum list and installs it as the pending work
// list. Errors land in the status line, not the log.
func (m *Model) loadList(path string) {
	m.errMsg = ""

	engine, err := hashengines.Create(m.settings.Algorithm)
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	// Entry paths are relative to the list's directory.
	if filepath.IsAbs(path) {
		if err := os.Chdir(filepath.Dir(path)); err != nil {
			m.errMsg = err.Error()
			return
		}
		path = filepath.Base(path)
	}

	entries, err := manifest.ParseFile(path, engine.DigestSize())
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	m.listPath = path
	m.entries = entries
	m.agg = nil
	m.elapsed = 0
	m.log = nil
	m.appendLog(fmt.Sprintf("loaded %d entries from %s", len(entries), path))
}

// startRun snapshots the settings and launches the engine on a background
// goroutine, then begins draining its events one listen command at a time.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	if m.running || len(m.entries) == 0 {
		return m, nil
	}

	cfg := m.settings
	if err := cfg.Validate(); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	agg := status.NewAggregate()
	events := verify.NewEventChannel(len(m.entries))

	runner, err := verify.NewRunner(cfg, agg, events)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.agg = agg
	m.events = events
	m.running = true
	m.elapsed = 0
	m.log = nil
	m.syncViewport()

	go runner.Run(m.entries)

	return m, tea.Batch(listenForRunEvent(events), frameTick())
}

func (m *Model) appendLog(line string) {
	m.log = append(m.log, line)
	m.syncViewport()
}
