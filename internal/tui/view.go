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

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	onStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	offStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	countStyle = lipgloss.NewStyle().Bold(true)
	logStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// chromeHeight is the number of terminal rows used by everything except
// the log viewport: title, settings, status block, progress, help and the
// log border.
const chromeHeight = 12

// layout resizes the viewport and progress bar to the current terminal
// size.
func (m *Model) layout() {
	logHeight := m.height - chromeHeight
	if logHeight < 3 {
		logHeight = 3
	}

	logWidth := m.width - 4
	if logWidth < 10 {
		logWidth = 10
	}

	m.vp.Width = logWidth
	m.vp.Height = logHeight
	m.prog.Width = logWidth
	m.syncViewport()
}

// syncViewport pushes the log lines into the viewport and follows the
// tail.
func (m *Model) syncViewport() {
	m.vp.SetContent(strings.Join(m.log, "\n"))
	m.vp.GotoBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("md5check"))
	if m.listPath != "" {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %s (%d entries)", m.listPath, len(m.entries))))
	}
	b.WriteString("\n\n")

	b.WriteString(m.settingsView())
	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")

	b.WriteString(logStyle.Render(m.vp.View()))
	b.WriteString("\n")

	if m.entering {
		b.WriteString("checksum list: " + m.input.View())
	} else if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg))
	} else {
		b.WriteString(m.helpView())
	}

	return b.String()
}

func (m Model) settingsView() string {
	onOff := func(v bool) string {
		if v {
			return onStyle.Render("on")
		}
		return offStyle.Render("off")
	}

	return fmt.Sprintf("%s %s   %s %s   %s %s   %s %s",
		labelStyle.Render("parallel:"), onOff(m.settings.Parallel),
		labelStyle.Render("sort:"), onOff(m.settings.Sort),
		labelStyle.Render("block:"), humanize.IBytes(uint64(m.settings.BlockSize)),
		labelStyle.Render("algorithm:"), m.settings.Algorithm)
}

// statusView renders the aggregate snapshot: the most recently recorded
// file with its digests, the outcome counters and the progress gauge.
// Under a parallel run the file/digest tuple is simply the last worker's
// write; the counters are exact regardless.
func (m Model) statusView() string {
	var b strings.Builder

	if m.agg == nil {
		b.WriteString(labelStyle.Render("no run yet"))
		b.WriteString("\n\n\n")
		b.WriteString(m.prog.ViewAs(0))
		b.WriteString("\n")
		return b.String()
	}

	snap := m.agg.Snapshot()

	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("file:"), snap.CurrentFile))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("got: "), snap.CurrentDigest))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("want:"), snap.CurrentExpected))

	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s",
		labelStyle.Render("correct:"), countStyle.Render(fmt.Sprintf("%d", snap.Correct)),
		labelStyle.Render("incorrect:"), countStyle.Render(fmt.Sprintf("%d", snap.Incorrect)),
		labelStyle.Render("errors:"), countStyle.Render(fmt.Sprintf("%d", snap.Errors))))
	if m.elapsed > 0 {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  (%s)", m.elapsed.Round(time.Millisecond))))
	}
	b.WriteString("\n")

	fraction := 0.0
	if len(m.entries) > 0 {
		fraction = float64(snap.Total()) / float64(len(m.entries))
	}
	b.WriteString(m.prog.ViewAs(fraction))
	b.WriteString("\n")

	return b.String()
}

func (m Model) helpView() string {
	keys := []string{
		m.keys.NewList.Help().Key + " " + m.keys.NewList.Help().Desc,
		m.keys.StartRun.Help().Key + " " + m.keys.StartRun.Help().Desc,
		m.keys.ToggleParallel.Help().Key + " " + m.keys.ToggleParallel.Help().Desc,
		m.keys.ToggleSort.Help().Key + " " + m.keys.ToggleSort.Help().Desc,
		m.keys.BlockUp.Help().Key + "/" + m.keys.BlockDown.Help().Key + " block size",
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
	}
	return helpStyle.Render(strings.Join(keys, " · "))
}
