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
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const progressBarWidth = 30

var (
	progressFilledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	progressEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	progressCountStyle  = lipgloss.NewStyle().Bold(true)
)

// progressLine renders an in-place single-line progress bar on w, in the
// style of "[elapsed] pos/len [bar]". It is driven by the drain loop only,
// so it needs no locking.
type progressLine struct {
	w     io.Writer
	total int
	start time.Time
}

func newProgressLine(w io.Writer, total int) *progressLine {
	return &progressLine{
		w:     w,
		total: total,
		start: time.Now(),
	}
}

// render redraws the line for the given position.
func (p *progressLine) render(pos uint64) {
	elapsed := time.Since(p.start).Round(time.Second)

	filled := 0
	if p.total > 0 {
		filled = int(pos) * progressBarWidth / p.total
		if filled > progressBarWidth {
			filled = progressBarWidth
		}
	}

	bar := progressFilledStyle.Render(strings.Repeat("█", filled)) +
		progressEmptyStyle.Render(strings.Repeat("░", progressBarWidth-filled))

	fmt.Fprintf(p.w, "\r\x1b[K[%s] %s [%s]",
		elapsed,
		progressCountStyle.Render(fmt.Sprintf("%d/%d", pos, p.total)),
		bar)
}

// clear erases the line so a log entry can take its place.
func (p *progressLine) clear() {
	fmt.Fprint(p.w, "\r\x1b[K")
}

// finish draws the final state and moves to a fresh line.
func (p *progressLine) finish(pos uint64, elapsed time.Duration) {
	p.render(pos)
	fmt.Fprintf(p.w, " done in %s\n", elapsed.Round(time.Millisecond))
}
