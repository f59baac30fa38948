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
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/SuperCoolGuy855/md5check/cmd/md5check/cli/options"
	"github.com/SuperCoolGuy855/md5check/pkg/config"
	hashengines "github.com/SuperCoolGuy855/md5check/pkg/hashing/engines"
	_ "github.com/SuperCoolGuy855/md5check/pkg/hashing/engines/memory"
	"github.com/SuperCoolGuy855/md5check/pkg/logging"
	"github.com/SuperCoolGuy855/md5check/pkg/manifest"
	"github.com/SuperCoolGuy855/md5check/pkg/status"
	"github.com/SuperCoolGuy855/md5check/pkg/verify"
)

// VerificationError is returned when a run finishes with at least one
// mismatch or read failure. It maps to exit code 1, like md5sum -c.
type VerificationError struct {
	Incorrect int
	Errors    int
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("verification failed: %d mismatched, %d unreadable", e.Incorrect, e.Errors)
}

// ExitCode implements the ExitCoder contract checked in main.
func (e *VerificationError) ExitCode() int {
	return 1
}

// Check returns the batch verification command.
func Check() *cobra.Command {
	o := &options.CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check LIST_FILE",
		Short: "Verify the files named in a checksum list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, o, args[0])
		},
	}
	o.AddFlags(cmd)

	return cmd
}

func runCheck(cmd *cobra.Command, o *options.CheckOptions, listPath string) error {
	logger := ro.NewLogger()

	configPath := ro.ConfigFile
	if configPath == "" {
		configPath = config.DefaultFileName
	}
	file, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	cfg := o.ToRunConfig(cmd, file)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Relative paths inside the list resolve against the list's own
	// directory, so move there before checking.
	if filepath.IsAbs(listPath) {
		if err := os.Chdir(filepath.Dir(listPath)); err != nil {
			return fmt.Errorf("change to checksum list directory: %w", err)
		}
		listPath = filepath.Base(listPath)
	}

	engine, err := hashengines.Create(cfg.Algorithm)
	if err != nil {
		return err
	}

	items, err := manifest.ParseFile(listPath, engine.DigestSize())
	if err != nil {
		return err
	}

	logger.Debug("checking %d files (algorithm=%s, parallel=%t, sort=%t, block size=%s)",
		len(items), cfg.Algorithm, cfg.Parallel, cfg.Sort, humanize.IBytes(uint64(cfg.BlockSize)))

	counter := status.NewCounter()
	events := verify.NewEventChannel(len(items))

	runner, err := verify.NewRunner(cfg, counter, events)
	if err != nil {
		return err
	}

	go runner.Run(items)

	return drainEvents(logger, counter, events, len(items), !o.NoProgress)
}

// drainEvents consumes the run's event stream, keeping a progress line on
// stderr and logging mismatches and failures as they arrive.
func drainEvents(
	logger logging.Logger,
	counter *status.Counter,
	events <-chan verify.Event,
	total int,
	showProgress bool,
) error {
	bar := newProgressLine(os.Stderr, total)

	// Matches are silent on the event stream, so a ticker refreshes the
	// progress line from the counter sink between events.
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	incorrect := 0
	failures := 0

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				// Completed already handled; the close just ends the
				// stream.
				return finishCheck(logger, total, incorrect, failures)
			}

			switch ev := ev.(type) {
			case verify.Idle:
				// Placeholder for consumers that render before any
				// outcome exists; nothing to do here.
			case verify.Mismatch:
				incorrect++
				if showProgress {
					bar.clear()
				}
				logger.WithField("file", ev.Path).Warnln("checksum mismatch")
			case verify.Failure:
				failures++
				if showProgress {
					bar.clear()
				}
				logger.WithField("error", ev.Description).Errorln("read failure")
			case verify.Completed:
				if showProgress {
					bar.finish(counter.Ticks(), ev.Elapsed)
					showProgress = false
				}
				logger.Debug("completed in %s", ev.Elapsed.Round(time.Millisecond))
			}

			if showProgress {
				bar.render(counter.Ticks())
			}
		case <-ticker.C:
			if showProgress {
				bar.render(counter.Ticks())
			}
		}
	}
}

func finishCheck(logger logging.Logger, total, incorrect, failures int) error {
	correct := total - incorrect - failures
	logger.WithFields(map[string]interface{}{
		"correct":   correct,
		"incorrect": incorrect,
		"errors":    failures,
	}).Infoln("verification finished")

	if incorrect > 0 || failures > 0 {
		return &VerificationError{Incorrect: incorrect, Errors: failures}
	}
	return nil
}
