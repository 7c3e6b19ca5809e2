// SPDX-License-Identifier: MPL-2.0

package recovery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/codefree/codefree/internal/codes"
	"github.com/codefree/codefree/internal/console"

	"github.com/charmbracelet/log"
)

const (
	// DefaultDelay is the pause after each narrative line.
	DefaultDelay = 3 * time.Second

	// ReasonPrompt asks the user for the reason log entry.
	ReasonPrompt = "Please write something to continue: "
)

// DefaultNarrative is the narrative for the default file names.
var DefaultNarrative = Narrative("config.txt", "codes.txt")

// Workflow runs one recovery attempt.
type Workflow struct {
	// Narrative lines are printed one by one, each followed by Delay.
	Narrative []string
	// Delay of zero disables the pause.
	Delay time.Duration
	Clock Clock

	// Console supplies the reason text and receives all user-facing output.
	Console   *console.Console
	ReasonLog *ReasonLog

	ConfigPath string
	CodesPath  string

	Logger *log.Logger
}

// Narrative returns the lines shown when the artifact named codesName is
// missing and configName is the file it can be rebuilt from.
func Narrative(configName, codesName string) []string {
	return []string{
		fmt.Sprintf("😔 ... '%s' has disappeared. The heart of the program is empty.", codesName),
		"Without it, nothing works. The essence is gone.",
		"This file is not just a piece of code; it is the soul that moves everything.",
		"",
		"If it was deleted by mistake, fear not: it can be restored.",
		fmt.Sprintf("Just keep '%s' intact. It is the source of truth.", configName),
		"",
		fmt.Sprintf("To restore it, the program will try to create '%s' from '%s'.", codesName, configName),
		fmt.Sprintf("If '%s' does not exist, restoring will not be possible.", configName),
		"",
		"Think before you act. Every file has its value.",
		"Press Enter to try to restore and move on.",
		"Or close this program and reflect on the emptiness left behind.",
	}
}

// Run plays the narrative, records the user's reason and attempts one
// regeneration. A non-nil error is returned only when ctx is canceled, in
// which case the outcome is OutcomeNone and nothing was regenerated.
func (w *Workflow) Run(ctx context.Context) (Outcome, error) {
	logger := w.logger()

	for _, line := range w.Narrative {
		w.Console.Println(line)
		if err := w.pause(ctx); err != nil {
			return OutcomeNone, err
		}
	}

	w.Console.Print("\n" + ReasonPrompt)
	reason, err := w.Console.ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("failed to read reason", "err", err)
	}

	if w.ReasonLog != nil {
		if err := w.ReasonLog.Append(w.clock().Now(), reason); err != nil {
			logger.Warn("failed to record reason", "path", w.ReasonLog.Path, "err", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return OutcomeNone, fmt.Errorf("recovery canceled: %w", err)
	}

	w.Console.Printf("\nTrying to restore '%s'...\n", filepath.Base(w.CodesPath))

	outcome := w.regenerate()
	logger.Debug("recovery finished", "outcome", outcome)

	if outcome.Succeeded() {
		w.Console.Println("\nRestored successfully! Restart the program to continue.")
	} else {
		w.Console.Printf("\nCould not restore. Please provide '%s' manually.\n", filepath.Base(w.CodesPath))
	}
	return outcome, nil
}

func (w *Workflow) regenerate() Outcome {
	info, err := os.Stat(w.ConfigPath)
	if err != nil || info.IsDir() {
		return OutcomeFailedNoConfig
	}

	res, err := codes.CompileFile(w.ConfigPath, w.CodesPath)
	if err != nil {
		w.Console.Printf("Restore error: %v\n", err)
		w.logger().Error("regeneration failed", "codes", w.CodesPath, "err", err)
		return OutcomeFailedWriteError
	}

	w.logger().Debug("artifact regenerated", "codes", w.CodesPath, "bindings", res.Bindings.Len())
	return OutcomeSucceeded
}

func (w *Workflow) pause(ctx context.Context) error {
	if w.Delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("recovery canceled: %w", ctx.Err())
	case <-w.clock().After(w.Delay):
		return nil
	}
}

func (w *Workflow) clock() Clock {
	if w.Clock == nil {
		return RealClock{}
	}
	return w.Clock
}

func (w *Workflow) logger() *log.Logger {
	if w.Logger == nil {
		return log.New(io.Discard)
	}
	return w.Logger
}
