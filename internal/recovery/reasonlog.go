// SPDX-License-Identifier: MPL-2.0

package recovery

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"
)

// TimestampLayout formats reason log timestamps as YYYY-MM-DD HH:MM:SS in
// local time.
const TimestampLayout = "2006-01-02 15:04:05"

// ReasonLog is the append-only file recording why the artifact went missing.
// Entries are never rewritten or removed.
type ReasonLog struct {
	Path string
}

// FormatEntry returns the log line for text captured at at, including the
// trailing newline.
func FormatEntry(at time.Time, text string) string {
	return fmt.Sprintf("Response at %s: %s\n", at.Format(TimestampLayout), text)
}

// Append adds one entry, creating the file when needed.
func (l *ReasonLog) Append(at time.Time, text string) (err error) {
	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open reason log: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close reason log: %w", cerr)
		}
	}()

	if _, err := f.WriteString(FormatEntry(at, text)); err != nil {
		return fmt.Errorf("append reason log: %w", err)
	}
	return nil
}

// Entries returns the logged lines in file order. A missing file has no
// entries.
func (l *ReasonLog) Entries() ([]string, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open reason log: %w", err)
	}
	defer func() { _ = f.Close() }()

	var entries []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			entries = append(entries, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read reason log: %w", err)
	}
	return entries, nil
}
