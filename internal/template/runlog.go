package template

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RunLog is the append-only log the template pusher writes alongside its
// terminal output. One file per month.
type RunLog struct {
	f *os.File
}

// RunLogName returns the log filename for the given time, e.g.
// "junosctl-template-2026-August.log".
func RunLogName(t time.Time) string {
	return fmt.Sprintf("junosctl-template-%d-%s.log", t.Year(), t.Month())
}

// OpenRunLog opens (or creates) the current month's run log in dir.
func OpenRunLog(dir string) (*RunLog, error) {
	name := filepath.Join(dir, RunLogName(time.Now()))
	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open run log: %w", err)
	}
	return &RunLog{f: f}, nil
}

// Entry appends one timestamped line.
func (l *RunLog) Entry(format string, args ...any) {
	if l == nil || l.f == nil {
		return
	}
	stamp := time.Now().Format("02/01/2006 15:04:05")
	fmt.Fprintf(l.f, "\n%s %s", stamp, fmt.Sprintf(format, args...))
}

// Close flushes and closes the log file.
func (l *RunLog) Close() {
	if l != nil && l.f != nil {
		l.f.Close()
	}
}
