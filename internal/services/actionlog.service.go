package services

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/afero"
)

const actionTimeFormat = "2006-01-02 15:04:05.000000"

// ActionLog appends one timestamped line per helpdesk action. The file is
// only ever appended to.
type ActionLog struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
	now  func() time.Time
}

// NewActionLog returns a log writing to path on fs
func NewActionLog(fs afero.Fs, path string) *ActionLog {
	return &ActionLog{fs: fs, path: path, now: time.Now}
}

// Record appends "[timestamp] action: result". Write failures are logged
// and otherwise ignored.
func (l *ActionLog) Record(action, result string) {
	if err := l.append(action, result); err != nil {
		helpdeskLog.WithError(err).WithField("action", action).Warn("Could not write action log")
	}
}

func (l *ActionLog) append(action, result string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := l.fs.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening action log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s: %s\n", l.now().Format(actionTimeFormat), action, result)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("writing action log: %w", err)
	}
	return nil
}
