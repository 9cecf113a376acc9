package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"sysdesk/internal/models"
)

type fakeRun struct {
	stdout string
	code   int
	err    error
}

// fakeExecutor answers by command name and records every invocation
type fakeExecutor struct {
	mu      sync.Mutex
	results map[string]fakeRun
	calls   []string
}

func newFakeExecutor(results map[string]fakeRun) *fakeExecutor {
	return &fakeExecutor{results: results}
}

func (f *fakeExecutor) Run(_ context.Context, name string, args ...string) (string, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	res, ok := f.results[name]
	if !ok {
		return "", -1, &notFoundError{name: name}
	}
	return res.stdout, res.code, res.err
}

type notFoundError struct{ name string }

func (e *notFoundError) Error() string {
	return "exec: \"" + e.name + "\": executable file not found in $PATH"
}

// fakeSource hands out scripted readings in order, one per Read
type fakeSource struct {
	mu       sync.Mutex
	readings []models.SystemSnapshot
	err      error
	reads    int
}

func (f *fakeSource) Read(context.Context) (models.SystemSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.SystemSnapshot{}, f.err
	}
	f.reads++
	if len(f.readings) == 0 {
		return models.SystemSnapshot{Timestamp: time.Unix(int64(f.reads), 0)}, nil
	}
	r := f.readings[0]
	f.readings = f.readings[1:]
	return r, nil
}

type fakeResources struct {
	cpu    *models.CPUStatus
	memory *models.MemoryStatus
	err    error
}

func (f *fakeResources) CPUUsage(context.Context) (*models.CPUStatus, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cpu, nil
}

func (f *fakeResources) MemoryUsage(context.Context) (*models.MemoryStatus, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.memory, nil
}
