package services

import (
	"sync"

	"sysdesk/internal/models"
)

// DefaultHistorySize is how many snapshots the dashboard retains
const DefaultHistorySize = 100

// History is a bounded FIFO of snapshots. When full, appending drops the
// oldest entry; no other eviction happens.
type History struct {
	mu            sync.RWMutex
	snapshots     []models.SystemSnapshot
	maxDataPoints int
}

// NewHistory creates an empty history holding at most size snapshots
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		snapshots:     make([]models.SystemSnapshot, 0, size),
		maxDataPoints: size,
	}
}

// Append adds a snapshot, evicting the oldest once over capacity
func (h *History) Append(snapshot models.SystemSnapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.snapshots = append(h.snapshots, snapshot)
	if len(h.snapshots) > h.maxDataPoints {
		// Shift in place so the backing array is reused.
		n := copy(h.snapshots, h.snapshots[len(h.snapshots)-h.maxDataPoints:])
		h.snapshots = h.snapshots[:n]
	}
}

// Snapshots returns the retained snapshots in chronological order
func (h *History) Snapshots() []models.SystemSnapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]models.SystemSnapshot, len(h.snapshots))
	copy(out, h.snapshots)
	return out
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.snapshots)
}
