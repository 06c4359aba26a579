package logger

import (
	"sync/atomic"

	"github.com/philipp01105/topolog/core"
)

// Stats tracks how many records were emitted, suppressed by the filter,
// or lost to a failed write. Counters are per level and safe for
// concurrent use.
type Stats struct {
	emitted    [core.MaxLevel + 1]atomic.Uint64
	suppressed [core.MaxLevel + 1]atomic.Uint64
	failed     atomic.Uint64
}

// processStats is shared by every Logger built without WithStats, so the
// counters keep growing across re-initializations.
var processStats = NewStats()

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementEmitted atomically increments the emitted counter for a level
func (s *Stats) IncrementEmitted(level core.Level) {
	if level.Valid() {
		s.emitted[level].Add(1)
	}
}

// IncrementSuppressed atomically increments the suppressed counter for a level
func (s *Stats) IncrementSuppressed(level core.Level) {
	if level.Valid() {
		s.suppressed[level].Add(1)
	}
}

// IncrementFailed atomically increments the failed write counter
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// Emitted returns the emitted count for a level
func (s *Stats) Emitted(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.emitted[level].Load()
}

// Suppressed returns the suppressed count for a level
func (s *Stats) Suppressed(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.suppressed[level].Load()
}

// Failed returns the failed write count
func (s *Stats) Failed() uint64 {
	return s.failed.Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.emitted {
		s.emitted[i].Store(0)
		s.suppressed[i].Store(0)
	}
	s.failed.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Emitted    map[core.Level]uint64
	Suppressed map[core.Level]uint64
	Failed     uint64
}

// EmittedTotal returns the emitted count across all levels
func (s Snapshot) EmittedTotal() uint64 {
	var n uint64
	for _, v := range s.Emitted {
		n += v
	}
	return n
}

// SuppressedTotal returns the suppressed count across all levels
func (s Snapshot) SuppressedTotal() uint64 {
	var n uint64
	for _, v := range s.Suppressed {
		n += v
	}
	return n
}

// Snapshot returns a snapshot of current statistics
func (s *Stats) Snapshot() Snapshot {
	snap := Snapshot{
		Emitted:    make(map[core.Level]uint64, core.MaxLevel),
		Suppressed: make(map[core.Level]uint64, core.MaxLevel),
		Failed:     s.Failed(),
	}
	for _, l := range core.Levels() {
		snap.Emitted[l] = s.Emitted(l)
		snap.Suppressed[l] = s.Suppressed(l)
	}
	return snap
}
