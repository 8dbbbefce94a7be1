package ring

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks buffer activity. It is always enabled: observability is
// not optional, and the atomic counters cost a few nanoseconds per operation.
//
// Statistics are cumulative over the life of the tracker and, unlike the
// buffer's lifetime counter, are NOT reset by Buffer.Clear - a clear is just
// one more recorded event. Use Reset to zero the tracker itself.
type Statistics struct {
	// Atomic counters for thread-safe updates
	inserts    int64
	overwrites int64
	snapshots  int64
	clears     int64

	// Protected by mutex
	mu          sync.RWMutex
	startTime   time.Time
	currentSize int64
	maxSize     int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Insert records an insertion.
func (s *Statistics) Insert() {
	atomic.AddInt64(&s.inserts, 1)
}

// Overwrite records the displacement of a retained element.
func (s *Statistics) Overwrite() {
	atomic.AddInt64(&s.overwrites, 1)
}

// Snapshot records a snapshot or tail materialization.
func (s *Statistics) Snapshot() {
	atomic.AddInt64(&s.snapshots, 1)
}

// Clear records a buffer clear.
func (s *Statistics) Clear() {
	atomic.AddInt64(&s.clears, 1)
}

// UpdateSize updates the current logical size.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	if size > s.maxSize {
		s.maxSize = size
	}
	s.mu.Unlock()
}

// Inserts returns the total number of insertions recorded.
func (s *Statistics) Inserts() int64 {
	return atomic.LoadInt64(&s.inserts)
}

// Overwrites returns the total number of elements displaced by overwrite.
func (s *Statistics) Overwrites() int64 {
	return atomic.LoadInt64(&s.overwrites)
}

// Snapshots returns the total number of snapshot materializations.
func (s *Statistics) Snapshots() int64 {
	return atomic.LoadInt64(&s.snapshots)
}

// Clears returns the total number of clears.
func (s *Statistics) Clears() int64 {
	return atomic.LoadInt64(&s.clears)
}

// CurrentSize returns the logical size at the last recorded update.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// MaxSize returns the largest logical size observed.
func (s *Statistics) MaxSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxSize
}

// InsertThroughput returns the average number of insertions per second.
func (s *Statistics) InsertThroughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Inserts()) / elapsed.Seconds()
}

// OverwriteRate returns the fraction of insertions that displaced a retained
// element (0.0 to 1.0).
func (s *Statistics) OverwriteRate() float64 {
	inserts := s.Inserts()
	if inserts == 0 {
		return 0.0
	}

	return float64(s.Overwrites()) / float64(inserts)
}

// Utilization returns the current fill level relative to capacity (0.0 to 1.0).
func (s *Statistics) Utilization(capacity int64) float64 {
	if capacity == 0 {
		return 0.0
	}

	return float64(s.CurrentSize()) / float64(capacity)
}

// Uptime returns how long the tracker has been running.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.inserts, 0)
	atomic.StoreInt64(&s.overwrites, 0)
	atomic.StoreInt64(&s.snapshots, 0)
	atomic.StoreInt64(&s.clears, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.currentSize = 0
	s.maxSize = 0
	s.mu.Unlock()
}

// StatsSummary is a point-in-time snapshot of all statistics.
type StatsSummary struct {
	Inserts          int64         `json:"inserts"`
	Overwrites       int64         `json:"overwrites"`
	Snapshots        int64         `json:"snapshots"`
	Clears           int64         `json:"clears"`
	CurrentSize      int64         `json:"current_size"`
	MaxSize          int64         `json:"max_size"`
	InsertThroughput float64       `json:"insert_throughput"`
	OverwriteRate    float64       `json:"overwrite_rate"`
	Uptime           time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Inserts:          s.Inserts(),
		Overwrites:       s.Overwrites(),
		Snapshots:        s.Snapshots(),
		Clears:           s.Clears(),
		CurrentSize:      s.CurrentSize(),
		MaxSize:          s.MaxSize(),
		InsertThroughput: s.InsertThroughput(),
		OverwriteRate:    s.OverwriteRate(),
		Uptime:           s.Uptime(),
	}
}
