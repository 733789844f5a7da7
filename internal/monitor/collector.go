// Package monitor times the pipeline phases of an analysis run and counts
// the rows it processed.
package monitor

import (
	"sync"
	"time"
)

// Collector accumulates phase timings and row counters. A nil *Collector
// is valid and records nothing.
type Collector struct {
	mu      sync.RWMutex
	timers  map[OperationType]*Timer
	rows    *Counter
	dropped *Counter
	now     func() time.Time
}

// New creates a collector with a timer per pipeline phase
func New() *Collector {
	timers := make(map[OperationType]*Timer, len(Operations))
	for _, op := range Operations {
		timers[op] = NewTimer(string(op))
	}
	return &Collector{
		timers:  timers,
		rows:    NewCounter("rows"),
		dropped: NewCounter("dropped"),
		now:     time.Now,
	}
}

// TrackOperation tracks an operation with timing
func (c *Collector) TrackOperation(operation OperationType, fn func()) {
	_ = c.TrackOperationWithError(operation, func() error {
		fn()
		return nil
	})
}

// TrackOperationWithError tracks an operation that may return an error
func (c *Collector) TrackOperationWithError(operation OperationType, fn func() error) error {
	if c == nil {
		return fn()
	}

	start := c.now()
	err := fn()
	duration := c.now().Sub(start)

	timer := c.timer(operation)
	timer.Record(duration)
	if err != nil {
		timer.RecordError()
	}

	return err
}

func (c *Collector) timer(operation OperationType) *Timer {
	c.mu.RLock()
	timer, exists := c.timers[operation]
	c.mu.RUnlock()
	if exists {
		return timer
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if timer, exists = c.timers[operation]; !exists {
		timer = NewTimer(string(operation))
		c.timers[operation] = timer
	}
	return timer
}

// RecordRows records kept and dropped rows of one load
func (c *Collector) RecordRows(kept, dropped int) {
	if c == nil {
		return
	}
	c.rows.Add(int64(kept))
	c.dropped.Add(int64(dropped))
}

// Snapshot returns the current metrics. Known phases come first in pipeline
// order; phases that never ran are omitted.
func (c *Collector) Snapshot() MetricsSnapshot {
	snapshot := MetricsSnapshot{
		Timestamp:  time.Now(),
		Memory:     collectMemory(),
		Operations: []OperationMetrics{},
	}
	if c == nil {
		return snapshot
	}

	snapshot.Rows = c.rows.Get()
	snapshot.Dropped = c.dropped.Get()

	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[OperationType]bool, len(c.timers))
	appendOp := func(op OperationType) {
		timer, ok := c.timers[op]
		if !ok || seen[op] || timer.Count() == 0 {
			return
		}
		seen[op] = true
		snapshot.Operations = append(snapshot.Operations, OperationMetrics{
			Operation:  op,
			Count:      timer.Count(),
			TotalTime:  timer.TotalTime().Nanoseconds(),
			MinTime:    timer.MinTime().Nanoseconds(),
			MaxTime:    timer.MaxTime().Nanoseconds(),
			ErrorCount: timer.Errors(),
		})
	}

	for _, op := range Operations {
		appendOp(op)
	}
	for op := range c.timers {
		appendOp(op)
	}

	return snapshot
}
