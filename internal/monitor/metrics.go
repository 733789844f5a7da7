package monitor

import (
	"runtime"
	"sync/atomic"
	"time"
)

// OperationType names a pipeline phase being timed
type OperationType string

const (
	OperationLoad       OperationType = "load"
	OperationClassify   OperationType = "classify"
	OperationStatistics OperationType = "statistics"
	OperationPairing    OperationType = "pairing"
	OperationRelate     OperationType = "relate"
)

// Operations lists the phases in pipeline order
var Operations = []OperationType{
	OperationLoad,
	OperationClassify,
	OperationStatistics,
	OperationPairing,
	OperationRelate,
}

// MemoryMetrics holds memory-related performance metrics
type MemoryMetrics struct {
	CurrentAlloc uint64 `json:"current_alloc"` // bytes currently allocated
	TotalAlloc   uint64 `json:"total_alloc"`   // total bytes allocated
	Sys          uint64 `json:"sys"`           // total bytes from system
	NumGC        uint32 `json:"num_gc"`        // number of garbage collections
	HeapInuse    uint64 `json:"heap_inuse"`    // bytes in in-use spans
}

// OperationMetrics holds the timings of one phase
type OperationMetrics struct {
	Operation  OperationType `json:"operation"`
	Count      int64         `json:"count"`
	TotalTime  int64         `json:"total_time_ns"`
	MinTime    int64         `json:"min_time_ns"`
	MaxTime    int64         `json:"max_time_ns"`
	ErrorCount int64         `json:"error_count"`
}

// MetricsSnapshot represents a point-in-time snapshot of all metrics
type MetricsSnapshot struct {
	Timestamp  time.Time          `json:"timestamp"`
	Memory     MemoryMetrics      `json:"memory"`
	Rows       int64              `json:"rows"`
	Dropped    int64              `json:"dropped"`
	Operations []OperationMetrics `json:"operations"`
}

// Counter is a thread-safe counter metric
type Counter struct {
	value int64
	name  string
}

// NewCounter creates a new counter metric
func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

// Inc increments the counter by 1
func (c *Counter) Inc() {
	atomic.AddInt64(&c.value, 1)
}

// Add adds the given value to the counter
func (c *Counter) Add(value int64) {
	atomic.AddInt64(&c.value, value)
}

// Get returns the current counter value
func (c *Counter) Get() int64 {
	return atomic.LoadInt64(&c.value)
}

// Name returns the counter name
func (c *Counter) Name() string {
	return c.name
}

const noMinimum = int64(^uint64(0) >> 1)

// Timer is a thread-safe timer for measuring operation durations
type Timer struct {
	count     int64
	errors    int64
	totalTime int64
	minTime   int64
	maxTime   int64
	name      string
}

// NewTimer creates a new timer metric
func NewTimer(name string) *Timer {
	return &Timer{name: name, minTime: noMinimum}
}

// Record records a duration measurement
func (t *Timer) Record(duration time.Duration) {
	nanos := duration.Nanoseconds()

	atomic.AddInt64(&t.count, 1)
	atomic.AddInt64(&t.totalTime, nanos)

	for {
		current := atomic.LoadInt64(&t.minTime)
		if nanos >= current || atomic.CompareAndSwapInt64(&t.minTime, current, nanos) {
			break
		}
	}

	for {
		current := atomic.LoadInt64(&t.maxTime)
		if nanos <= current || atomic.CompareAndSwapInt64(&t.maxTime, current, nanos) {
			break
		}
	}
}

// RecordError counts a failed measurement
func (t *Timer) RecordError() {
	atomic.AddInt64(&t.errors, 1)
}

// Count returns the number of recorded measurements
func (t *Timer) Count() int64 {
	return atomic.LoadInt64(&t.count)
}

// Errors returns how many measurements failed
func (t *Timer) Errors() int64 {
	return atomic.LoadInt64(&t.errors)
}

// TotalTime returns the total time of all measurements
func (t *Timer) TotalTime() time.Duration {
	return time.Duration(atomic.LoadInt64(&t.totalTime))
}

// MinTime returns the minimum recorded time
func (t *Timer) MinTime() time.Duration {
	minTime := atomic.LoadInt64(&t.minTime)
	if minTime == noMinimum {
		return 0
	}
	return time.Duration(minTime)
}

// MaxTime returns the maximum recorded time
func (t *Timer) MaxTime() time.Duration {
	return time.Duration(atomic.LoadInt64(&t.maxTime))
}

// AvgTime returns the average time of all measurements
func (t *Timer) AvgTime() time.Duration {
	count := atomic.LoadInt64(&t.count)
	if count == 0 {
		return 0
	}
	return time.Duration(atomic.LoadInt64(&t.totalTime) / count)
}

// Name returns the timer name
func (t *Timer) Name() string {
	return t.name
}

// collectMemory reads the current memory metrics from the Go runtime
func collectMemory() MemoryMetrics {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return MemoryMetrics{
		CurrentAlloc: m.Alloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		HeapInuse:    m.HeapInuse,
	}
}
