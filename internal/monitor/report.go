package monitor

import (
	"fmt"
	"strings"
	"time"
)

// FormatText renders a snapshot as an aligned timing table
func FormatText(snapshot MetricsSnapshot) string {
	var b strings.Builder

	b.WriteString("Pipeline Timings\n")
	b.WriteString("================\n")
	fmt.Fprintf(&b, "Rows: %d kept, %d dropped\n", snapshot.Rows, snapshot.Dropped)
	fmt.Fprintf(&b, "Memory: %.2f MB allocated, %d GC cycles\n\n",
		float64(snapshot.Memory.CurrentAlloc)/1024/1024, snapshot.Memory.NumGC)

	if len(snapshot.Operations) == 0 {
		b.WriteString("no operations recorded\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%-12s %6s %12s %12s %12s %6s\n", "Operation", "Count", "Total", "Min", "Max", "Errors")
	var total time.Duration
	for _, op := range snapshot.Operations {
		total += time.Duration(op.TotalTime)
		fmt.Fprintf(&b, "%-12s %6d %12s %12s %12s %6d\n",
			op.Operation,
			op.Count,
			time.Duration(op.TotalTime).Round(time.Microsecond),
			time.Duration(op.MinTime).Round(time.Microsecond),
			time.Duration(op.MaxTime).Round(time.Microsecond),
			op.ErrorCount,
		)
	}
	fmt.Fprintf(&b, "%-12s %6s %12s\n", "total", "", total.Round(time.Microsecond))

	return b.String()
}
