package metrics

import "fmt"

// MissingMetricError reports a record without the metric chosen for
// aggregation. It aborts the whole pass.
type MissingMetricError struct {
	Index  int
	Metric Metric
}

func (e *MissingMetricError) Error() string {
	return fmt.Sprintf("record %d has no %q metric", e.Index, e.Metric)
}

// MalformedContextError reports a record whose context cannot supply the
// chosen x value. It aborts the whole pass.
type MalformedContextError struct {
	Index int
	Key   string
	Cause error
}

func (e *MalformedContextError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("record %d context has no %q key", e.Index, e.Key)
	}
	return fmt.Sprintf("record %d context key %q: %v", e.Index, e.Key, e.Cause)
}

func (e *MalformedContextError) Unwrap() error { return e.Cause }
