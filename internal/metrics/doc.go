// Package metrics models benchmark samples and turns them into plottable series.
//
// The external execution engine writes one sample per testcase run; this
// package is read-only over those samples. Each [Record] carries the numeric
// metric values and a [Context]: the parameters the sample was taken under
// (block size, queue depth, source file, timestamp, ...).
//
// # Aggregation
//
// [Aggregate] groups records into [Series] by context fingerprint:
//
//	series, err := metrics.Aggregate(records, metrics.MetricIOPS, metrics.XKeyIODepth, nil)
//
// Two records land in the same series exactly when their contexts, minus the
// x-axis key and the volatile keys (fname, timestamp), are equal field for
// field. The fingerprint is a stable hash over a canonical key-sorted
// serialization, so repeated aggregation over the same inputs always yields
// the same series identities and ordering.
//
// A defective record aborts the whole pass: a record without the chosen
// metric fails with [MissingMetricError], a record whose x value does not
// parse as an integer fails with [MalformedContextError]. Partial charts that
// look complete are worse than no chart.
//
// # Summaries
//
// [Summarize] computes an HdrHistogram-backed distribution of one metric over
// a record set, used by the post-run report.
package metrics
