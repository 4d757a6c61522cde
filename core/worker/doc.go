// Package worker provides the bounded worker pool used to fan out per-item
// processing during bulk sync runs.
//
// A producer feeds items into a sized queue; a fixed number of workers drain
// it under an errgroup. Per-item failures are soft: they are collected and
// reported, and the run continues. Context cancellation stops scheduling
// while letting in-flight items finish.
//
// The pool exists to keep the number of concurrent Stash API calls bounded;
// it is not a general scheduler.
package worker
