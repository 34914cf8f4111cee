// Package dataprocessing consolidates heterogeneous federal award batches
// into a single analysis-ready dataset.
//
// The pipeline runs in a fixed order: normalization (field renames, type
// coercion, invalid-amount drops), deduplication across batches (keep-first
// by award id), keyword categorization (technology and recipient type), and
// generic aggregation into summary and time-series tables. The Processor
// sequences these steps and owns the bounded result cache.
//
// All transformations are pure: they take immutable inputs and return new
// slices. The only shared mutable state is the Processor cache, which is
// guarded by a single-flight group so concurrent callers requesting the same
// key observe at-most-once computation.
package dataprocessing
