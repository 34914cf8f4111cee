package dataprocessing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline observability counters. Registered on the default registry; the
// hosting process decides whether and where to expose them.
var (
	ingestRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fedspend",
		Subsystem: "pipeline",
		Name:      "ingest_runs_total",
		Help:      "Number of ingest runs processed.",
	})

	recordsIngestedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fedspend",
		Subsystem: "pipeline",
		Name:      "records_ingested_total",
		Help:      "Number of unique award records produced by ingestion.",
	})

	duplicatesDiscardedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fedspend",
		Subsystem: "pipeline",
		Name:      "duplicates_discarded_total",
		Help:      "Number of duplicate award records discarded during consolidation.",
	})

	analysisCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fedspend",
		Subsystem: "pipeline",
		Name:      "analysis_cache_hits_total",
		Help:      "Number of comprehensive analyses served from the result cache.",
	})

	analysisRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fedspend",
		Subsystem: "pipeline",
		Name:      "analysis_runs_total",
		Help:      "Number of comprehensive analyses computed.",
	})
)
