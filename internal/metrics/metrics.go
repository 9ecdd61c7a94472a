// Package metrics holds the indexer's prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Feed metrics
	FeedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_requests_total",
			Help: "Total number of upstream feed requests by result",
		},
		[]string{"result"}, // "ok", "error"
	)

	FeedRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feed_request_duration_seconds",
			Help:    "Duration of upstream feed requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Cycle metrics
	Cycles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indexer_cycles_total",
			Help: "Total number of indexer cycles by result",
		},
		[]string{"result"}, // "ok", "error"
	)

	CycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "indexer_cycle_duration_seconds",
			Help:    "Duration of a full fetch, normalize, diff and commit cycle",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	ItemsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indexer_items_total",
			Help: "Items passed to normalization by outcome",
		},
		[]string{"outcome"}, // "ok", "banned", "unrecognized", "conflict", "failed"
	)

	ListingChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indexer_listing_changes_total",
			Help: "Listing mutations committed by kind",
		},
		[]string{"kind"}, // "new", "modified", "sold"
	)

	LiveListings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "indexer_live_listings",
			Help: "Listings currently live (not sold) after the last commit",
		},
	)

	// Snapshot cache metrics
	SnapshotCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "snapshot_cache_hits_total",
			Help: "Total number of stash snapshot cache hits",
		},
	)

	SnapshotCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "snapshot_cache_misses_total",
			Help: "Total number of stash snapshot cache misses",
		},
	)

	// API metrics
	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of status API requests",
		},
		[]string{"route", "status"},
	)
)

// RecordFeedRequest records one upstream feed attempt.
func RecordFeedRequest(d time.Duration, err error) {
	FeedRequestDuration.Observe(d.Seconds())
	FeedRequests.WithLabelValues(resultLabel(err)).Inc()
}

// RecordCycle records one indexer cycle.
func RecordCycle(d time.Duration, err error) {
	CycleDuration.Observe(d.Seconds())
	Cycles.WithLabelValues(resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
