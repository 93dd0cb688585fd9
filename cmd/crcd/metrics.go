package main

import "github.com/prometheus/client_golang/prometheus"

// Package-level collectors created once and registered in init, read by
// nothing but Prometheus's own scrape handler.
var (
	framesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crcd",
		Name:      "frames_total",
		Help:      "Number of length-prefixed frames processed, by result.",
	}, []string{"result"})

	frameBytes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "crcd",
		Name:      "frame_bytes",
		Help:      "Size distribution of frame bodies in bytes.",
		Buckets:   prometheus.ExponentialBuckets(16, 2, 16),
	})
)

func init() {
	prometheus.MustRegister(framesTotal, frameBytes)
}
