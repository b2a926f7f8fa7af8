// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics declares the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "protectionpro_http_requests_total",
		Help: "HTTP requests served, partitioned by route pattern, method and status class.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "protectionpro_http_request_duration_seconds",
		Help:    "Time spent serving HTTP requests.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"route"})

	HTTPPanics = promauto.NewCounter(prometheus.CounterOpts{
		Name: "protectionpro_http_panics_total",
		Help: "Handler panics turned into 500 responses.",
	})

	// Page cache
	PageCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "protectionpro_page_cache_hits_total",
		Help: "Public pages served from the page cache.",
	})

	PageCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "protectionpro_page_cache_misses_total",
		Help: "Public pages rendered because they were not cached.",
	})

	PageCacheFlushes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "protectionpro_page_cache_flushes_total",
		Help: "Full page cache invalidations.",
	})

	// Site options
	OptionsSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "protectionpro_options_saves_total",
		Help: "Site option saves, partitioned by outcome.",
	}, []string{"result"})

	// Rendering
	RenderErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "protectionpro_render_errors_total",
		Help: "Template execution failures, partitioned by template name.",
	}, []string{"template"})
)
