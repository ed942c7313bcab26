package db

//
// metrics.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"reflect"
	"runtime"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func newDBStatsCollector(db *sqlx.DB) prometheus.Collector { //nolint:ireturn
	return collectors.NewDBStatsCollector(db.DB, "main")
}

func newQueryDurationHistogram() *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "database_transaction_duration_seconds",
			Help:    "Tracks the latencies for database transactions and connections.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1, 2, 5},
		},
		[]string{"caller"},
	)
}

// callerName return name of function that called function calling callerName.
func callerName() string {
	const skipFrames = 3

	rpc := make([]uintptr, 1)
	if n := runtime.Callers(skipFrames, rpc); n < 1 {
		return ""
	}

	frame, _ := runtime.CallersFrames(rpc).Next()

	return frame.Function
}

// funcName return full name of function `fun`.
func funcName(fun any) string {
	if f := runtime.FuncForPC(reflect.ValueOf(fun).Pointer()); f != nil {
		return f.Name()
	}

	return ""
}

func (e *Engine) observeDuration(caller string, start time.Time) {
	e.mu.RLock()
	hist := e.queryDuration
	e.mu.RUnlock()

	if hist == nil {
		return
	}

	hist.WithLabelValues(caller).Observe(time.Since(start).Seconds())
}
