package config

//
// debugflags.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"slices"
	"strings"
)

//-------------------------------------------------------------

type DebugFlag string

const (
	// DebugSQL enable logging all sql statements executed by orm.
	DebugSQL = DebugFlag("sql")
	// DebugDo enable logging samber/do and /debug/do endpoint.
	DebugDo = DebugFlag("do")
	// DebugRouter show defined routes.
	DebugRouter = DebugFlag("router")
	// DebugDBQueryMetrics enable metrics for transactions duration.
	DebugDBQueryMetrics = DebugFlag("querymetrics")

	// DebugAll enable all debug flags.
	DebugAll = DebugFlag("all")
	// DebugNone disable all debug flags.
	DebugNone = DebugFlag("")
)

type DebugFlags []string

func NewDebugFlags(flags string) DebugFlags {
	df := DebugFlags{}

	for f := range strings.SplitSeq(flags, ",") {
		if f = strings.TrimSpace(f); f != "" {
			df = append(df, f)
		}
	}

	return df
}

func (d DebugFlags) HasFlag(flag DebugFlag) bool {
	return slices.Contains(d, string(DebugAll)) || slices.Contains(d, string(flag))
}
