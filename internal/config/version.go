package config

//
// version.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set by linker (-X) for release builds.
var (
	Version   = "dev"
	Revision  = ""
	BuildDate = ""
	BuildUser = ""
)

var VersionString = buildVersionString(Version, readBuildInfo)

func readBuildInfo() (map[string]string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, false
	}

	settings := make(map[string]string, len(info.Settings))
	for _, kv := range info.Settings {
		settings[kv.Key] = kv.Value
	}

	return settings, true
}

func buildVersionString(version string, buildInfo func() (map[string]string, bool)) string {
	if version != "dev" {
		return fmt.Sprintf("Ver: %s, Rev: %s, Build: %s by %s (%s)",
			version, Revision, BuildDate, BuildUser, runtime.Version())
	}

	settings, ok := buildInfo()
	if !ok {
		return version
	}

	res := fmt.Sprintf("Rev: %s at %s", settings["vcs.revision"], settings["vcs.time"])
	if settings["vcs.modified"] == "true" {
		res += " (modified)"
	}

	return res
}
