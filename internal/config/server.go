package config

//
// server.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"strings"

	"gitlab.com/kabes/go-philo/internal/aerr"
)

// ServerConf configure http server of demo application.
type ServerConf struct {
	Address string
	WebRoot string
	TLSKey  string
	TLSCert string

	DebugFlags    DebugFlags
	EnableMetrics bool
}

func (c *ServerConf) Validate() error {
	if c.Address == "" {
		return aerr.ErrValidation.WithUserMsg("listen address can't be empty")
	}

	if (c.TLSKey != "") != (c.TLSCert != "") {
		return aerr.ErrValidation.WithUserMsg("both tls key and cert must be defined")
	}

	c.WebRoot = strings.TrimSuffix(c.WebRoot, "/")

	return nil
}

func (c *ServerConf) TLSEnabled() bool {
	return c.TLSKey != ""
}
