package db

//
// connstr.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"net/url"
	"strings"

	"gitlab.com/kabes/go-philo/internal/aerr"
	"gitlab.com/kabes/go-philo/internal/config"
)

const (
	memoryDB    = ":memory:"
	busyTimeout = "5000"
)

// prepareConnstr add required parameters to connection string.
func prepareConnstr(cfg config.DBConfig) (string, error) {
	switch cfg.Driver {
	case config.DriverSqlite3:
		return prepareSqliteConnstr(cfg.Connstr)
	case config.DriverSqlite:
		return prepareModerncConnstr(cfg.Connstr)
	}

	if cfg.Connstr == "" {
		return "", aerr.ErrInvalidConf.WithUserMsg("invalid (empty) database connection string")
	}

	return cfg.Connstr, nil
}

// prepareSqliteConnstr enable foreign keys, busy timeout and immediate transactions
// for mattn/go-sqlite3 when not configured explicitly.
func prepareSqliteConnstr(connstr string) (string, error) {
	if connstr == memoryDB {
		return memoryDB + "?_fk=ON", nil
	}

	path, query, err := splitSqliteConnstr(connstr)
	if err != nil {
		return "", err
	}

	if !query.Has("_fk") && !query.Has("_foreign_keys") {
		query.Set("_fk", "ON")
	}

	if !query.Has("_busy_timeout") && !query.Has("_timeout") {
		query.Set("_busy_timeout", busyTimeout)
	}

	if !query.Has("_txlock") {
		query.Set("_txlock", "immediate")
	}

	return path + "?" + query.Encode(), nil
}

// prepareModerncConnstr is prepareSqliteConnstr for modernc.org/sqlite that use _pragma parameters.
func prepareModerncConnstr(connstr string) (string, error) {
	if connstr == memoryDB {
		return memoryDB + "?_pragma=foreign_keys(1)", nil
	}

	path, query, err := splitSqliteConnstr(connstr)
	if err != nil {
		return "", err
	}

	pragmas := strings.Join(query["_pragma"], ",")

	if !strings.Contains(pragmas, "foreign_keys") {
		query.Add("_pragma", "foreign_keys(1)")
	}

	if !strings.Contains(pragmas, "busy_timeout") {
		query.Add("_pragma", "busy_timeout("+busyTimeout+")")
	}

	if !query.Has("_txlock") {
		query.Set("_txlock", "immediate")
	}

	return path + "?" + query.Encode(), nil
}

// splitSqliteConnstr split connection string into file name and parameters.
// File name is returned as is; sqlite drivers do not unescape it.
func splitSqliteConnstr(connstr string) (string, url.Values, error) {
	if connstr == "" {
		return "", nil, aerr.ErrInvalidConf.WithUserMsg("invalid (empty) database connection string")
	}

	path, rawQuery, _ := strings.Cut(connstr, "?")
	if path == "" || path == "file:" {
		return "", nil, aerr.ErrInvalidConf.WithUserMsg("invalid database connection string - missing path")
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", nil, aerr.ApplyFor(aerr.ErrInvalidConf, err, "", "failed to parse database connections string")
	}

	return path, query, nil
}
