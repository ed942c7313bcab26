package config

//
// dbconfig.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"slices"

	"gitlab.com/kabes/go-philo/internal/aerr"
)

const (
	// DriverSqlite3 is sqlite database accessed by mattn/go-sqlite3 (cgo).
	DriverSqlite3 = "sqlite3"
	// DriverSqlite is sqlite database accessed by modernc.org/sqlite (pure go).
	DriverSqlite = "sqlite"
	// DriverPostgres is PostgreSQL accessed by pgx.
	DriverPostgres = "postgres"
)

var supportedDrivers = []string{DriverSqlite3, DriverSqlite, DriverPostgres}

type DBConfig struct {
	Driver  string
	Connstr string
}

func NewDBConfig(driver, connstr string) DBConfig {
	return DBConfig{
		Driver:  mapDriverName(driver),
		Connstr: connstr,
	}
}

// NewSqliteConfig create configuration for local, file-based sqlite database.
func NewSqliteConfig(filename string) DBConfig {
	return DBConfig{
		Driver:  DriverSqlite3,
		Connstr: filename,
	}
}

func (d *DBConfig) Validate() error {
	if d.Connstr == "" {
		return aerr.ErrInvalidConf.WithUserMsg("database connection string can't be empty")
	}

	if d.Driver == "" {
		return aerr.ErrInvalidConf.WithUserMsg("database driver can't be empty")
	}

	if !slices.Contains(supportedDrivers, d.Driver) {
		return aerr.ErrInvalidConf.WithUserMsg("unsupported database driver %q", d.Driver)
	}

	return nil
}

// IsSqlite return true when database is sqlite regardless of go driver.
func (d *DBConfig) IsSqlite() bool {
	return d.Driver == DriverSqlite3 || d.Driver == DriverSqlite
}

func mapDriverName(driver string) string {
	switch driver {
	case "sqlite3", "mattn":
		return DriverSqlite3
	case "sqlite", "modernc", "sqlite-go":
		return DriverSqlite
	case "pg", "pgx", "postgresql", "postgres":
		return DriverPostgres
	}

	return driver
}
