package db

//
// errors.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import "gitlab.com/kabes/go-philo/internal/aerr"

var (
	ErrUninitialized = aerr.NewSimple("database engine is not initialized").
				WithTag(aerr.ProgrammingError)
	ErrEngineOpened = aerr.NewSimple("database engine is already initialized").
			WithTag(aerr.ProgrammingError)
	ErrNoTransaction = aerr.NewSimple("database session used outside of a transactional context").
				WithTag(aerr.ProgrammingError)
	ErrNestedTransaction = aerr.NewSimple("nested transactional calls are not supported").
				WithTag(aerr.ProgrammingError)
)
