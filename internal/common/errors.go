package common

//
// Common application errors
//
// errors.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"errors"

	"gitlab.com/kabes/go-philo/internal/aerr"
)

// Validation errors.
var (
	ErrUnknownArticle   = aerr.NewSimple("unknown article").WithTag(aerr.ValidationError)
	ErrInvalidArticle   = aerr.NewSimple("invalid article").WithTag(aerr.ValidationError)
	ErrEmptyCommentBody = aerr.NewSimple("comment body can't be empty").WithTag(aerr.ValidationError).
				WithUserMsg("comment can't be empty")
)

var ErrNoData = errors.New("no result")
