package db

//
// transaction.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gitlab.com/kabes/go-philo/internal/aerr"
)

// InTransaction run `fun` in db transaction. Session is available in `fun` by SessionCtx.
// Transaction is committed when `fun` succeed and rolled back on error or panic.
func InTransaction(ctx context.Context, e *Engine, fun func(context.Context) error) error {
	return inTransactionE(ctx, e, callerName(), fun)
}

// InTransactionR run `fun` in db transactions; return `fun` result and error.
func InTransactionR[T any](ctx context.Context, e *Engine, fun func(context.Context) (T, error)) (T, error) {
	return inTransaction(ctx, e, callerName(), fun)
}

// Transactional wrap `fun` so each call run in separate transaction.
// Metrics for wrapped function are labelled with its name.
func Transactional(e *Engine, fun func(context.Context) error) func(context.Context) error {
	caller := funcName(fun)

	return func(ctx context.Context) error {
		return inTransactionE(ctx, e, caller, fun)
	}
}

func inTransactionE(ctx context.Context, e *Engine, caller string, fun func(context.Context) error) error {
	_, err := inTransaction(ctx, e, caller, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fun(ctx)
	})

	return err
}

func inTransaction[T any](ctx context.Context, e *Engine, caller string,
	fun func(context.Context) (T, error),
) (res T, err error) {
	if InTransactionCtx(ctx) {
		return res, ErrNestedTransaction
	}

	start := time.Now()
	defer e.observeDuration(caller, start)

	orm, err := e.ORM(ctx)
	if err != nil {
		return res, err
	}

	tx := orm.Begin()
	if tx.Error != nil {
		return res, aerr.ApplyFor(aerr.ErrDatabase, tx.Error, "begin tx failed")
	}

	sess := newSession(tx)

	logger := log.Ctx(ctx).With().Str("tx_id", sess.ID()).Logger()
	ctx = withSession(logger.WithContext(ctx), sess)

	logger.Debug().Str("caller", caller).Msg("transaction started")

	committed := false

	defer func() {
		sess.close()

		if committed {
			return
		}

		rerr := tx.Rollback().Error
		if rerr == nil || errors.Is(rerr, sql.ErrTxDone) {
			logger.Debug().Msg("transaction rolled back")

			return
		}

		if err == nil {
			// panic in progress
			logger.Error().Err(rerr).Msg("rollback transaction failed")

			return
		}

		merr := errors.Join(err, fmt.Errorf("rollback error: %w", rerr))
		err = aerr.ApplyFor(aerr.ErrDatabase, merr, "execute func in trans and rollback error")
	}()

	res, err = fun(ctx)
	if err != nil {
		return res, err
	}

	if cerr := tx.Commit().Error; cerr != nil {
		return res, aerr.ApplyFor(aerr.ErrDatabase, cerr, "commit tx failed")
	}

	committed = true

	logger.Debug().Msg("transaction committed")

	return res, nil
}

// InConnectionR run `fun` in database context. Open/close connection. Return `fun` result and error.
func InConnectionR[T any](ctx context.Context, e *Engine, fun func(Interface) (T, error)) (T, error) {
	start := time.Now()
	defer e.observeDuration(callerName(), start)

	conn, err := e.GetConnection(ctx)
	if err != nil {
		return *new(T), err
	}

	defer e.CloseConnection(ctx, conn)

	return fun(conn)
}
