package db

//
// session.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"sync/atomic"

	"github.com/jmoiron/sqlx"
	"github.com/rs/xid"
	"gorm.io/gorm"
)

// ------------------------------------------------------------------------------

// Queryer define interface for object used to query database.
type Queryer interface {
	sqlx.QueryerContext
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
}

type Interface interface {
	sqlx.QueryerContext
	sqlx.PreparerContext
	sqlx.ExecerContext

	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
}

// ------------------------------------------------------------------------------

// Session is orm transaction bound to one transactional scope.
// It is usable only while the scope is running.
type Session struct {
	id     xid.ID
	tx     *gorm.DB
	active atomic.Bool
}

func newSession(tx *gorm.DB) *Session {
	s := &Session{id: xid.New(), tx: tx}
	s.active.Store(true)

	return s
}

func (s *Session) ID() string {
	return s.id.String()
}

func (s *Session) Active() bool {
	return s != nil && s.active.Load()
}

// ORM return transaction handle or ErrNoTransaction when scope already finished.
func (s *Session) ORM() (*gorm.DB, error) {
	if !s.Active() {
		return nil, ErrNoTransaction
	}

	return s.tx, nil
}

func (s *Session) close() {
	s.active.Store(false)
}

// ------------------------------------------------------------------------------

//nolint:gochecknoglobals
var ctxSessionKey = any("CtxDBSessionKey")

func withSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxSessionKey, s)
}

func sessionFromCtx(ctx context.Context) *Session {
	s, ok := ctx.Value(ctxSessionKey).(*Session)
	if !ok {
		return nil
	}

	return s
}

// SessionCtx return orm handle of active transaction from context.
func SessionCtx(ctx context.Context) (*gorm.DB, error) {
	tx, err := sessionFromCtx(ctx).ORM()
	if err != nil {
		return nil, err
	}

	return tx.WithContext(ctx), nil
}

// MustSession return orm handle of active transaction from context. Panic when not exists.
func MustSession(ctx context.Context) *gorm.DB {
	tx, err := SessionCtx(ctx)
	if err != nil {
		panic(err)
	}

	return tx
}

// InTransactionCtx return true when context carry active transaction.
func InTransactionCtx(ctx context.Context) bool {
	return sessionFromCtx(ctx).Active()
}
