package server

//
// server_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-philo/internal/assert"
	"gitlab.com/kabes/go-philo/internal/config"
	"gitlab.com/kabes/go-philo/internal/db"
	"gitlab.com/kabes/go-philo/internal/model"
	"gitlab.com/kabes/go-philo/internal/repository"
	"gitlab.com/kabes/go-philo/internal/service"
)

func prepareServer(t *testing.T) (context.Context, *Server) {
	t.Helper()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Caller().Logger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	ctx := log.Logger.WithContext(context.Background())

	i := do.New(Package, service.Package, db.Package, model.Package, repository.Package)
	do.ProvideValue(i, config.NewSqliteConfig(filepath.Join(t.TempDir(), "test.db")))
	do.ProvideValue(i, &config.ServerConf{Address: "127.0.0.1:0", EnableMetrics: true})
	do.ProvideValue(i, prometheus.NewRegistry())

	t.Cleanup(func() { i.Shutdown() })

	engine := do.MustInvoke[*db.Engine](i)
	if err := engine.Open(ctx); err != nil {
		t.Fatalf("open database error: %#+v", err)
	}

	if _, err := do.MustInvoke[*service.ArticlesSrv](i).Bootstrap(ctx); err != nil {
		t.Fatalf("bootstrap database error: %#+v", err)
	}

	return ctx, do.MustInvoke[*Server](i)
}

func doRequest(ctx context.Context, s *Server, method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequestWithContext(ctx, method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequestWithContext(ctx, method, url, nil)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	return rec
}

func TestServerPing(t *testing.T) {
	ctx, s := prepareServer(t)

	rec := doRequest(ctx, s, http.MethodGet, "/ping", "")
	assert.Equal(t, rec.Code, http.StatusOK)

	rec = doRequest(ctx, s, http.MethodGet, "/health", "")
	assert.Equal(t, rec.Code, http.StatusOK)
	assert.Equal(t, rec.Body.String(), "ok")
}

func TestServerArticles(t *testing.T) {
	ctx, s := prepareServer(t)

	rec := doRequest(ctx, s, http.MethodGet, "/api/articles", "")
	assert.Equal(t, rec.Code, http.StatusOK)

	var articles []model.Article

	assert.NoErr(t, json.Unmarshal(rec.Body.Bytes(), &articles))
	assert.Len(t, articles, service.NumDefaultArticles)
	assert.Equal(t, articles[0].Name, "Something 0")

	rec = doRequest(ctx, s, http.MethodGet, "/api/articles/1", "")
	assert.Equal(t, rec.Code, http.StatusOK)

	var article model.Article

	assert.NoErr(t, json.Unmarshal(rec.Body.Bytes(), &article))
	assert.Equal(t, article.ID, 1)
	assert.Equal(t, article.Content, "Hello world 0!")

	rec = doRequest(ctx, s, http.MethodGet, "/api/articles/999", "")
	assert.Equal(t, rec.Code, http.StatusNotFound)

	rec = doRequest(ctx, s, http.MethodGet, "/api/articles/abc", "")
	assert.Equal(t, rec.Code, http.StatusNotFound)
}

func TestServerComments(t *testing.T) {
	ctx, s := prepareServer(t)

	rec := doRequest(ctx, s, http.MethodPost, "/api/articles/2/comments", `{"body": "first comment"}`)
	assert.Equal(t, rec.Code, http.StatusCreated)

	var comment model.Comment

	assert.NoErr(t, json.Unmarshal(rec.Body.Bytes(), &comment))
	assert.Equal(t, comment.Body, "first comment")
	assert.Equal(t, comment.ArticleID.Int64(), 2)

	rec = doRequest(ctx, s, http.MethodPost, "/api/articles/2/comments", `{"body": ""}`)
	assert.Equal(t, rec.Code, http.StatusBadRequest)

	rec = doRequest(ctx, s, http.MethodPost, "/api/articles/2/comments", `{"body": `)
	assert.Equal(t, rec.Code, http.StatusBadRequest)

	rec = doRequest(ctx, s, http.MethodPost, "/api/articles/999/comments", `{"body": "abc"}`)
	assert.Equal(t, rec.Code, http.StatusNotFound)

	rec = doRequest(ctx, s, http.MethodGet, "/api/articles/2/comments", "")
	assert.Equal(t, rec.Code, http.StatusOK)

	var comments []model.Comment

	assert.NoErr(t, json.Unmarshal(rec.Body.Bytes(), &comments))
	assert.Len(t, comments, 1)
}

func TestServerMetrics(t *testing.T) {
	ctx, s := prepareServer(t)

	rec := doRequest(ctx, s, http.MethodGet, "/api/articles", "")
	assert.Equal(t, rec.Code, http.StatusOK)

	rec = doRequest(ctx, s, http.MethodGet, "/metrics", "")
	assert.Equal(t, rec.Code, http.StatusOK)
	assert.True(t, strings.Contains(rec.Body.String(), "http_requests_total"))
}
