//
// server.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

package server

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	dochi "github.com/samber/do/http/chi/v2"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-philo/internal/aerr"
	"gitlab.com/kabes/go-philo/internal/common"
	"gitlab.com/kabes/go-philo/internal/config"
)

const (
	defaultReadTimeout    = 60 * time.Second
	defaultWriteTimeout   = 60 * time.Second
	defaultMaxHeaderBytes = 1 << 20
)

type Server struct {
	router chi.Router

	cfg *config.ServerConf
	s   *http.Server
}

func New(injector do.Injector) (*Server, error) {
	cfg := do.MustInvoke[*config.ServerConf](injector)
	articles := do.MustInvoke[articlesResource](injector)

	registerer, gatherer := metricsRegistry(injector)

	// routes
	router := chi.NewRouter()
	router.Use(middleware.Heartbeat(cfg.WebRoot + "/ping"))
	router.Use(middleware.RealIP)

	router.Group(func(group chi.Router) {
		group.Use(hlog.RequestIDHandler(common.LogKeyReqID, "Request-Id"))
		group.Use(newSimpleLogMiddleware)
		group.Use(newRecoverMiddleware)
		group.Use(middleware.CleanPath)
		group.
			With(newPromMiddleware(registerer, "api", nil)).
			With(middleware.NoCache).
			Mount(cfg.WebRoot+"/api/articles", articles.Routes())

		if cfg.DebugFlags.HasFlag(config.DebugDo) {
			dochi.Use(router, cfg.WebRoot+"/debug/do", injector)
		}
	})

	router.Get(cfg.WebRoot+"/health", newHealthChecker(injector))

	if cfg.EnableMetrics {
		router.Method("GET", cfg.WebRoot+"/metrics", newMetricsHandler(registerer, gatherer))
	}

	return &Server{
		router: router,
		cfg:    cfg,
		s: &http.Server{
			Addr:           cfg.Address,
			Handler:        router,
			ReadTimeout:    defaultReadTimeout,
			WriteTimeout:   defaultWriteTimeout,
			MaxHeaderBytes: defaultMaxHeaderBytes,
		},
	}, nil
}

func (s *Server) Start(ctx context.Context) error {
	logger := log.Logger

	if s.cfg.DebugFlags.HasFlag(config.DebugRouter) {
		logRoutes(ctx, "Server", s.router)
	}

	listener, err := newListener(ctx, s.cfg.Address, s.cfg.TLSKey, s.cfg.TLSCert)
	if err != nil {
		return aerr.Wrapf(err, "start listen error")
	}

	logger.Log().Msgf("Server: listen on address=%s https=%v webroot=%q",
		s.cfg.Address, s.cfg.TLSEnabled(), s.cfg.WebRoot)

	go func() {
		if err := s.s.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log().Err(err).Msgf("Server: serve error: %s", err)
		}
	}()

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	logger := log.Ctx(ctx)
	logger.Debug().Msg("Server: stopping...")

	if err := s.s.Shutdown(ctx); err != nil {
		return aerr.Wrapf(err, "shutdown server failed")
	}

	logger.Debug().Msg("Server: stopped")

	return nil
}

//-------------------------------------------------------------

// newHealthChecker create new handler for /health endpoint; check all services in injector.
func newHealthChecker(injector do.Injector) http.HandlerFunc {
	rootscope := injector.RootScope()

	return func(w http.ResponseWriter, r *http.Request) {
		response := "ok"

		for service, err := range rootscope.HealthCheckWithContext(r.Context()) {
			if err != nil {
				log.Ctx(r.Context()).Error().Err(err).Str("service", service).
					Msgf("HealthChecker: service=%q failed on healthcheck: %s", service, err)

				response = "error"
			}
		}

		if response != "ok" {
			render.Status(r, http.StatusServiceUnavailable)
		}

		render.PlainText(w, r, response)
	}
}

// metricsRegistry return registry provided in injector or default prometheus registry.
func metricsRegistry(injector do.Injector) (prometheus.Registerer, prometheus.Gatherer) {
	if reg, err := do.Invoke[*prometheus.Registry](injector); err == nil {
		return reg, reg
	}

	return prometheus.DefaultRegisterer, prometheus.DefaultGatherer
}

func logRoutes(ctx context.Context, name string, r chi.Routes) {
	logger := log.Ctx(ctx)

	walkFunc := func(method, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		_ = handler
		_ = middlewares
		route = strings.ReplaceAll(route, "/*/", "/")
		logger.Debug().Msgf("%s: ROUTE: %s %s", name, method, route)

		return nil
	}

	if err := chi.Walk(r, walkFunc); err != nil {
		logger.Error().Err(err).Msgf("Server: routers walk error: %s", err)
	}
}

func newListener(ctx context.Context, address, tlskey, tlscert string) (net.Listener, error) {
	if tlskey == "" || tlscert == "" {
		lc := net.ListenConfig{}

		l, err := lc.Listen(ctx, "tcp", address)
		if err != nil {
			return nil, aerr.Wrapf(err, "listen failed").WithMeta("address", address)
		}

		return l, nil
	}

	cert, err := tls.LoadX509KeyPair(tlscert, tlskey)
	if err != nil {
		return nil, aerr.Wrapf(err, "load certificates failed").
			WithMeta("cert", tlscert, "key", tlskey)
	}

	cfg := tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}

	l, err := tls.Listen("tcp", address, &cfg)
	if err != nil {
		return nil, aerr.Wrapf(err, "tls listen failed").WithMeta("address", address)
	}

	return l, nil
}
