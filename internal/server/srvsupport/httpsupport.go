// Package srvsupport contains helpers shared by http handlers.
package srvsupport

//
// httpsupport.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/rs/zerolog"
	"gitlab.com/kabes/go-philo/internal/aerr"
	"gitlab.com/kabes/go-philo/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

// RenderJSON write `v` as json. Status code is taken from request context
// (set by render.Status); 200 is used when not set.
// Response is streamed directly to writer, without temporary buffer.
func RenderJSON(w http.ResponseWriter, r *http.Request, v any) {
	status := http.StatusOK
	if s, ok := r.Context().Value(render.StatusCtxKey).(int); ok {
		status = s
	}

	writeJSON(w, r, status, v)
}

// WriteError write json response with error message.
func WriteError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if msg == "" {
		msg = http.StatusText(code)
	}

	writeJSON(w, r, code, &errorResponse{msg})
}

// CheckAndWriteError decode and write error to ResponseWriter.
func CheckAndWriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	WriteError(w, r, status, aerr.GetUserMessageOr(err, http.StatusText(status)))
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, common.ErrUnknownArticle), errors.Is(err, common.ErrNoData):
		return http.StatusNotFound
	case aerr.HasTag(err, aerr.ValidationError), aerr.HasTag(err, aerr.DataError):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)

	if err := enc.Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("encode json failed")
	}
}
