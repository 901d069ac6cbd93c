// Package server exposes the projection worker over HTTP.
package server

import (
	"context"
	"errors"
	"time"

	json "github.com/goccy/go-json"
	"github.com/propgo/roadmap-engine/internal/calculation"
	"github.com/propgo/roadmap-engine/internal/config"
	"github.com/propgo/roadmap-engine/internal/domain"
	"github.com/propgo/roadmap-engine/internal/worker"
	"github.com/valyala/fasthttp"
)

// DefaultTimeout bounds how long a request waits for the worker
const DefaultTimeout = 30 * time.Second

// ErrorResponse is the body of every non-2xx reply
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Server routes HTTP requests to a projection worker
type Server struct {
	worker  *worker.Worker
	parser  *config.InputParser
	logger  calculation.Logger
	timeout time.Duration
	srv     *fasthttp.Server
}

// New creates a server around a started worker
func New(w *worker.Worker, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	s := &Server{
		worker:  w,
		parser:  config.NewInputParser(),
		logger:  logger,
		timeout: DefaultTimeout,
	}
	s.srv = &fasthttp.Server{
		Handler:      s.Handler,
		Name:         "roadmap-engine",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: DefaultTimeout + 5*time.Second,
	}
	return s
}

// ListenAndServe blocks serving on addr
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Infof("roadmap engine listening on %s", addr)
	return s.srv.ListenAndServe(addr)
}

// Shutdown stops accepting connections and waits for open requests
func (s *Server) Shutdown() error {
	return s.srv.Shutdown()
}

// Handler is the fasthttp request router
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		ctx.SetContentType("text/plain")
		ctx.SetBodyString("ok")
	case "/v1/projections":
		if !ctx.IsPost() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		s.handleProjection(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	var req domain.ProjectionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.parser.ApplyDefaults(&req)
	if err := s.parser.ValidateRequest(&req); err != nil {
		writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}

	wctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	resp, err := s.worker.Submit(wctx, &req)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		writeError(ctx, fasthttp.StatusGatewayTimeout, "Projection timed out")
		return
	case err != nil:
		writeError(ctx, fasthttp.StatusServiceUnavailable, err.Error())
		return
	}

	status := fasthttp.StatusOK
	if !resp.OK() {
		status = fasthttp.StatusInternalServerError
	}
	writeJSON(ctx, status, resp)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
