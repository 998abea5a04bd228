package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/definition"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 1 << 20

// MetricsLabel is the machine label of runs submitted over HTTP. Machine
// names come from clients and would otherwise create a series per name.
const MetricsLabel = "http"

// Server implements the generated ServerInterface.
type Server struct {
	Store    ports.ResultStore
	Runs     *runner.Executor
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer

	apiVersion string
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

type config struct {
	logger    *slog.Logger
	metrics   *observability.Metrics
	gatherer  prometheus.Gatherer
	stepLimit int
	timeout   time.Duration
	newID     func() string
}

// Option configures the handler.
type Option func(*config)

// WithLogger sets the request and run logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics records runs in m and serves g on /metrics.
func WithMetrics(m *observability.Metrics, g prometheus.Gatherer) Option {
	return func(c *config) {
		c.metrics = m
		c.gatherer = g
	}
}

// WithStepLimit caps every run at n steps. Requests may ask for less.
// Values below one keep runner.DefaultStepLimit.
func WithStepLimit(n int) Option {
	return func(c *config) {
		c.stepLimit = n
	}
}

// WithRunTimeout bounds the wall time of each run.
func WithRunTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithIDGenerator replaces the uuid run id generator.
func WithIDGenerator(fn func() string) Option {
	return func(c *config) {
		c.newID = fn
	}
}

// NewHandler creates the HTTP handler backed by store.
func NewHandler(store ports.ResultStore, opts ...Option) http.Handler {
	c := &config{logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(c)
	}

	runOpts := []runner.Option{
		runner.WithLogger(c.logger),
		runner.WithStepLimit(c.stepLimit),
		runner.WithTimeout(c.timeout),
		runner.WithIDGenerator(c.newID),
	}
	if c.metrics != nil {
		runOpts = append(runOpts, runner.WithLifecycleHooks(c.metrics.HooksFor(MetricsLabel)))
	}

	s := &Server{
		Store:    store,
		Runs:     runner.New(store, runOpts...),
		Logger:   c.logger,
		Gatherer: c.gatherer,
	}
	if swagger, err := GetSwagger(); err != nil {
		s.Logger.Error("Failed to load OpenAPI document", "error", err)
	} else if swagger.Info != nil {
		s.apiVersion = swagger.Info.Version
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := rawSpec()
		if err != nil {
			s.Logger.Error("Failed to load OpenAPI document", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load API document")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(doc)
	})
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}

	return HandlerWithOptions(s, ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			writeError(w, http.StatusBadRequest, err.Error())
		},
	})
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Info{
		App:        "turing-http",
		Version:    strings.TrimSpace(turing.Version),
		ApiVersion: s.apiVersion,
		StepLimit:  s.Runs.StepLimit(),
	})
}

// CreateRun handles POST /runs. Run failures are outcomes and are stored
// like any other run; only unusable definitions are rejected.
func (s *Server) CreateRun(w http.ResponseWriter, r *http.Request) {
	var body CreateRunJSONRequestBody
	if err := decodeBody(w, r, &body); err != nil {
		s.badRequest(w, "invalid request body", err)
		return
	}
	req := runner.Request{Input: body.Input}
	if body.StepLimit != nil {
		req.StepLimit = *body.StepLimit
	}
	if body.Trace != nil {
		req.Trace = *body.Trace
	}
	if req.StepLimit < 0 {
		s.badRequest(w, "invalid request body", runner.ErrNegativeStepLimit)
		return
	}

	def, err := parseDefinition(body.Definition)
	if err != nil {
		s.badRequest(w, "invalid definition", err)
		return
	}
	req.Definition = def

	rec, err := s.Runs.Run(r.Context(), req)
	if errors.Is(err, runner.ErrStore) {
		s.Logger.Error("CreateRun: save failed", "run_id", rec.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store run")
		return
	}
	if err != nil {
		s.badRequest(w, "invalid definition", err)
		return
	}

	w.Header().Set("Location", "/runs/"+rec.ID)
	writeJSON(w, http.StatusCreated, rec)
}

// ListRuns handles GET /runs.
func (s *Server) ListRuns(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Store.List(r.Context())
	if err != nil {
		s.Logger.Error("ListRuns failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	writeJSON(w, http.StatusOK, RunList{Runs: ids})
}

// GetRun handles GET /runs/{id}.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request, id string) {
	rec, err := s.Store.Load(r.Context(), id)
	if errors.Is(err, domain.ErrRunNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("run %s not found", id))
		return
	}
	if err != nil {
		s.Logger.Error("GetRun failed", "run_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load run")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// DeleteRun handles DELETE /runs/{id}.
func (s *Server) DeleteRun(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.Store.Delete(r.Context(), id); err != nil {
		s.Logger.Error("DeleteRun failed", "run_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete run")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ValidateDefinition handles POST /validate. The body is a definition.
func (s *Server) ValidateDefinition(w http.ResponseWriter, r *http.Request) {
	def, ok := s.readDefinition(w, r)
	if !ok {
		return
	}
	report, err := validator.ValidateDefinition(def)
	if err != nil {
		s.badRequest(w, "invalid definition", err)
		return
	}
	writeJSON(w, http.StatusOK, ValidateResponse{Valid: report.Err() == nil, Issues: issues(report)})
}

// RenderGraph handles POST /graph. The body is a definition; the response
// is a Mermaid flowchart.
func (s *Server) RenderGraph(w http.ResponseWriter, r *http.Request) {
	def, ok := s.readDefinition(w, r)
	if !ok {
		return
	}
	tables, err := def.Tables()
	if err != nil {
		s.badRequest(w, "invalid definition", err)
		return
	}
	accept, reject := def.Terminals()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, graph.GenerateMermaid(tables, accept, reject, nil))
}

func (s *Server) readDefinition(w http.ResponseWriter, r *http.Request) (*definition.Definition, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		s.badRequest(w, "invalid request body", err)
		return nil, false
	}
	def, err := definition.Parse(data)
	if err != nil {
		s.badRequest(w, "invalid definition", err)
		return nil, false
	}
	return def, true
}

func (s *Server) badRequest(w http.ResponseWriter, msg string, err error) {
	s.Logger.Warn("request rejected", "reason", msg, "error", err)
	resp := Error{Error: fmt.Sprintf("%s: %v", msg, err)}
	if errs := definition.ValidationErrors(err); errs != nil {
		problems := make([]string, 0, len(errs))
		for _, e := range errs {
			problems = append(problems, e.Error())
		}
		resp.Error = msg
		resp.Problems = &problems
	}
	writeJSON(w, http.StatusBadRequest, resp)
}

func issues(report validator.Report) []Issue {
	out := make([]Issue, 0, len(report))
	for _, i := range report {
		out = append(out, Issue{Severity: string(i.Severity), State: int(i.State), Message: i.Message})
	}
	return out
}

// parseDefinition accepts an inline object or a YAML string.
func parseDefinition(raw json.RawMessage) (*definition.Definition, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf("definition is required")
	}
	if raw[0] == '"' {
		var doc string
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		return definition.Parse([]byte(doc))
	}
	return definition.Parse(raw)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Error{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
