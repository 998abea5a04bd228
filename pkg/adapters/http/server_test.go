package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/adapters/memory"
	turinghttp "github.com/aretw0/turing/pkg/adapters/http"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lengthModThree = `{
	"name": "length-mod-3",
	"accept": 3,
	"reject": 4,
	"alphabet": ["a"],
	"states": [
		{"id": 0, "transitions": [{"read": "a", "move": "right", "next": 1}, {"read": "blank", "next": 3}]},
		{"id": 1, "transitions": [{"read": "a", "move": "right", "next": 2}, {"read": "blank", "next": 4}]},
		{"id": 2, "transitions": [{"read": "a", "move": "right", "next": 0}, {"read": "blank", "next": 4}]}
	]
}`

const spinner = `{
	"name": "spinner",
	"accept": 1,
	"reject": 2,
	"states": [{"id": 0, "transitions": [{"read": "blank", "next": 0}]}]
}`

func newServer(t *testing.T, opts ...turinghttp.Option) (http.Handler, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	n := 0
	ids := func() string {
		n++
		return []string{"run-a", "run-b", "run-c", "run-d"}[n-1]
	}
	opts = append([]turinghttp.Option{turinghttp.WithIDGenerator(ids)}, opts...)
	return turinghttp.NewHandler(store, opts...), store
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func runBody(definition, input string, extra string) string {
	return `{"definition": ` + definition + `, "input": "` + input + `"` + extra + `}`
}

func decodeRecord(t *testing.T, w *httptest.ResponseRecorder) domain.RunRecord {
	t.Helper()
	var rec domain.RunRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	return rec
}

func TestCreateRun_Outcomes(t *testing.T) {
	h, store := newServer(t)

	w := do(t, h, "POST", "/runs", runBody(lengthModThree, "aaa", `, "trace": true`))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/runs/run-a", w.Header().Get("Location"))
	rec := decodeRecord(t, w)
	assert.Equal(t, "run-a", rec.ID)
	assert.Equal(t, domain.OutcomeAccepted, rec.Outcome)
	assert.Equal(t, 4, rec.Steps)
	assert.Equal(t, []domain.StateID{0, 1, 2, 0, 3}, rec.Trace)

	w = do(t, h, "POST", "/runs", runBody(lengthModThree, "aa", ""))
	require.Equal(t, http.StatusCreated, w.Code)
	rec = decodeRecord(t, w)
	assert.Equal(t, domain.OutcomeRejected, rec.Outcome)
	assert.Empty(t, rec.Trace)

	stored, err := store.Load(t.Context(), "run-b")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRejected, stored.Outcome)
}

func TestCreateRun_RunErrorsAreStored(t *testing.T) {
	h, _ := newServer(t)

	w := do(t, h, "POST", "/runs", runBody(lengthModThree, "ab", ""))
	require.Equal(t, http.StatusCreated, w.Code)
	rec := decodeRecord(t, w)
	assert.Equal(t, domain.OutcomeFailed, rec.Outcome)
	assert.Contains(t, rec.Error, `does not handle symbol "b"`)
	assert.Equal(t, 1, rec.Position)
}

func TestCreateRun_StepLimit(t *testing.T) {
	h, _ := newServer(t, turinghttp.WithStepLimit(50))

	w := do(t, h, "POST", "/runs", runBody(spinner, "", `, "step_limit": 10`))
	require.Equal(t, http.StatusCreated, w.Code)
	rec := decodeRecord(t, w)
	assert.Equal(t, domain.OutcomeStepLimit, rec.Outcome)
	assert.Equal(t, 10, rec.Steps)

	// The server cap wins over larger or missing requests.
	w = do(t, h, "POST", "/runs", runBody(spinner, "", `, "step_limit": 1000`))
	assert.Equal(t, 50, decodeRecord(t, w).Steps)
	w = do(t, h, "POST", "/runs", runBody(spinner, "", ""))
	assert.Equal(t, 50, decodeRecord(t, w).Steps)
}

func TestCreateRun_DefaultStepLimit(t *testing.T) {
	h, _ := newServer(t)
	runaway := `{"name": "runaway", "accept": 1, "reject": 2, "states": [{"id": 0, "transitions": [{"read": "blank", "move": "right", "next": 0}]}]}`

	w := do(t, h, "POST", "/runs", runBody(runaway, "", ""))
	require.Equal(t, http.StatusCreated, w.Code)
	rec := decodeRecord(t, w)
	assert.Equal(t, domain.OutcomeStepLimit, rec.Outcome)
	assert.Equal(t, runner.DefaultStepLimit, rec.Steps)
	assert.Equal(t, runner.DefaultStepLimit, rec.Position)
}

func TestCreateRun_Timeout(t *testing.T) {
	h, store := newServer(t, turinghttp.WithRunTimeout(time.Nanosecond))

	w := do(t, h, "POST", "/runs", runBody(spinner, "", ""))
	require.Equal(t, http.StatusCreated, w.Code)
	rec := decodeRecord(t, w)
	assert.Equal(t, domain.OutcomeAborted, rec.Outcome)
	assert.Contains(t, rec.Error, context.DeadlineExceeded.Error())

	_, err := store.Load(t.Context(), rec.ID)
	assert.NoError(t, err, "aborted runs are stored")
}

func TestCreateRun_YAMLDefinitionString(t *testing.T) {
	h, _ := newServer(t)
	yaml := "name: yaml\\naccept: 1\\nreject: 2\\nstates:\\n  - id: 0\\n    transitions:\\n      - {read: blank, next: 1}\\n"

	w := do(t, h, "POST", "/runs", `{"definition": "`+yaml+`"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	rec := decodeRecord(t, w)
	assert.Equal(t, "yaml", rec.Machine)
	assert.Equal(t, domain.OutcomeAccepted, rec.Outcome)
}

func TestCreateRun_BadRequests(t *testing.T) {
	h, store := newServer(t)

	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{"malformed json", `{"definition":`, "invalid request body"},
		{"unknown field", `{"definition": {}, "tape": "a"}`, "invalid request body"},
		{"missing definition", `{"input": "a"}`, "definition is required"},
		{"negative limit", runBody(spinner, "", `, "step_limit": -1`), "must not be negative"},
		{"invalid definition", runBody(`{"accept": 1, "states": []}`, "", ""), "invalid definition"},
		{"missing initial state", runBody(`{"accept": 1, "reject": 2, "states": [{"id": 5, "transitions": []}]}`, "", ""), "initial state 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, "POST", "/runs", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}

	ids, err := store.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestCreateRun_ProblemsAreListed(t *testing.T) {
	h, _ := newServer(t)

	w := do(t, h, "POST", "/runs", runBody(`{"states": [{"id": 0, "transitions": [{"read": "ab", "next": 1}]}]}`, "", ""))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error    string   `json:"error"`
		Problems []string `json:"problems"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid definition", resp.Error)
	assert.GreaterOrEqual(t, len(resp.Problems), 3)
}

func TestRuns_GetListDelete(t *testing.T) {
	h, _ := newServer(t)
	do(t, h, "POST", "/runs", runBody(lengthModThree, "aaa", ""))
	do(t, h, "POST", "/runs", runBody(lengthModThree, "a", ""))

	w := do(t, h, "GET", "/runs", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"runs": ["run-a", "run-b"]}`, w.Body.String())

	w = do(t, h, "GET", "/runs/run-b", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.OutcomeRejected, decodeRecord(t, w).Outcome)

	w = do(t, h, "DELETE", "/runs/run-b", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, "GET", "/runs/run-b", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "run run-b not found")
}

func TestValidate(t *testing.T) {
	h, _ := newServer(t)

	w := do(t, h, "POST", "/validate", lengthModThree)
	require.Equal(t, http.StatusOK, w.Code)
	var resp turinghttp.ValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)

	dangling := `{"accept": 1, "reject": 2, "states": [{"id": 0, "transitions": [{"read": "blank", "next": 9}]}]}`
	w = do(t, h, "POST", "/validate", dangling)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	require.NotEmpty(t, resp.Issues)
	assert.Equal(t, string(validator.SeverityError), resp.Issues[0].Severity)

	w = do(t, h, "POST", "/validate", "states: [")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGraph(t *testing.T) {
	h, _ := newServer(t)

	w := do(t, h, "POST", "/graph", lengthModThree)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "graph LR"))
	assert.Contains(t, w.Body.String(), `q0 -- "a,R" --> q1`)
}

func TestMetricsAndHealth(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	require.NoError(t, err)
	h, _ := newServer(t, turinghttp.WithMetrics(metrics, reg))

	do(t, h, "POST", "/runs", runBody(lengthModThree, "aaa", ""))

	w := do(t, h, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `turing_runs_total{machine="http",outcome="accepted"} 1`)

	w = do(t, h, "GET", "/healthz", "")
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestMetrics_MachineNamesDoNotAddSeries(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	require.NoError(t, err)
	h, _ := newServer(t, turinghttp.WithMetrics(metrics, reg))

	for _, name := range []string{"one", "two", "three", "four"} {
		def := strings.Replace(lengthModThree, `"length-mod-3"`, `"`+name+`"`, 1)
		w := do(t, h, "POST", "/runs", runBody(def, "aaa", ""))
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, name, decodeRecord(t, w).Machine)
	}

	assert.Equal(t, 1, testutil.CollectAndCount(metrics.Runs))
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.Runs.WithLabelValues(turinghttp.MetricsLabel, "accepted")))
}

func TestInfo(t *testing.T) {
	h, _ := newServer(t, turinghttp.WithStepLimit(500))

	w := do(t, h, "GET", "/info", "")
	require.Equal(t, http.StatusOK, w.Code)
	var info turinghttp.Info
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "turing-http", info.App)
	assert.Equal(t, "1.0.0", info.ApiVersion)
	assert.Equal(t, 500, info.StepLimit)
}

func TestOpenAPI_DocumentIsServedAndRouted(t *testing.T) {
	swagger, err := turinghttp.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))

	h, _ := newServer(t)
	w := do(t, h, "GET", "/openapi.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"createRun"`)

	routes, ok := h.(chi.Routes)
	require.True(t, ok)
	found := map[string]bool{}
	require.NoError(t, chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		found[method+" "+route] = true
		return nil
	}))
	for path, item := range swagger.Paths.Map() {
		for method := range item.Operations() {
			assert.True(t, found[method+" "+path], "%s %s is not routed", method, path)
		}
	}
}

func TestMetrics_DisabledByDefault(t *testing.T) {
	h, _ := newServer(t)
	w := do(t, h, "GET", "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRun_BodyTooLarge(t *testing.T) {
	h, _ := newServer(t)
	body := bytes.Repeat([]byte("a"), turinghttp.MaxBodyBytes+1)
	w := do(t, h, "POST", "/runs", runBody(lengthModThree, string(body), ""))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
