package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nikm-ai/prompt-engineering-optimization/internal/config"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/export"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/logger"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/prompts"
)

var fixedTime = time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)

func fixedBuilder() *prompts.Builder {
	return prompts.NewBuilder(prompts.WithClock(prompts.ClockFunc(func() time.Time {
		return fixedTime
	})))
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(fixedBuilder(), config.DefaultPreferences(), logger.Nop())
}

func do(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()

	newTestServer(t).ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRender(t *testing.T) {
	srv := newTestServer(t)
	body := `{
		"task": "Write a launch announcement.",
		"persona": "a product marketer",
		"audience": "existing customers",
		"tone": "Friendly",
		"enforce_json": true,
		"json_fields": ["title", "summary"],
		"variables": [{"key": "product", "value": "Acme"}]
	}`

	rec := do(t, srv, http.MethodPost, "/v1/render", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp RenderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	cfg := prompts.Configuration{
		RawTask:           "Write a launch announcement.",
		Persona:           "a product marketer",
		Audience:          "existing customers",
		Tone:              "Friendly",
		EnforceJSONOutput: true,
		JSONFields:        []string{"title", "summary"},
		Variables:         prompts.Variables{{Key: "product", Value: "Acme"}},
	}
	want := srv.builder.Build(cfg)

	assert.Equal(t, want, resp.Document)
	assert.Contains(t, resp.Document, "- Date: 2024-03-09 14:05 UTC\n")
	assert.Equal(t, prompts.EstimateTokens(want), resp.Tokens)
	assert.Equal(t, prompts.Analyze(cfg.RawTask), resp.Advisories)
}

func TestRenderBadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "malformed", body: "{"},
		{name: "wrong type", body: `{"must_have": "not a list"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(t), http.MethodPost, "/v1/render", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var payload map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
			assert.NotEmpty(t, payload["error"])
		})
	}
}

func TestRenderDownload(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/v1/render/download", `{"task": "Plan a trip."}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="optimized_prompt.txt"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, srv.builder.Build(prompts.Configuration{RawTask: "Plan a trip."}), rec.Body.String())
}

func TestAdvise(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/v1/advise", `{"task": "Hi"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AdviseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{
		prompts.AdviceExpandedShort,
		prompts.AdviceClarified,
		prompts.AdviceJSONSchema,
		prompts.AdviceQuality,
	}, resp.Advisories)
}

func TestSchema(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/v1/schema", `{"fields": ["title", "steps"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SchemaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, prompts.GenerateSchema([]string{"title", "steps"}), resp.Schema)
}

func TestSchemaCleansFieldNames(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/v1/schema", `{"fields": ["", " title ", "  ", "steps"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SchemaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, prompts.GenerateSchema([]string{"title", "steps"}), resp.Schema)
	assert.NotContains(t, resp.Schema, `"": {`)
}

func TestOptionsAndDefaults(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/v1/options", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var sets []config.OptionSet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sets))
	require.Len(t, sets, len(config.OptionSets))
	assert.Equal(t, "goal", sets[0].Field)

	rec = do(t, srv, http.MethodGet, "/v1/defaults", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var defaults prompts.Configuration
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &defaults))
	assert.Equal(t, config.DefaultPreferences(), defaults)
}

func TestUnknownRoute(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, newTestServer(t), http.MethodGet, "/v1/render", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- newTestServer(t).ListenAndServe(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestAdvisoriesNeverEmpty(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/v1/advise", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AdviseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Advisories)
	assert.Equal(t, prompts.AdviceQuality, resp.Advisories[len(resp.Advisories)-1])
}

func TestRequestLogLevels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}
	srv := New(fixedBuilder(), config.DefaultPreferences(), log)

	do(t, srv, http.MethodGet, "/healthz", "")
	do(t, srv, http.MethodPost, "/v1/render", "{")

	requests := logs.FilterMessage("HTTP request").All()
	require.Len(t, requests, 2)

	assert.Equal(t, zapcore.InfoLevel, requests[0].Level)
	assert.Equal(t, int64(http.StatusOK), requests[0].ContextMap()["status"])
	assert.NotEmpty(t, requests[0].ContextMap()["request_id"])

	assert.Equal(t, zapcore.WarnLevel, requests[1].Level)
	assert.Equal(t, int64(http.StatusBadRequest), requests[1].ContextMap()["status"])
}
