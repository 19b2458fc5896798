package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging_WritesAccessEntry(t *testing.T) {
	var buf bytes.Buffer
	h, _ := newTestHandler(t)
	h.logger = logger.NewCLILogger("test", "debug", &buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/data/nexus?x=1", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))

	assert.Equal(t, "/api/data/nexus?x=1", entry["uri"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, float64(len("short and stout")), entry["size"])
	assert.Equal(t, "trace-123", entry["trace_id"])
}

func TestWithLogging_ImplicitStatusOK(t *testing.T) {
	var buf bytes.Buffer
	h, _ := newTestHandler(t)
	h.logger = logger.NewCLILogger("test", "debug", &buf)

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, float64(0), entry["size"])
}
