package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
)

func newBareHandler(log *logger.Logger) *Handler {
	return &Handler{logger: log, traceIDs: utils.NewUUIDGenerator()}
}

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name          string
		incoming      string
		wantSame      bool
		wantGenerated bool
	}{
		{name: "incoming id is reused", incoming: "my-custom-trace-id", wantSame: true},
		{name: "missing id is generated", wantGenerated: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var fromCtx string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fromCtx = utils.GetTraceIDFromContext(r.Context())
				require.NotNil(t, logger.FromRequest(r))
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			newBareHandler(logger.Nop()).withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			assert.Equal(t, got, fromCtx)
			assert.Equal(t, http.StatusTeapot, rr.Code)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
			}
			if tt.wantGenerated {
				id, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), id.Version())
			}
		})
	}
}

func TestWithTraceID_TagsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newBareHandler(&logger.Logger{Logger: zerolog.New(&buf)})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
}

// ---- withLogging ----

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		status   int
		body     string
		contains []string
	}{
		{
			name:     "GET 200 with body",
			method:   http.MethodGet,
			path:     "/api/owners/alice/vaults",
			status:   http.StatusOK,
			body:     "OK",
			contains: []string{`"method":"GET"`, `"uri":"/api/owners/alice/vaults"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name:     "DELETE 202 no body",
			method:   http.MethodDelete,
			path:     "/api/owners/alice/vaults/1",
			status:   http.StatusAccepted,
			contains: []string{`"method":"DELETE"`, `"status":202`, `"size":0`},
		},
		{
			name:     "query is kept",
			method:   http.MethodPost,
			path:     "/api/sessions/s1/mutations?dry_run=true",
			status:   http.StatusOK,
			body:     "{}",
			contains: []string{`"uri":"/api/sessions/s1/mutations?dry_run=true"`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
			rr := httptest.NewRecorder()
			newBareHandler(logger.Nop()).withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

// ---- responseWriter ----

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, err := w.Write([]byte("first"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusInternalServerError)
	_, err = w.Write([]byte("second"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status, "Write implies 200, later WriteHeader is ignored")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, len("firstsecond"), w.size)
	assert.Same(t, rr, w.Unwrap())
}

// ---- CheckHTTPMethod ----

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Delete("/api/owners/{owner}/vaults", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/api/version", http.StatusOK},
		{http.MethodPost, "/api/version", http.StatusNotFound},
		{http.MethodDelete, "/api/owners/alice/vaults", http.StatusNoContent},
		{http.MethodGet, "/api/owners/alice/vaults", http.StatusNotFound},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}
