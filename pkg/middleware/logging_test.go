package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	tests := []struct {
		status    int
		wantLevel zapcore.Level
	}{
		{http.StatusOK, zapcore.InfoLevel},
		{http.StatusNotFound, zapcore.WarnLevel},
		{http.StatusInternalServerError, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		h := chimw.RequestID(RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		})))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/gifts", nil))

		entries := logs.TakeAll()
		if len(entries) != 1 {
			t.Fatalf("status %d: got %d log entries", tt.status, len(entries))
		}
		e := entries[0]
		if e.Level != tt.wantLevel {
			t.Errorf("status %d: level = %v, want %v", tt.status, e.Level, tt.wantLevel)
		}
		fields := e.ContextMap()
		if fields["path"] != "/api/gifts" || fields["status"] != int64(tt.status) {
			t.Errorf("fields = %v", fields)
		}
		if fields["request_id"] == "" {
			t.Error("request id missing")
		}
	}
}
