package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestInternalErrorDetails(t *testing.T) {
	tests := []struct {
		name        string
		expose      bool
		wantDetails string
	}{
		{name: "development exposes details", expose: true, wantDetails: "connection refused"},
		{name: "production hides details", expose: false, wantDetails: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ExposeErrorDetails(tt.expose)
			defer ExposeErrorDetails(false)

			rec := httptest.NewRecorder()
			InternalError(rec, "Failed to list gifts", errors.New("connection refused"))

			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("status: got %d", rec.Code)
			}

			var body ErrorBody
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Success {
				t.Error("expected success=false")
			}
			if body.Error != "Failed to list gifts" {
				t.Errorf("error: got %q", body.Error)
			}
			if body.Details != tt.wantDetails {
				t.Errorf("details: got %q, want %q", body.Details, tt.wantDetails)
			}
		})
	}
}

func TestBadRequestShape(t *testing.T) {
	rec := httptest.NewRecorder()
	BadRequest(rec, "Gift title is required")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "Gift title is required" {
		t.Errorf("error: got %v", body["error"])
	}
	if _, ok := body["details"]; ok {
		t.Error("details must be omitted")
	}
}
