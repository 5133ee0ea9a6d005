package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/bet-hub/internal/domain/provider"
	"github.com/riskibarqy/bet-hub/internal/platform/docstore"
	"github.com/riskibarqy/bet-hub/internal/usecase"
)

func TestWriteSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_ErrorIsString(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	msg, ok := body["error"].(string)
	if !ok || msg != "invalid input: bad payload" {
		t.Fatalf("expected string error message, got %v", body["error"])
	}
	if got, _ := body["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected status INVALID_ARGUMENT, got %v", body["status"])
	}
	if got, _ := body["reason"].(string); got != "invalidInput" {
		t.Fatalf("expected reason invalidInput, got %v", body["reason"])
	}
}

func TestWriteError_HidesStoreDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, &docstore.StoreError{Op: "get", Path: "leagues/L1", Err: errors.New("connection refused")})

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if rec.Code != http.StatusInternalServerError || body["error"] != "internal server error" {
		t.Fatalf("unexpected response %d %v", rec.Code, body)
	}
}

func TestMapError(t *testing.T) {
	upstream := &provider.UpstreamError{Provider: "sleeper", StatusCode: 502, URL: "https://api.sleeper.app/v1/league/1/rosters"}

	tests := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{name: "invalid input", err: fmt.Errorf("%w: x", usecase.ErrInvalidInput), status: http.StatusBadRequest, reason: "invalidInput"},
		{name: "not found", err: fmt.Errorf("%w: league", usecase.ErrNotFound), status: http.StatusNotFound, reason: "notFound"},
		{
			name:   "not implemented inside import error",
			err:    &usecase.ImportError{Provider: "espn", Stage: usecase.ImportStageFetch, Err: &provider.NotImplementedError{Provider: "espn", Reason: "later"}},
			status: http.StatusNotImplemented,
			reason: "notImplemented",
		},
		{name: "breaker open", err: fmt.Errorf("%w: sleeper", usecase.ErrDependencyUnavailable), status: http.StatusServiceUnavailable, reason: "dependencyUnavailable"},
		{
			name:   "upstream failure",
			err:    &usecase.ImportError{Provider: "sleeper", Stage: usecase.ImportStageFetch, Err: upstream},
			status: http.StatusInternalServerError,
			reason: "importFailed",
		},
		{name: "store failure", err: &docstore.StoreError{Op: "commit", Err: errors.New("boom")}, status: http.StatusInternalServerError, reason: "internalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			if got.HTTPStatus != tt.status || got.Reason != tt.reason {
				t.Fatalf("mapError(%v) = %d/%s, want %d/%s", tt.err, got.HTTPStatus, got.Reason, tt.status, tt.reason)
			}
		})
	}
}
