package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/bet-hub/internal/domain/provider"
	"github.com/riskibarqy/bet-hub/internal/usecase"
)

const apiVersion = "2.0"

type successEnvelope struct {
	APIVersion string `json:"apiVersion"`
	Data       any    `json:"data"`
}

// errorEnvelope keeps error a plain string so clients can print it as is.
type errorEnvelope struct {
	APIVersion string `json:"apiVersion"`
	Error      string `json:"error"`
	Status     string `json:"status"`
	Reason     string `json:"reason"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, successEnvelope{
		APIVersion: apiVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)
	message := err.Error()
	if mapped.HTTPStatus == http.StatusInternalServerError && !exposeInternal(err) {
		message = "internal server error"
	}

	writeJSON(ctx, w, mapped.HTTPStatus, errorEnvelope{
		APIVersion: apiVersion,
		Error:      message,
		Status:     mapped.Status,
		Reason:     mapped.Reason,
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope{
		APIVersion: apiVersion,
		Error:      "internal server error",
		Status:     "INTERNAL",
		Reason:     "internalError",
	})
}

// exposeInternal reports whether a 5xx message is safe to return. Import and
// upstream failures carry provider context the caller needs; store errors do
// not.
func exposeInternal(err error) bool {
	var importErr *usecase.ImportError
	var upstreamErr *provider.UpstreamError
	return errors.As(err, &importErr) || errors.As(err, &upstreamErr)
}

func mapError(err error) mappedError {
	var notImplemented *provider.NotImplementedError

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidInput",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "notFound",
			Status:     "NOT_FOUND",
		}
	case errors.As(err, &notImplemented):
		return mappedError{
			HTTPStatus: http.StatusNotImplemented,
			Reason:     "notImplemented",
			Status:     "UNIMPLEMENTED",
		}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{
			HTTPStatus: http.StatusServiceUnavailable,
			Reason:     "dependencyUnavailable",
			Status:     "UNAVAILABLE",
		}
	default:
		var importErr *usecase.ImportError
		if errors.As(err, &importErr) {
			return mappedError{
				HTTPStatus: http.StatusInternalServerError,
				Reason:     "importFailed",
				Status:     "INTERNAL",
			}
		}
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Reason:     "internalError",
			Status:     "INTERNAL",
		}
	}
}
