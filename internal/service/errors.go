package service

import (
	"errors"

	"concierge/internal/model"
)

// Sentinel errors for the assistant pipeline. Handlers match these with
// errors.Is and map them to caller-safe responses; wrapped detail stays in
// server logs only.
var (
	// ErrConfigurationMissing means the generation backend credential is not
	// configured. Operator-actionable, never retried automatically.
	ErrConfigurationMissing = errors.New("generation backend credential not configured")

	// ErrDataUnavailable means the listing store read failed. The assistant
	// must not answer from a fabricated or misleadingly empty inventory.
	ErrDataUnavailable = errors.New("listing store unavailable")

	// ErrBackendError means the generation call was rejected or returned an
	// unusable completion.
	ErrBackendError = errors.New("generation backend request failed")

	// ErrBackendUnavailable means the generation backend could not be reached.
	ErrBackendUnavailable = errors.New("generation backend unreachable")
)

// ErrorCode maps a pipeline error to its wire code
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrConfigurationMissing):
		return model.CodeConfigurationMissing
	case errors.Is(err, ErrDataUnavailable):
		return model.CodeDataUnavailable
	case errors.Is(err, ErrBackendUnavailable):
		return model.CodeBackendUnavailable
	case errors.Is(err, ErrBackendError):
		return model.CodeBackendError
	default:
		return model.CodeBackendError
	}
}
