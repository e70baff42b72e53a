package model

import (
	"time"

	"github.com/google/uuid"
)

// Error codes returned to programmatic callers alongside the human-readable text
const (
	CodeMalformedInput       = "MalformedInput"
	CodeConfigurationMissing = "ConfigurationMissing"
	CodeDataUnavailable      = "DataUnavailable"
	CodeBackendError         = "BackendError"
	CodeBackendUnavailable   = "BackendUnavailable"
)

// ChatRequest represents an assistant message request
type ChatRequest struct {
	Message string     `json:"message" binding:"required"`
	History []ChatTurn `json:"history,omitempty" binding:"omitempty,dive"`
}

// ChatTurn is one entry of the client-held transcript. Accepted for
// forward-compatibility; each request is grounded independently of it.
type ChatTurn struct {
	Role string `json:"role" binding:"omitempty,oneof=user assistant"`
	Text string `json:"text"`
}

// ChatResponse represents a successful assistant reply
type ChatResponse struct {
	Text string `json:"text"`
}

// ChatErrorResponse is the single failure shape of the assistant endpoint.
// Text is always caller-safe; Code distinguishes operator-actionable
// configuration defects from transient failures the caller may retry.
type ChatErrorResponse struct {
	Text string `json:"text"`
	Code string `json:"code,omitempty"`
}

// ConversationRecord captures one completed assistant exchange for the
// server-side log. The client transcript itself never reaches the server.
type ConversationRecord struct {
	ID        uuid.UUID `db:"id"`
	Message   string    `db:"message"`
	Reply     string    `db:"reply"`
	Outcome   string    `db:"outcome"` // "ok" or an error code
	TookMS    int64     `db:"took_ms"`
	CreatedAt time.Time `db:"created_at"`
}
