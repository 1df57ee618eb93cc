package domain

import (
	"time"

	"github.com/google/uuid"
)

// URLCheck is one persisted check of a single URL within a batch.
// StatusCode and ResponseTime are pointers so that "no response received"
// serializes as null rather than zero.
type URLCheck struct {
	ID           int64     `json:"id"`
	URL          string    `json:"url"`
	BatchID      uuid.UUID `json:"batch_id"`
	StatusCode   *int      `json:"status_code"`
	ResponseTime *float64  `json:"response_time"`
	IsReachable  bool      `json:"is_reachable"`
	ErrorMessage string    `json:"error_message"`
	CheckedAt    time.Time `json:"checked_at"`
}

// Completed reports whether the check has reached a terminal state:
// either a response arrived (status code set) or a classified failure
// was recorded.
func (c *URLCheck) Completed() bool {
	return c.StatusCode != nil || c.ErrorMessage != ""
}

// CheckOutcome holds the result fields written onto a URLCheck when a
// probe attempt finishes. It is also the value stored in the result cache.
type CheckOutcome struct {
	StatusCode   *int     `json:"status_code"`
	ResponseTime *float64 `json:"response_time"`
	IsReachable  bool     `json:"is_reachable"`
	ErrorMessage string   `json:"error_message"`
}

// OutcomeKind is the closed set of probe classifications.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeTimeout
	OutcomeTLS
	OutcomeDNS
	OutcomeConnRefused
	OutcomeConnFailed
	OutcomeTooManyRedirects
	OutcomeRequestFailed
	OutcomeUnexpected
)

// Outcome is the classified result of a single probe. Kind drives worker
// behavior; only OutcomeUnexpected is retryable. Cause carries the
// underlying error for the unexpected case and is nil otherwise.
type Outcome struct {
	Kind  OutcomeKind
	CheckOutcome
	Cause error
}

// Retryable reports whether the whole worker invocation should be retried.
func (o Outcome) Retryable() bool {
	return o.Kind == OutcomeUnexpected
}

type BatchStatus struct {
	Total       int     `json:"total"`
	Completed   int     `json:"completed"`
	Pending     int     `json:"pending"`
	SuccessRate float64 `json:"success_rate"`
}

type CheckURLsRequest struct {
	URLs []string `json:"urls"`
}

type CheckURLsResponse struct {
	BatchID uuid.UUID  `json:"batch_id"`
	Message string     `json:"message"`
	URLs    []URLCheck `json:"urls"`
}
