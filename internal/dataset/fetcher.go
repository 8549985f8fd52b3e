package dataset

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"review-insights-go/internal/types"
)

// FetchFailedMessage is shown when the upstream could not be reached at all.
const FetchFailedMessage = "fetch failed, please refresh the page and try again."

const InvalidIDMessage = "invalid request id"

// Fetcher supplies the raw review envelope for one request id.
type Fetcher interface {
	Fetch(ctx context.Context, requestID string) (types.Envelope, error)
}

// TransportError is any failure to obtain a document. Message is safe to
// show to the end user.
type TransportError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport: %s: %v", e.Message, e.Err)
	}
	return "transport: " + e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func validateID(requestID string) (string, error) {
	id, err := uuid.Parse(requestID)
	if err != nil {
		return "", &TransportError{Message: InvalidIDMessage, Err: err}
	}
	return id.String(), nil
}

// checkEnvelope turns an upstream {error} payload into a TransportError.
func checkEnvelope(env types.Envelope, status int) (types.Envelope, error) {
	if env.Error != "" {
		return types.Envelope{}, &TransportError{Message: env.Error, StatusCode: status}
	}
	return env, nil
}
