package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"review-insights-go/internal/logger"
	"review-insights-go/internal/types"
)

// HTTPFetcher reads envelopes from GET <base>/data/?id=<id>. 5xx responses
// and network errors are retried with exponential backoff.
type HTTPFetcher struct {
	base       string
	client     *http.Client
	maxElapsed time.Duration
	log        *logrus.Entry
}

// NewHTTPFetcher logs through log; a nil log discards output.
func NewHTTPFetcher(baseURL string, timeout, maxElapsed time.Duration, log *logrus.Entry) *HTTPFetcher {
	if log == nil {
		log = logger.NewWithOptions(logger.Options{Output: io.Discard}).Entry
	}
	return &HTTPFetcher{
		base:       strings.TrimRight(baseURL, "/"),
		client:     &http.Client{Timeout: timeout},
		maxElapsed: maxElapsed,
		log:        log.WithField("component", "dataset.http"),
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, requestID string) (types.Envelope, error) {
	id, err := validateID(requestID)
	if err != nil {
		return types.Envelope{}, err
	}
	u, err := url.Parse(f.base + "/data/")
	if err != nil {
		return types.Envelope{}, &TransportError{Message: FetchFailedMessage, Err: err}
	}
	q := u.Query()
	q.Set("id", id)
	u.RawQuery = q.Encode()

	log := f.log.WithField("request_id", id)
	var env types.Envelope
	var status int
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return backoff.Permanent(&TransportError{Message: FetchFailedMessage, Err: err})
		}
		resp, err := f.client.Do(req)
		if err != nil {
			log.WithField("error", err.Error()).Warn("document fetch failed")
			return &TransportError{Message: FetchFailedMessage, Err: err}
		}
		defer resp.Body.Close()
		status = resp.StatusCode
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return &TransportError{Message: FetchFailedMessage, StatusCode: status, Err: err}
		}
		if status >= 500 {
			log.WithField("status", status).Warn("upstream server error")
			return &TransportError{Message: upstreamMessage(body, status), StatusCode: status}
		}
		if status >= 300 {
			return backoff.Permanent(&TransportError{Message: upstreamMessage(body, status), StatusCode: status})
		}
		env = types.Envelope{}
		if err := json.Unmarshal(body, &env); err != nil {
			return backoff.Permanent(&TransportError{
				Message:    FetchFailedMessage,
				StatusCode: status,
				Err:        fmt.Errorf("json decode error: %w", err),
			})
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = f.maxElapsed
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		var te *TransportError
		if !errors.As(err, &te) {
			err = &TransportError{Message: FetchFailedMessage, Err: err}
		}
		log.WithField("error", err.Error()).Error("document fetch gave up")
		return types.Envelope{}, err
	}
	log.WithField("ready", env.Ready).Debug("document fetched")
	return checkEnvelope(env, status)
}

// upstreamMessage prefers the {"error": "..."} body the upstream sends.
func upstreamMessage(body []byte, status int) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return fmt.Sprintf("upstream returned %d", status)
}
