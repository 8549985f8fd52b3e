package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testID = "5f0c6a8e-2d7c-4a0e-9f64-0d5b7b8f2a11"

const readyBody = `{"id":"` + testID + `","ready":true,"takeout":{"topic":[{"categoryName":"Music","watchTimes1":3}]}}`

func requireTransportError(t *testing.T, err error) *TransportError {
	t.Helper()
	var te *TransportError
	require.True(t, errors.As(err, &te), "want *TransportError, got %T: %v", err, err)
	return te
}

func TestHTTPFetcherSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/", r.URL.Path)
		assert.Equal(t, testID, r.URL.Query().Get("id"))
		fmt.Fprint(w, readyBody)
	}))
	defer srv.Close()

	env, err := NewHTTPFetcher(srv.URL+"/", time.Second, time.Second, nil).Fetch(context.Background(), testID)
	require.NoError(t, err)
	require.True(t, env.Ready)
	require.NotNil(t, env.Takeout)
	require.Equal(t, "Music", env.Takeout.Topics[0].CategoryName)
}

func TestHTTPFetcherRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, readyBody)
	}))
	defer srv.Close()

	env, err := NewHTTPFetcher(srv.URL, time.Second, 10*time.Second, nil).Fetch(context.Background(), testID)
	require.NoError(t, err)
	require.True(t, env.Ready)
	require.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestHTTPFetcherClientErrorIsPermanent(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"no review for this id"}`)
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(srv.URL, time.Second, 5*time.Second, nil).Fetch(context.Background(), testID)
	te := requireTransportError(t, err)
	require.Equal(t, "no review for this id", te.Message)
	require.Equal(t, http.StatusNotFound, te.StatusCode)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestHTTPFetcherEnvelopeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":"takeout archive corrupted"}`)
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(srv.URL, time.Second, time.Second, nil).Fetch(context.Background(), testID)
	require.Equal(t, "takeout archive corrupted", requireTransportError(t, err).Message)
}

func TestHTTPFetcherUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := NewHTTPFetcher(addr, 200*time.Millisecond, 300*time.Millisecond, nil).Fetch(context.Background(), testID)
	require.Equal(t, FetchFailedMessage, requireTransportError(t, err).Message)
}

func TestHTTPFetcherInvalidID(t *testing.T) {
	_, err := NewHTTPFetcher("http://unused", time.Second, time.Second, nil).Fetch(context.Background(), "../../etc/passwd")
	require.Equal(t, "invalid request id", requireTransportError(t, err).Message)
}

func TestFileFetcher(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, testID+".json"), []byte(readyBody), 0o600))
	f := NewFileFetcher(dir)

	env, err := f.Fetch(context.Background(), testID)
	require.NoError(t, err)
	require.True(t, env.Ready)
	require.Equal(t, testID, env.ID)

	_, err = f.Fetch(context.Background(), "9b2d8a54-0c1f-4c4e-8d55-2f1f7b3d9e00")
	te := requireTransportError(t, err)
	require.Equal(t, "document not found", te.Message)
	require.Equal(t, http.StatusNotFound, te.StatusCode)

	_, err = f.Fetch(context.Background(), "not-a-uuid")
	require.Equal(t, "invalid request id", requireTransportError(t, err).Message)
}

func TestFileFetcherBadJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, testID+".json"), []byte("{"), 0o600))

	_, err := NewFileFetcher(dir).Fetch(context.Background(), testID)
	te := requireTransportError(t, err)
	require.Equal(t, FetchFailedMessage, te.Message)
	require.Contains(t, te.Error(), "json decode error")
}

func TestFileFetcherCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFileFetcher(t.TempDir()).Fetch(ctx, testID)
	require.ErrorIs(t, err, context.Canceled)
}

func TestHTTPFetcherUsesInjectedLogger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	log := logrus.NewEntry(l).WithField("service", "review-insights-go")

	_, err := NewHTTPFetcher(srv.URL, time.Second, time.Second, log).Fetch(context.Background(), testID)
	require.Error(t, err)
	require.Contains(t, buf.String(), `"component":"dataset.http"`)
	require.Contains(t, buf.String(), `"service":"review-insights-go"`)
	require.Contains(t, buf.String(), "document fetch gave up")
}
