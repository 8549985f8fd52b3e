package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"review-insights-go/internal/dataset"
	"review-insights-go/internal/export"
	"review-insights-go/internal/logger"
	"review-insights-go/internal/processor"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	fetcher dataset.Fetcher
	builder *processor.Builder
	log     *logger.Logger
	timeout time.Duration
}

func NewHandler(fetcher dataset.Fetcher, builder *processor.Builder, log *logger.Logger, timeout time.Duration) *Handler {
	return &Handler{fetcher: fetcher, builder: builder, log: log, timeout: timeout}
}

// Routes registers /healthz and /review.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.health)
	mux.HandleFunc("/review", h.review)
	return mux
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "ok")
}

type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) review(w http.ResponseWriter, r *http.Request) {
	reqLog := h.log.WithRequest(r).WithField("handler", "review")
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		reqLog.Warn("missing id")
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "missing id"})
		return
	}
	reqLog = reqLog.WithField("review_id", id)

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	start := time.Now()
	env, err := h.fetcher.Fetch(ctx, id)
	if err != nil {
		status := http.StatusBadGateway
		var te *dataset.TransportError
		msg := dataset.FetchFailedMessage
		if errors.As(err, &te) {
			msg = te.Message
			switch {
			case te.Message == dataset.InvalidIDMessage:
				status = http.StatusBadRequest
			case te.StatusCode == http.StatusNotFound:
				status = http.StatusNotFound
			}
		}
		reqLog.WithField("error", err.Error()).Warn("fetch failed")
		writeJSON(w, status, errorBody{Error: msg})
		return
	}

	bundle, err := h.builder.BuildEnvelope(env)
	var mde *processor.MalformedDocumentError
	switch {
	case errors.Is(err, processor.ErrNotReady):
		reqLog.Info("document not ready")
		writeJSON(w, http.StatusAccepted, errorBody{
			Error: "Data Visualization is not yet ready, please wait for a moment then refresh your page.",
		})
		return
	case errors.As(err, &mde):
		reqLog.WithField("field", mde.Field).Error("malformed document")
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: mde.Error()})
		return
	case err != nil:
		reqLog.WithField("error", err.Error()).Error("build failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
		return
	}
	reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).Info("review built")

	if r.URL.Query().Get("format") == "xlsx" {
		var buf bytes.Buffer
		if err := export.WriteWorkbook(&buf, bundle); err != nil {
			reqLog.WithField("error", err.Error()).Error("workbook export failed")
			writeJSON(w, http.StatusInternalServerError, errorBody{Error: "export failed"})
			return
		}
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="review-%s.xlsx"`, id))
		_, _ = w.Write(buf.Bytes())
		return
	}
	writeJSON(w, http.StatusOK, bundle)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
