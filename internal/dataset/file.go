package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"review-insights-go/internal/types"
)

// FileFetcher reads <dir>/<id>.json. It is used for local runs and demos.
type FileFetcher struct {
	dir string
}

func NewFileFetcher(dir string) *FileFetcher {
	return &FileFetcher{dir: dir}
}

func (f *FileFetcher) Fetch(ctx context.Context, requestID string) (types.Envelope, error) {
	id, err := validateID(requestID)
	if err != nil {
		return types.Envelope{}, err
	}
	if err := ctx.Err(); err != nil {
		return types.Envelope{}, &TransportError{Message: FetchFailedMessage, Err: err}
	}
	data, err := os.ReadFile(filepath.Join(f.dir, id+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return types.Envelope{}, &TransportError{Message: "document not found", StatusCode: http.StatusNotFound, Err: err}
	}
	if err != nil {
		return types.Envelope{}, &TransportError{Message: FetchFailedMessage, Err: err}
	}
	var env types.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return types.Envelope{}, &TransportError{Message: FetchFailedMessage, Err: fmt.Errorf("json decode error: %w", err)}
	}
	return checkEnvelope(env, 0)
}
