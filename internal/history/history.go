// Package history records every call the CLI makes to the API, so past
// requests and their raw responses can be listed later.
package history

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/picatz/gpt3/internal/history/storage"
	"github.com/segmentio/ksuid"
)

// DefaultPath is the default location of the on-disk history database.
//
// On Unix-like systems it lives under $HOME, and on Windows under %USERPROFILE%.
var DefaultPath = cmp.Or(os.Getenv("HOME"), os.Getenv("USERPROFILE")) + "/.gpt3-cli-history"

// Record is a single request and its outcome.
type Record struct {
	Method     string          `json:"method"`
	URL        string          `json:"url"`
	Request    json.RawMessage `json:"request,omitempty"`
	StatusCode int             `json:"status_code,omitempty"`
	Response   json.RawMessage `json:"response,omitempty"`
	Error      string          `json:"error,omitempty"`
	Duration   time.Duration   `json:"duration"`
	Time       time.Time       `json:"time"`
}

// rawJSON returns b unchanged when it is valid JSON, and as a JSON string
// otherwise, so every body can be stored in a Record.
func rawJSON(b []byte) json.RawMessage {
	if len(b) == 0 {
		return nil
	}
	if json.Valid(b) {
		return json.RawMessage(b)
	}
	s, _ := json.Marshal(string(b))
	return s
}

// Recorder stores records under keys made of the record's time in
// nanoseconds and a K-Sortable Unique IDentifier (KSUID), so listing the
// backend yields them oldest first. KSUIDs alone only sort to the second.
type Recorder struct {
	backend storage.Backend[string, Record]
}

// NewRecorder returns a Recorder that stores records in the given backend.
func NewRecorder(backend storage.Backend[string, Record]) *Recorder {
	return &Recorder{backend: backend}
}

// Add stores a record and returns its key.
func (r *Recorder) Add(ctx context.Context, rec Record) (string, error) {
	if rec.Time.IsZero() {
		rec.Time = time.Now()
	}

	key := fmt.Sprintf("%019d-%s", rec.Time.UnixNano(), ksuid.New())
	if err := r.backend.Set(ctx, key, rec); err != nil {
		return "", fmt.Errorf("failed to save record: %w", err)
	}

	return key, nil
}

// Get returns the record stored under key.
func (r *Recorder) Get(ctx context.Context, key string) (Record, bool, error) {
	return r.backend.Get(ctx, key)
}

// List returns a page of records, oldest first.
func (r *Recorder) List(ctx context.Context, pageSize *int, pageToken *string) (iter.Seq2[string, Record], *string, error) {
	return r.backend.List(ctx, pageSize, pageToken)
}

// Transport is an [net/http.RoundTripper] that saves every request it
// executes, along with its response, to a Recorder. Headers are never
// recorded, so the API key does not end up on disk.
//
// Failing to save a record is logged, and never fails the request.
type Transport struct {
	Base     http.RoundTripper
	Recorder *Recorder
	Logger   *slog.Logger
}

// NewTransport returns a Transport that records to recorder, sending
// requests through base, or http.DefaultTransport when base is nil.
func NewTransport(base http.RoundTripper, recorder *Recorder, logger *slog.Logger) *Transport {
	return &Transport{
		Base:     cmp.Or[http.RoundTripper](base, http.DefaultTransport),
		Recorder: recorder,
		Logger:   cmp.Or(logger, slog.Default()),
	}
}

// RoundTrip implements the [net/http.RoundTripper] interface.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqBody, req, err := peekRequestBody(req)
	if err != nil {
		return nil, err
	}

	rec := Record{
		Method:  req.Method,
		URL:     req.URL.String(),
		Request: rawJSON(reqBody),
		Time:    time.Now(),
	}

	resp, err := t.Base.RoundTrip(req)
	rec.Duration = time.Since(rec.Time)

	if err != nil {
		rec.Error = err.Error()
		t.save(req.Context(), rec)
		return nil, err
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(respBody))

	rec.StatusCode = resp.StatusCode
	rec.Response = rawJSON(respBody)
	t.save(req.Context(), rec)

	return resp, nil
}

func (t *Transport) save(ctx context.Context, rec Record) {
	// The request context may already be done, but the record should still land.
	if _, err := t.Recorder.Add(context.WithoutCancel(ctx), rec); err != nil {
		t.Logger.WarnContext(ctx, "failed to record request", slog.String("url", rec.URL), slog.String("error", err.Error()))
	}
}

// peekRequestBody returns the body of req, and a request that can still be
// sent with that body. The given request is never modified.
func peekRequestBody(req *http.Request) ([]byte, *http.Request, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, req, nil
	}

	if req.GetBody != nil {
		rc, err := req.GetBody()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get request body: %w", err)
		}
		defer rc.Close()

		b, err := io.ReadAll(rc)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read request body: %w", err)
		}
		return b, req, nil
	}

	b, err := io.ReadAll(req.Body)
	req.Body.Close()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read request body: %w", err)
	}

	clone := req.Clone(req.Context())
	clone.Body = io.NopCloser(bytes.NewReader(b))
	return b, clone, nil
}
