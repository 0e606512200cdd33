package gpt3_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/picatz/gpt3"
	"github.com/shoenig/test/must"
)

// recordedRequest is what the test server saw of a single request.
type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// testServer is an [net/http/httptest.Server] that records every request it
// receives and answers with a fixed status code and body.
type testServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newTestServer(t *testing.T, status int, body string) *testServer {
	t.Helper()

	ts := &testServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("failed to read request body: %v", err)
		}

		ts.mu.Lock()
		ts.requests = append(ts.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   b,
		})
		ts.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(ts.Close)

	return ts
}

func (ts *testServer) Requests() []recordedRequest {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return append([]recordedRequest(nil), ts.requests...)
}

func (ts *testServer) client(opts ...gpt3.ClientOption) *gpt3.Client {
	return gpt3.NewClient("test-key", append([]gpt3.ClientOption{gpt3.WithBaseURL(ts.URL)}, opts...)...)
}

// decodeBody unmarshals a recorded JSON request body into a generic map.
func decodeBody(t *testing.T, b []byte) map[string]any {
	t.Helper()

	var m map[string]any
	must.NoError(t, json.Unmarshal(b, &m))
	return m
}

func TestDo_headers(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	c := ts.client(gpt3.WithOrganization("org-123"))

	_, err := c.Do(t.Context(), http.MethodGet, ts.URL+"/v1/engines", nil)
	must.NoError(t, err)

	reqs := ts.Requests()
	must.Len(t, 1, reqs)
	must.Eq(t, "Bearer test-key", reqs[0].Header.Get("Authorization"))
	must.Eq(t, "application/json", reqs[0].Header.Get("Content-Type"))
	must.Eq(t, "org-123", reqs[0].Header.Get("OpenAI-Organization"))
}

func TestDo_body(t *testing.T) {
	tests := []struct {
		name string
		body any
		want map[string]any
	}{
		{
			name: "nil body",
			body: nil,
		},
		{
			name: "empty options",
			body: gpt3.Options{},
		},
		{
			name: "empty struct",
			body: &gpt3.CompletionRequest{Engine: "ada"},
		},
		{
			name: "nil struct",
			body: (*gpt3.CompletionRequest)(nil),
		},
		{
			name: "options are snake cased",
			body: gpt3.Options{"maxTokens": 5, "topP": 0.9, "n": 3},
			want: map[string]any{"max_tokens": 5.0, "top_p": 0.9, "n": 3.0},
		},
		{
			name: "plain maps are snake cased",
			body: map[string]any{"bestOf": 2},
			want: map[string]any{"best_of": 2.0},
		},
		{
			name: "structs use their tags",
			body: &gpt3.CompletionRequest{Engine: "ada", MaxTokens: 5, TopP: gpt3.Float64(0.9)},
			want: map[string]any{"max_tokens": 5.0, "top_p": 0.9},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ts := newTestServer(t, http.StatusOK, `{}`)
			c := ts.client()

			_, err := c.Do(t.Context(), http.MethodPost, ts.URL+"/v1/answers", test.body)
			must.NoError(t, err)

			reqs := ts.Requests()
			must.Len(t, 1, reqs)

			if test.want == nil {
				must.Len(t, 0, reqs[0].Body)
				return
			}

			must.Eq(t, test.want, decodeBody(t, reqs[0].Body))
		})
	}
}

func TestDo_getIgnoresBody(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	c := ts.client()

	_, err := c.Do(t.Context(), http.MethodGet, ts.URL+"/v1/engines", gpt3.Options{"maxTokens": 5})
	must.NoError(t, err)

	reqs := ts.Requests()
	must.Len(t, 1, reqs)
	must.Eq(t, http.MethodGet, reqs[0].Method)
	must.Len(t, 0, reqs[0].Body)
}

func TestDo_keyCollision(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	c := ts.client()

	_, err := c.Do(t.Context(), http.MethodPost, ts.URL+"/v1/answers", gpt3.Options{
		"maxTokens":  5,
		"max_tokens": 6,
	})
	must.ErrorIs(t, err, gpt3.ErrKeyCollision)
	must.Len(t, 0, ts.Requests())
}

func TestDo_passesResponseThrough(t *testing.T) {
	const body = `{"id":"cmpl-1","choices":[{"text":" moon","index":0}],"unknown":true}`

	ts := newTestServer(t, http.StatusOK, body)
	c := ts.client()

	resp, err := c.Complete(t.Context(), &gpt3.CompletionRequest{Prompt: []string{"The cow jumped over the"}})
	must.NoError(t, err)
	must.Eq(t, http.StatusOK, resp.StatusCode)
	must.Eq(t, body, string(resp.Body))

	var completion gpt3.CompletionResponse
	must.NoError(t, resp.Decode(&completion))
	must.Eq(t, "cmpl-1", completion.ID)
	must.Eq(t, " moon", completion.Choices[0].Text)
}

func TestDo_statusError(t *testing.T) {
	const body = `{"error":{"message":"No such engine"}}`

	ts := newTestServer(t, http.StatusNotFound, body)
	c := ts.client()

	resp, err := c.Engine(t.Context(), "nope")
	must.Error(t, err)
	must.Nil(t, resp)

	var statusErr *gpt3.StatusError
	must.True(t, errors.As(err, &statusErr))
	must.Eq(t, http.StatusNotFound, statusErr.StatusCode)
	must.Eq(t, body, string(statusErr.Body))
	must.StrContains(t, err.Error(), "404")

	// No retries.
	must.Len(t, 1, ts.Requests())
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestDo_transportError(t *testing.T) {
	errBoom := errors.New("boom")

	calls := 0
	httpClient := &http.Client{
		Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			calls++
			return nil, errBoom
		}),
	}

	c := gpt3.NewClient("test-key", gpt3.WithHTTPClient(httpClient))

	_, err := c.Complete(t.Context(), nil)
	must.ErrorIs(t, err, errBoom)
	must.Eq(t, 1, calls)
}

func TestComplete(t *testing.T) {
	t.Run("default engine", func(t *testing.T) {
		ts := newTestServer(t, http.StatusOK, `{}`)
		c := ts.client()

		_, err := c.Complete(t.Context(), &gpt3.CompletionRequest{})
		must.NoError(t, err)

		reqs := ts.Requests()
		must.Len(t, 1, reqs)
		must.Eq(t, http.MethodPost, reqs[0].Method)
		must.Eq(t, "/v1/engines/davinci/completions", reqs[0].Path)
		must.Len(t, 0, reqs[0].Body)
	})

	t.Run("nil request", func(t *testing.T) {
		ts := newTestServer(t, http.StatusOK, `{}`)
		c := ts.client()

		_, err := c.Complete(t.Context(), nil)
		must.NoError(t, err)
		must.Eq(t, "/v1/engines/davinci/completions", ts.Requests()[0].Path)
	})

	t.Run("engine is not sent in the body", func(t *testing.T) {
		ts := newTestServer(t, http.StatusOK, `{}`)
		c := ts.client()

		req := &gpt3.CompletionRequest{
			Engine:    gpt3.EngineCurieInstructBeta,
			Prompt:    []string{"Say this is a test"},
			MaxTokens: 5,
		}

		_, err := c.Complete(t.Context(), req)
		must.NoError(t, err)

		reqs := ts.Requests()
		must.Eq(t, "/v1/engines/curie-instruct-beta/completions", reqs[0].Path)
		must.Eq(t, map[string]any{
			"prompt":     []any{"Say this is a test"},
			"max_tokens": 5.0,
		}, decodeBody(t, reqs[0].Body))

		// The caller's request is left as it was.
		must.Eq(t, gpt3.EngineCurieInstructBeta, req.Engine)
	})
}

func TestSearch(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{"object":"list","data":[{"document":0,"score":215.4}]}`)
	c := ts.client()

	resp, err := c.Search(t.Context(), &gpt3.SearchRequest{
		Query:     "the president",
		Documents: []string{"White House", "hospital", "school"},
	})
	must.NoError(t, err)

	var search gpt3.SearchResponse
	must.NoError(t, resp.Decode(&search))
	must.Len(t, 1, search.Data)

	reqs := ts.Requests()
	must.Eq(t, "/v1/engines/davinci/search", reqs[0].Path)
	must.Eq(t, map[string]any{
		"query":     "the president",
		"documents": []any{"White House", "hospital", "school"},
	}, decodeBody(t, reqs[0].Body))
}

func TestAnswersAndClassification(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	c := ts.client()

	_, err := c.Answers(t.Context(), &gpt3.AnswersRequest{
		Model:           gpt3.EngineCurie,
		Question:        "which puppy is happy?",
		Documents:       []string{"Puppy A is happy.", "Puppy B is sad."},
		ExamplesContext: "In 2017, U.S. life expectancy was 78.6 years.",
		Examples:        [][]string{{"What is human life expectancy in the United States?", "78 years."}},
		MaxTokens:       5,
	})
	must.NoError(t, err)

	_, err = c.Classification(t.Context(), &gpt3.ClassificationRequest{
		Model:       gpt3.EngineCurie,
		Query:       "It is a raining day :(",
		Examples:    [][]string{{"A happy moment", "Positive"}},
		Labels:      []string{"Positive", "Negative"},
		SearchModel: gpt3.EngineAda,
	})
	must.NoError(t, err)

	reqs := ts.Requests()
	must.Len(t, 2, reqs)

	must.Eq(t, "/v1/answers", reqs[0].Path)
	answers := decodeBody(t, reqs[0].Body)
	must.Eq(t, "curie", answers["model"])
	must.Eq(t, "In 2017, U.S. life expectancy was 78.6 years.", answers["examples_context"])
	must.Eq(t, 5.0, answers["max_tokens"])

	must.Eq(t, "/v1/classifications", reqs[1].Path)
	classification := decodeBody(t, reqs[1].Body)
	must.Eq(t, "ada", classification["search_model"])
	must.Eq[any](t, []any{"Positive", "Negative"}, classification["labels"])
}

func TestEnginesAndFiles(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{"object":"list","data":[{"id":"ada","object":"engine","owner":"openai","ready":true}]}`)
	c := ts.client()

	resp, err := c.Engines(t.Context())
	must.NoError(t, err)

	var engines gpt3.EngineList
	must.NoError(t, resp.Decode(&engines))
	must.Len(t, 1, engines.Data)
	must.Eq(t, "ada", engines.Data[0].ID)
	must.True(t, engines.Data[0].Ready)

	_, err = c.Engine(t.Context(), "davinci-instruct-beta")
	must.NoError(t, err)

	_, err = c.Files(t.Context())
	must.NoError(t, err)

	reqs := ts.Requests()
	must.Len(t, 3, reqs)

	for _, req := range reqs {
		must.Eq(t, http.MethodGet, req.Method)
		must.Len(t, 0, req.Body)
	}

	must.Eq(t, "/v1/engines", reqs[0].Path)
	must.Eq(t, "/v1/engines/davinci-instruct-beta", reqs[1].Path)
	must.Eq(t, "/v1/files", reqs[2].Path)
}

func TestEmbeddings(t *testing.T) {
	t.Run("valid engine", func(t *testing.T) {
		ts := newTestServer(t, http.StatusOK, `{"object":"list","data":[{"object":"embedding","embedding":[0.1,0.2],"index":0}]}`)
		c := ts.client()

		resp, err := c.Embeddings(t.Context(), &gpt3.EmbeddingsRequest{
			Engine: gpt3.EngineTextSearchAdaDoc001,
			Input:  []string{"hello"},
		})
		must.NoError(t, err)

		var embeddings gpt3.EmbeddingsResponse
		must.NoError(t, resp.Decode(&embeddings))
		must.Eq(t, []float64{0.1, 0.2}, embeddings.Data[0].Embedding)

		reqs := ts.Requests()
		must.Eq(t, "/v1/engines/text-search-ada-doc-001/embeddings", reqs[0].Path)
		must.Eq(t, map[string]any{"input": []any{"hello"}}, decodeBody(t, reqs[0].Body))
	})

	t.Run("invalid engine is rejected before sending", func(t *testing.T) {
		ts := newTestServer(t, http.StatusOK, `{}`)
		c := ts.client()

		resp, err := c.Embeddings(t.Context(), &gpt3.EmbeddingsRequest{
			Engine: "not-a-real-engine",
			Input:  []string{"hello"},
		})
		must.Nil(t, resp)
		must.ErrorIs(t, err, gpt3.ErrInvalidEngine)
		must.StrContains(t, err.Error(), "not-a-real-engine")
		must.Len(t, 0, ts.Requests())
	})

	t.Run("missing engine is rejected", func(t *testing.T) {
		ts := newTestServer(t, http.StatusOK, `{}`)
		c := ts.client()

		_, err := c.Embeddings(t.Context(), nil)
		must.ErrorIs(t, err, gpt3.ErrInvalidEngine)
		must.Len(t, 0, ts.Requests())
	})
}

func TestConcurrentCompleteAndSearch(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)
	c := ts.client()

	const n = 20

	var (
		completions = make([]*gpt3.Future[*gpt3.Response], n)
		searches    = make([]*gpt3.Future[*gpt3.Response], n)
	)

	for i := range n {
		prompt := strings.Repeat("p", i+1)
		completions[i] = gpt3.Go(t.Context(), func(ctx context.Context) (*gpt3.Response, error) {
			return c.Complete(ctx, &gpt3.CompletionRequest{Engine: "ada", Prompt: []string{prompt}, MaxTokens: i + 1})
		})

		query := strings.Repeat("q", i+1)
		searches[i] = gpt3.Go(t.Context(), func(ctx context.Context) (*gpt3.Response, error) {
			return c.Search(ctx, &gpt3.SearchRequest{Engine: "babbage", Query: query, Documents: []string{"a", "b"}})
		})
	}

	for i := range n {
		_, err := completions[i].Wait(t.Context())
		must.NoError(t, err)
		_, err = searches[i].Wait(t.Context())
		must.NoError(t, err)
	}

	reqs := ts.Requests()
	must.Len(t, 2*n, reqs)

	for _, req := range reqs {
		body := decodeBody(t, req.Body)

		switch req.Path {
		case "/v1/engines/ada/completions":
			must.MapLen(t, 2, body)
			prompt := body["prompt"].([]any)[0].(string)
			must.Eq(t, float64(len(prompt)), body["max_tokens"].(float64))
			must.Eq(t, strings.Repeat("p", len(prompt)), prompt)
		case "/v1/engines/babbage/search":
			must.MapLen(t, 2, body)
			query := body["query"].(string)
			must.Eq(t, strings.Repeat("q", len(query)), query)
		default:
			t.Fatalf("unexpected path %q", req.Path)
		}
	}
}

func TestEncode(t *testing.T) {
	calls := 0
	httpClient := &http.Client{
		Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			calls++
			return nil, errors.New("unexpected request")
		}),
	}

	c := gpt3.NewClient("test-key", gpt3.WithHTTPClient(httpClient))

	for _, input := range []string{"", "This is an encoding test.", strings.Repeat("x", 10000)} {
		tokens := c.Encode(input)
		must.Len(t, gpt3.EncodeLength, tokens)
		for _, token := range tokens {
			must.Eq(t, "", token)
		}
	}

	must.Eq(t, 0, calls)
}

func TestWithLogger(t *testing.T) {
	ts := newTestServer(t, http.StatusTooManyRequests, `{}`)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c := ts.client(gpt3.WithLogger(logger))

	_, err := c.Engines(t.Context())
	must.Error(t, err)

	out := buf.String()
	must.StrContains(t, out, "request completed")
	must.StrContains(t, out, "level=WARN")
	must.StrContains(t, out, "status=429")
	must.StrContains(t, out, "/v1/engines")

	// The default client is never modified by the logging transport.
	must.Nil(t, http.DefaultClient.Transport)
}

func TestWithLogger_nil(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{}`)

	c := ts.client(gpt3.WithLogger(nil))
	must.NotNil(t, c.Logger)

	_, err := c.Engines(t.Context())
	must.NoError(t, err)
}

func TestDo_nilHTTPClient(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{"object":"list","data":[]}`)

	c := ts.client()
	c.HTTPClient = nil

	resp, err := c.Engines(t.Context())
	must.NoError(t, err)
	must.Eq(t, http.StatusOK, resp.StatusCode)
	must.Len(t, 1, ts.Requests())
}

func TestAPIKey(t *testing.T) {
	c := gpt3.NewClient("sk-123")
	must.Eq(t, "sk-123", c.APIKey())
	must.Eq(t, gpt3.DefaultBaseURL, c.BaseURL)
}
