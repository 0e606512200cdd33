package gpt3

import (
	"cmp"
	"context"
	"net/http"
)

// SearchRequest ranks documents by their semantic similarity to a query.
//
// https://beta.openai.com/docs/api-reference/searches/create
type SearchRequest struct {
	// Engine is the engine to search with. It is part of the URL, never the
	// body, and defaults to DefaultEngine.
	Engine string `json:"-"`

	// Query to search against the documents.
	Query string `json:"query,omitempty"`

	// Up to 200 documents to search over. Only one of Documents or File may be set.
	Documents []string `json:"documents,omitempty"`

	// The ID of an uploaded file that contains documents to search over.
	File string `json:"file,omitempty"`

	// The maximum number of documents to be re-ranked and returned by search,
	// only used when File is set.
	MaxRerank int `json:"max_rerank,omitempty"`

	// Return the metadata field of each document, only used when File is set.
	ReturnMetadata bool `json:"return_metadata,omitempty"`

	User string `json:"user,omitempty"`
}

// SearchResponse is a decode target for the body of a "search" response.
type SearchResponse struct {
	Object string         `json:"object"`
	Data   []SearchResult `json:"data"`
}

// SearchResult scores a single document against the query. Document is the
// index of the document in the request.
type SearchResult struct {
	Document int     `json:"document"`
	Object   string  `json:"object"`
	Score    float64 `json:"score"`
	Text     string  `json:"text,omitempty"`
	Metadata string  `json:"metadata,omitempty"`
}

// Search performs a semantic search over the given documents using the
// engine named by the request, or DefaultEngine when it names none.
//
// https://beta.openai.com/docs/api-reference/searches/create
func (c *Client) Search(ctx context.Context, req *SearchRequest) (*Response, error) {
	var engine string
	if req != nil {
		engine = req.Engine
	}
	engine = cmp.Or(engine, DefaultEngine)

	return c.Do(ctx, http.MethodPost, searchURL(c.BaseURL, engine), req)
}
