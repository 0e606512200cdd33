package gpt3

import (
	"context"
	"net/http"
)

// EmbeddingsRequest asks for a vector representation of each input.
//
// https://beta.openai.com/docs/api-reference/embeddings/create
type EmbeddingsRequest struct {
	// Engine must be one of EmbeddingEngines. It is part of the URL, never the body.
	Engine string `json:"-"`

	// Input text to get embeddings for. Each input must not exceed 2048 tokens in length.
	Input []string `json:"input,omitempty"`

	User string `json:"user,omitempty"`
}

// Embedding is the vector of a single input.
type Embedding struct {
	Object    string    `json:"object"`
	Embedding []float64 `json:"embedding"`
	Index     int       `json:"index"`
}

// EmbeddingsResponse is a decode target for the body of an "embeddings" response.
type EmbeddingsResponse struct {
	Object string      `json:"object"`
	Model  string      `json:"model"`
	Data   []Embedding `json:"data"`
}

// Embeddings performs an "embeddings" request. This is the only method that
// checks its engine: anything outside of EmbeddingEngines fails with an
// *InvalidEngineError before a request is sent.
//
// # Example
//
//	resp, err := client.Embeddings(ctx, &gpt3.EmbeddingsRequest{
//		Engine: gpt3.EngineTextSimilarityAda001,
//		Input:  []string{"The food was delicious and the waiter..."},
//	})
//
// https://beta.openai.com/docs/api-reference/embeddings/create
func (c *Client) Embeddings(ctx context.Context, req *EmbeddingsRequest) (*Response, error) {
	var engine string
	if req != nil {
		engine = req.Engine
	}

	if err := ValidateEmbeddingEngine(engine); err != nil {
		return nil, err
	}

	return c.Do(ctx, http.MethodPost, embeddingsURL(c.BaseURL, engine), req)
}
