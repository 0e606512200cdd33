package gpt3

import (
	"context"
	"net/http"
)

// AnswersRequest answers a question using the provided documents and
// examples.
//
// https://beta.openai.com/docs/api-reference/answers/create
type AnswersRequest struct {
	// ID of the engine to use for completion.
	Model string `json:"model,omitempty"`

	// Question to get answered.
	Question string `json:"question,omitempty"`

	// List of (question, answer) pairs that will help steer the model towards
	// the tone and answer format you'd like.
	Examples [][]string `json:"examples,omitempty"`

	// A text snippet containing the contextual information used to generate
	// the answers for the Examples you provide.
	ExamplesContext string `json:"examples_context,omitempty"`

	// List of documents from which the answer for the input question should be
	// derived. Only one of Documents or File may be set.
	Documents []string `json:"documents,omitempty"`

	// The ID of an uploaded file that contains documents to search over.
	File string `json:"file,omitempty"`

	// ID of the engine to use for search.
	SearchModel string `json:"search_model,omitempty"`

	MaxRerank   int      `json:"max_rerank,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	Logprobs    *int     `json:"logprobs,omitempty"`
	MaxTokens   int      `json:"max_tokens,omitempty"`
	Stop        []string `json:"stop,omitempty"`
	N           int      `json:"n,omitempty"`

	LogitBias map[string]float64 `json:"logit_bias,omitempty"`

	ReturnMetadata bool     `json:"return_metadata,omitempty"`
	ReturnPrompt   bool     `json:"return_prompt,omitempty"`
	Expand         []string `json:"expand,omitempty"`
	User           string   `json:"user,omitempty"`
}

// AnswersResponse is a decode target for the body of an "answers" response.
type AnswersResponse struct {
	Object            string   `json:"object"`
	Model             string   `json:"model"`
	SearchModel       string   `json:"search_model"`
	Completion        string   `json:"completion"`
	Answers           []string `json:"answers"`
	SelectedDocuments []struct {
		Document int    `json:"document"`
		Text     string `json:"text"`
	} `json:"selected_documents"`
}

// Answers performs an "answers" request. The model is forwarded to the API
// unchecked.
//
// https://beta.openai.com/docs/api-reference/answers/create
func (c *Client) Answers(ctx context.Context, req *AnswersRequest) (*Response, error) {
	return c.Do(ctx, http.MethodPost, answersURL(c.BaseURL), req)
}
