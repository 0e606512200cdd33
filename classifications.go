package gpt3

import (
	"context"
	"net/http"
)

// ClassificationRequest classifies a query using labeled examples.
//
// https://beta.openai.com/docs/api-reference/classifications/create
type ClassificationRequest struct {
	// ID of the engine to use for completion.
	Model string `json:"model,omitempty"`

	// Query to be classified.
	Query string `json:"query,omitempty"`

	// A list of (text, label) examples. Only one of Examples or File may be set.
	Examples [][]string `json:"examples,omitempty"`

	// The ID of an uploaded file that contains labeled examples.
	File string `json:"file,omitempty"`

	// The set of categories being classified. When empty, labels are inferred
	// from the examples.
	Labels []string `json:"labels,omitempty"`

	// ID of the engine to use for search.
	SearchModel string `json:"search_model,omitempty"`

	Temperature *float64           `json:"temperature,omitempty"`
	Logprobs    *int               `json:"logprobs,omitempty"`
	MaxExamples int                `json:"max_examples,omitempty"`
	LogitBias   map[string]float64 `json:"logit_bias,omitempty"`

	ReturnPrompt   bool     `json:"return_prompt,omitempty"`
	ReturnMetadata bool     `json:"return_metadata,omitempty"`
	Expand         []string `json:"expand,omitempty"`
	User           string   `json:"user,omitempty"`
}

// ClassificationResponse is a decode target for the body of a
// "classification" response.
type ClassificationResponse struct {
	Object           string `json:"object"`
	Model            string `json:"model"`
	SearchModel      string `json:"search_model"`
	Completion       string `json:"completion"`
	Label            string `json:"label"`
	SelectedExamples []struct {
		Document int    `json:"document"`
		Label    string `json:"label"`
		Text     string `json:"text"`
	} `json:"selected_examples"`
}

// Classification performs a "classification" request. The model is
// forwarded to the API unchecked.
//
// https://beta.openai.com/docs/api-reference/classifications/create
func (c *Client) Classification(ctx context.Context, req *ClassificationRequest) (*Response, error) {
	return c.Do(ctx, http.MethodPost, classificationsURL(c.BaseURL), req)
}
