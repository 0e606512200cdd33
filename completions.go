package gpt3

import (
	"cmp"
	"context"
	"net/http"
)

// Float64 returns a pointer to v, for optional request fields where zero is
// a meaningful value, like Temperature.
func Float64(v float64) *float64 {
	return &v
}

// CompletionRequest contains information for a "completion" request to the
// API. This is the fundamental request type for the API.
//
// https://beta.openai.com/docs/api-reference/completions/create
type CompletionRequest struct {
	// Engine is the engine to complete with. It is part of the URL, never the
	// body, and defaults to DefaultEngine.
	Engine string `json:"-"`

	// The prompt(s) to generate completions for.
	//
	// Note that <|endoftext|> is the document separator that the model sees during training, so if a prompt
	// is not specified the model will generate as if from the beginning of a new document.
	//
	// https://beta.openai.com/docs/api-reference/completions/create#completions/create-prompt
	Prompt []string `json:"prompt,omitempty"`

	// The maximum number of tokens to generate in the completion.
	//
	// Defaults to 16 if not specified.
	//
	// https://beta.openai.com/docs/api-reference/completions/create#completions/create-max_tokens
	MaxTokens int `json:"max_tokens,omitempty"`

	// https://beta.openai.com/docs/api-reference/completions/create#completions/create-temperature
	//
	// Defaults to 1 if not specified.
	Temperature *float64 `json:"temperature,omitempty"`

	// https://beta.openai.com/docs/api-reference/completions/create#completions/create-top_p
	//
	// Defaults to 1 if not specified.
	TopP *float64 `json:"top_p,omitempty"`

	// https://beta.openai.com/docs/api-reference/completions/create#completions/create-n
	//
	// Defaults to 1 if not specified.
	N int `json:"n,omitempty"`

	// https://beta.openai.com/docs/api-reference/completions/create#completions/create-logprobs
	Logprobs *int `json:"logprobs,omitempty"`

	// https://beta.openai.com/docs/api-reference/completions/create#completions/create-echo
	Echo bool `json:"echo,omitempty"`

	// Up to 4 sequences where the API will stop generating further tokens.
	//
	// https://beta.openai.com/docs/api-reference/completions/create#completions/create-stop
	Stop []string `json:"stop,omitempty"`

	// https://beta.openai.com/docs/api-reference/completions/create#completions/create-presence_penalty
	PresencePenalty float64 `json:"presence_penalty,omitempty"`

	// https://beta.openai.com/docs/api-reference/completions/create#completions/create-frequency_penalty
	FrequencyPenalty float64 `json:"frequency_penalty,omitempty"`

	// https://beta.openai.com/docs/api-reference/completions/create#completions/create-best_of
	//
	// WARNING: Because this parameter generates many completions, it can quickly consume your token quota.
	BestOf int `json:"best_of,omitempty"`

	// https://beta.openai.com/docs/api-reference/completions/create#completions/create-logit_bias
	LogitBias map[string]float64 `json:"logit_bias,omitempty"`

	// https://beta.openai.com/docs/api-reference/completions/create#completions/create-user
	User string `json:"user,omitempty"`
}

// CompletionResponse is a decode target for the body of a "completion" response.
//
// https://beta.openai.com/docs/api-reference/completions/create
type CompletionResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int    `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Text         string `json:"text"`
		Index        int    `json:"index"`
		Logprobs     any    `json:"logprobs"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// Complete performs a "completion" request using the engine named by the
// request, or DefaultEngine when it names none. A nil request sends no body.
//
// # Example
//
//	resp, _ := client.Complete(ctx, &gpt3.CompletionRequest{
//		Engine:    gpt3.EngineDavinci,
//		Prompt:    []string{"Once upon a time"},
//		MaxTokens: 16,
//	})
//
// https://beta.openai.com/docs/api-reference/completions/create
func (c *Client) Complete(ctx context.Context, req *CompletionRequest) (*Response, error) {
	var engine string
	if req != nil {
		engine = req.Engine
	}
	engine = cmp.Or(engine, DefaultEngine)

	return c.Do(ctx, http.MethodPost, completionsURL(c.BaseURL, engine), req)
}
