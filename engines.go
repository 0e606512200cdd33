package gpt3

import (
	"context"
	"net/http"
	"slices"
)

// Engine is a known GPT-3 engine identifier.
type Engine = string

// https://beta.openai.com/docs/engines
const (
	// EngineAda is usually the fastest engine, and can perform tasks like parsing
	// text, address correction and certain kinds of classification.
	//
	// https://beta.openai.com/docs/engines/ada
	EngineAda Engine = "ada"

	// EngineBabbage can perform straightforward tasks like simple classification,
	// and is quite capable at semantic search ranking.
	//
	// https://beta.openai.com/docs/engines/babbage
	EngineBabbage Engine = "babbage"

	// EngineCurie is extremely powerful, yet very fast.
	//
	// Good at: Language translation, complex classification, text sentiment, summarization
	//
	// https://beta.openai.com/docs/engines/curie
	EngineCurie Engine = "curie"

	// EngineDavinci is the most capable engine family, and can perform any task
	// the other engines can, often with less instruction.
	//
	// https://beta.openai.com/docs/engines/davinci
	EngineDavinci Engine = "davinci"

	// https://beta.openai.com/docs/engines/instruct-series-beta

	EngineDavinciInstructBeta Engine = "davinci-instruct-beta"
	EngineCurieInstructBeta   Engine = "curie-instruct-beta"

	// https://beta.openai.com/docs/engines/codex-series-private-beta

	EngineDavinciCodex Engine = "davinci-codex"
	EngineCushmanCodex Engine = "cushman-codex"
)

// DefaultEngine is used by Complete and Search when the request names no engine.
const DefaultEngine = EngineDavinci

// Embedding engines, grouped by the use case they were trained for.
//
// https://beta.openai.com/docs/guides/embeddings/what-are-embeddings
const (
	EngineTextSimilarityAda001     Engine = "text-similarity-ada-001"
	EngineTextSimilarityBabbage001 Engine = "text-similarity-babbage-001"
	EngineTextSimilarityCurie001   Engine = "text-similarity-curie-001"
	EngineTextSimilarityDavinci001 Engine = "text-similarity-davinci-001"

	EngineTextSearchAdaDoc001       Engine = "text-search-ada-doc-001"
	EngineTextSearchAdaQuery001     Engine = "text-search-ada-query-001"
	EngineTextSearchBabbageDoc001   Engine = "text-search-babbage-doc-001"
	EngineTextSearchBabbageQuery001 Engine = "text-search-babbage-query-001"
	EngineTextSearchCurieDoc001     Engine = "text-search-curie-doc-001"
	EngineTextSearchCurieQuery001   Engine = "text-search-curie-query-001"
	EngineTextSearchDavinciDoc001   Engine = "text-search-davinci-doc-001"
	EngineTextSearchDavinciQuery001 Engine = "text-search-davinci-query-001"

	EngineCodeSearchAdaCode001     Engine = "code-search-ada-code-001"
	EngineCodeSearchAdaText001     Engine = "code-search-ada-text-001"
	EngineCodeSearchBabbageCode001 Engine = "code-search-babbage-code-001"
	EngineCodeSearchBabbageText001 Engine = "code-search-babbage-text-001"
)

// EmbeddingEngines are the only engines the embeddings endpoint accepts.
var EmbeddingEngines = []Engine{
	EngineTextSimilarityAda001,
	EngineTextSimilarityBabbage001,
	EngineTextSimilarityCurie001,
	EngineTextSimilarityDavinci001,
	EngineTextSearchAdaDoc001,
	EngineTextSearchAdaQuery001,
	EngineTextSearchBabbageDoc001,
	EngineTextSearchBabbageQuery001,
	EngineTextSearchCurieDoc001,
	EngineTextSearchCurieQuery001,
	EngineTextSearchDavinciDoc001,
	EngineTextSearchDavinciQuery001,
	EngineCodeSearchAdaCode001,
	EngineCodeSearchAdaText001,
	EngineCodeSearchBabbageCode001,
	EngineCodeSearchBabbageText001,
}

// ValidateEmbeddingEngine returns an *InvalidEngineError unless engine is
// one of the EmbeddingEngines.
func ValidateEmbeddingEngine(engine string) error {
	if slices.Contains(EmbeddingEngines, engine) {
		return nil
	}
	return &InvalidEngineError{
		Engine: engine,
		Valid:  slices.Clone(EmbeddingEngines),
	}
}

// EngineInfo describes a single engine.
//
// https://beta.openai.com/docs/api-reference/engines/retrieve
type EngineInfo struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	Owner  string `json:"owner"`
	Ready  bool   `json:"ready"`
}

// EngineList is the response of the engines endpoint.
//
// https://beta.openai.com/docs/api-reference/engines/list
type EngineList struct {
	Object string       `json:"object"`
	Data   []EngineInfo `json:"data"`
}

// Engines lists the currently available engines, and provides basic
// information about each one such as the owner and availability.
//
// # Example
//
//	resp, _ := client.Engines(ctx)
//
//	var engines gpt3.EngineList
//	_ = resp.Decode(&engines)
//
//	for _, engine := range engines.Data {
//	   fmt.Println(engine.ID)
//	}
//
// https://beta.openai.com/docs/api-reference/engines/list
func (c *Client) Engines(ctx context.Context) (*Response, error) {
	return c.Do(ctx, http.MethodGet, enginesURL(c.BaseURL), nil)
}

// Engine retrieves an engine instance, providing basic information about
// it such as the owner and availability.
//
// https://beta.openai.com/docs/api-reference/engines/retrieve
func (c *Client) Engine(ctx context.Context, engine string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, engineURL(c.BaseURL, engine), nil)
}
