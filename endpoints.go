package gpt3

// DefaultBaseURL is the origin of the API, without the version prefix.
const DefaultBaseURL = "https://api.openai.com"

// APIVersion is the versioned path prefix every endpoint lives under.
const APIVersion = "v1"

// Engine identifiers are interpolated verbatim into the URLs below: they are
// neither escaped nor validated, so callers must supply valid path segments.

// CompletionsURL returns the completions endpoint of the given engine.
//
// https://beta.openai.com/docs/api-reference/completions/create
func CompletionsURL(engine string) string {
	return completionsURL(DefaultBaseURL, engine)
}

// SearchURL returns the search endpoint of the given engine.
//
// https://beta.openai.com/docs/api-reference/searches/create
func SearchURL(engine string) string {
	return searchURL(DefaultBaseURL, engine)
}

// EmbeddingsURL returns the embeddings endpoint of the given engine.
//
// https://beta.openai.com/docs/api-reference/embeddings/create
func EmbeddingsURL(engine string) string {
	return embeddingsURL(DefaultBaseURL, engine)
}

// EnginesURL returns the endpoint listing every available engine.
//
// https://beta.openai.com/docs/api-reference/engines/list
func EnginesURL() string {
	return enginesURL(DefaultBaseURL)
}

// EngineURL returns the endpoint describing a single engine.
//
// https://beta.openai.com/docs/api-reference/engines/retrieve
func EngineURL(engine string) string {
	return engineURL(DefaultBaseURL, engine)
}

// ClassificationsURL returns the classifications endpoint.
//
// https://beta.openai.com/docs/api-reference/classifications/create
func ClassificationsURL() string {
	return classificationsURL(DefaultBaseURL)
}

// AnswersURL returns the answers endpoint.
//
// https://beta.openai.com/docs/api-reference/answers/create
func AnswersURL() string {
	return answersURL(DefaultBaseURL)
}

// FilesURL returns the files endpoint.
//
// https://beta.openai.com/docs/api-reference/files/list
func FilesURL() string {
	return filesURL(DefaultBaseURL)
}

func versionURL(base string) string {
	return base + "/" + APIVersion
}

func enginesURL(base string) string {
	return versionURL(base) + "/engines"
}

func engineURL(base, engine string) string {
	return enginesURL(base) + "/" + engine
}

func completionsURL(base, engine string) string {
	return engineURL(base, engine) + "/completions"
}

func searchURL(base, engine string) string {
	return engineURL(base, engine) + "/search"
}

func embeddingsURL(base, engine string) string {
	return engineURL(base, engine) + "/embeddings"
}

func classificationsURL(base string) string {
	return versionURL(base) + "/classifications"
}

func answersURL(base string) string {
	return versionURL(base) + "/answers"
}

func filesURL(base string) string {
	return versionURL(base) + "/files"
}
