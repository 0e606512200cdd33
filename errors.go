package gpt3

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEngine matches every *InvalidEngineError with errors.Is.
var ErrInvalidEngine = errors.New("invalid engine name")

// InvalidEngineError is returned before any request is sent when an
// embeddings request names an engine outside of EmbeddingEngines.
type InvalidEngineError struct {
	// Engine is the rejected engine name.
	Engine string

	// Valid lists the engine names that would have been accepted.
	Valid []string
}

// Error returns the error message, naming both the rejected and the valid engines.
func (e *InvalidEngineError) Error() string {
	return fmt.Sprintf("%s %q, must be one of: %s", ErrInvalidEngine, e.Engine, strings.Join(e.Valid, ", "))
}

// Is reports whether target is ErrInvalidEngine.
func (e *InvalidEngineError) Is(target error) bool {
	return target == ErrInvalidEngine
}

// StatusError is returned when the API responds with a non-2xx status code.
// The body is kept exactly as received.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

// Error returns the error message.
func (e *StatusError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status code: %d: %s", e.StatusCode, e.Body)
}
