// Package storage provides the pluggable key-value layer behind the CLI's
// call history. A pebble backend is used on disk, and an in-memory backend
// serves tests and throwaway sessions.
package storage
