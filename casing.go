package gpt3

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"
)

// ErrKeyCollision is returned when two keys of an Options bag map to the
// same snake_case name.
var ErrKeyCollision = errors.New("option keys collide after snake casing")

// Options is a dynamic bag of request parameters keyed by camelCase names,
// for use with Client.Do when a typed request does not exist yet.
//
// # Example
//
//	resp, err := client.Do(ctx, http.MethodPost, gpt3.CompletionsURL("ada"), gpt3.Options{
//		"prompt":    "Once upon a time",
//		"maxTokens": 5,
//	})
type Options map[string]any

// SnakeCase returns a copy of the bag with every key converted by SnakeCase.
// The receiver is never modified.
func (o Options) SnakeCase() (Options, error) {
	out := make(Options, len(o))
	from := make(map[string]string, len(o))

	for _, key := range slices.Sorted(maps.Keys(o)) {
		wire := SnakeCase(key)
		if prev, ok := from[wire]; ok {
			return nil, fmt.Errorf("%w: %q and %q both become %q", ErrKeyCollision, prev, key, wire)
		}
		from[wire] = key
		out[wire] = o[key]
	}

	return out, nil
}

// SnakeCase converts a camelCase key into its lowercase, underscore
// separated wire name, e.g. "maxTokens" becomes "max_tokens".
//
// A run of capitals is treated as a single word, so "userID" becomes
// "user_id" and "HTTPStatus" becomes "http_status". Keys that are already
// snake_case are returned unchanged.
func SnakeCase(key string) string {
	runes := []rune(key)

	var b strings.Builder
	b.Grow(len(key) + 4)

	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}

		if i > 0 && runes[i-1] != '_' {
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !prevUpper || nextLower {
				b.WriteByte('_')
			}
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
