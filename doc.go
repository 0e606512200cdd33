// Package gpt3 implements a thin client for the engines-era GPT-3 API.
//
// Every method builds an endpoint URL, converts its request into a JSON body
// with snake_case keys, attaches the bearer token, and hands the result to a
// single dispatcher ([Client.Do]). Responses are passed through untouched as a
// [Response], which can optionally be decoded into the typed response structs
// of this package.
//
// The library performs no retries, caching, rate limiting or streaming. Every
// failure is returned to the caller as is: an [*InvalidEngineError] before
// anything is sent, a wrapped transport error, or a [*StatusError].
//
// https://beta.openai.com/docs/api-reference
package gpt3
