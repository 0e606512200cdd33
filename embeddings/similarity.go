// Package embeddings compares the vectors returned by the embeddings
// endpoint.
package embeddings

import (
	"cmp"
	"errors"
	"math"
	"slices"

	"github.com/picatz/gpt3"
)

var (
	// ErrEmpty is returned when at least one of the embeddings is empty.
	ErrEmpty = errors.New("at least one of the embeddings is empty")

	// ErrLengthMismatch is returned when two embeddings have different lengths.
	ErrLengthMismatch = errors.New("embeddings must have equal lengths")

	// ErrZeroMagnitude is returned when an embedding has no direction.
	ErrZeroMagnitude = errors.New("at least one of the embedding magnitudes is zero")
)

func check(a, b []float64) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmpty
	}
	if len(a) != len(b) {
		return ErrLengthMismatch
	}
	return nil
}

// Vectors returns the embeddings of a decoded response, ordered by the index
// of the input they belong to.
func Vectors(resp *gpt3.EmbeddingsResponse) [][]float64 {
	data := slices.Clone(resp.Data)
	slices.SortFunc(data, func(a, b gpt3.Embedding) int {
		return cmp.Compare(a.Index, b.Index)
	})

	vectors := make([][]float64, len(data))
	for i, d := range data {
		vectors[i] = d.Embedding
	}
	return vectors
}

// DotProduct returns the sum of the element-wise products of two embeddings.
func DotProduct(a, b []float64) (float64, error) {
	if err := check(a, b); err != nil {
		return 0, err
	}

	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}

// CosineSimilarity calculates the cosine similarity between two embeddings.
//
// https://en.wikipedia.org/wiki/Cosine_similarity
func CosineSimilarity(a, b []float64) (float64, error) {
	if err := check(a, b); err != nil {
		return 0, err
	}

	var dotProduct, magnitude1, magnitude2 float64
	for i := range a {
		dotProduct += a[i] * b[i]
		magnitude1 += a[i] * a[i]
		magnitude2 += b[i] * b[i]
	}

	if magnitude1 == 0.0 || magnitude2 == 0.0 {
		return 0, ErrZeroMagnitude
	}

	return dotProduct / (math.Sqrt(magnitude1) * math.Sqrt(magnitude2)), nil
}

// EuclideanDistance calculates the Euclidean distance between two embeddings.
//
// https://en.wikipedia.org/wiki/Euclidean_distance
func EuclideanDistance(a, b []float64) (float64, error) {
	if err := check(a, b); err != nil {
		return 0, err
	}

	var sumSquares float64
	for i := range a {
		diff := a[i] - b[i]
		sumSquares += diff * diff
	}

	return math.Sqrt(sumSquares), nil
}

// Match is a candidate embedding scored against a query.
type Match struct {
	Index int
	Score float64
}

// Rank scores every candidate against the query by cosine similarity and
// returns them best first. Ties keep their original order.
func Rank(query []float64, candidates [][]float64) ([]Match, error) {
	matches := make([]Match, len(candidates))

	for i, candidate := range candidates {
		score, err := CosineSimilarity(query, candidate)
		if err != nil {
			return nil, err
		}
		matches[i] = Match{Index: i, Score: score}
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return matches, nil
}
