package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"

	"github.com/jonathan/resume-screener/internal/ingestion"
)

// HashingEmbedder maps text to a signed bag-of-words vector using feature hashing.
// Vectors are L2-normalized; text without tokens embeds to the zero vector.
type HashingEmbedder struct {
	dim int
}

// NewHashingEmbedder returns a HashingEmbedder producing vectors of length dim.
func NewHashingEmbedder(dim int) *HashingEmbedder {
	if dim <= 0 {
		dim = DefaultHashingDimension
	}
	return &HashingEmbedder{dim: dim}
}

// Embed returns the hashed embedding of text.
func (e *HashingEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vec := make([]float64, e.dim)
	for _, tok := range tokenize(text) {
		h := fnv.New64a()
		_, _ = h.Write([]byte(tok))
		sum := h.Sum64()

		idx := int(sum % uint64(e.dim))
		if sum&(1<<63) != 0 {
			vec[idx]--
		} else {
			vec[idx]++
		}
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec, nil
}

// Dimension returns the vector length.
func (e *HashingEmbedder) Dimension() int {
	return e.dim
}

// Model returns the embedding model name
func (e *HashingEmbedder) Model() string {
	return hashingModelName
}

// Close is a no-op.
func (e *HashingEmbedder) Close() error {
	return nil
}

func tokenize(text string) []string {
	fields := strings.Fields(ingestion.SearchForm(text))
	tokens := fields[:0]
	for _, f := range fields {
		f = strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
		})
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
