package ranking

import "math"

// CosineSimilarity returns the cosine of the angle between a and b.
// It is 0.0 when either vector has zero magnitude, which callers cannot tell
// apart from two orthogonal vectors.
func CosineSimilarity(a, b []float64) (float64, error) {
	if err := checkDims("cosine similarity", a, b); err != nil {
		return 0, err
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0.0, nil
	}
	return dot / denom, nil
}
