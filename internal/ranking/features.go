package ranking

// BuildFeatureVector concatenates the resume embedding and the job embedding,
// resume first. The result never aliases its inputs.
func BuildFeatureVector(resume, job []float64) ([]float64, error) {
	if err := checkDims("feature vector", resume, job); err != nil {
		return nil, err
	}

	features := make([]float64, 0, len(resume)+len(job))
	features = append(features, resume...)
	return append(features, job...), nil
}

// ToFloat64 widens an embedding payload.
func ToFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
