package embedding

import "math"

type EmbeddingResponseEmbedding struct {
	Values []float32 `json:"values"`
}

type EmbeddingResponse struct {
	Embedding EmbeddingResponseEmbedding `json:"embedding"`
}

// EmbeddingProvider defines the interface for generating text embeddings
type EmbeddingProvider interface {
	Generate(text string, taskType string) (*EmbeddingResponse, error)
}

// normalizeVector scales a vector to unit magnitude. Cosine distance in
// pgvector expects normalized vectors.
func normalizeVector(values []float32) []float32 {
	var sum float64
	for _, v := range values {
		sum += float64(v) * float64(v)
	}
	magnitude := math.Sqrt(sum)
	if magnitude == 0 {
		return values
	}
	normalized := make([]float32, len(values))
	for i, v := range values {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
