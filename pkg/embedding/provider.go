package embedding

// Dimension is the vector width produced by the embedding model and stored in
// the corpus tables. nomic-embed-text emits 768-dimensional vectors.
const Dimension = 768

// Task types hint the model about the retrieval side of the call. Ollama
// ignores them; they are kept so a provider that cares can use them.
const (
	TaskQuery    = "RETRIEVAL_QUERY"
	TaskDocument = "RETRIEVAL_DOCUMENT"
)

// EmbeddingProvider defines the interface for generating text embeddings.
type EmbeddingProvider interface {
	Generate(text string, taskType string) (*EmbeddingResponse, error)
}

// EmbeddingResponse carries one embedding vector, normalized to unit length.
type EmbeddingResponse struct {
	Values []float32
}

// Dimension returns the width of the returned vector.
func (r *EmbeddingResponse) Dimension() int {
	return len(r.Values)
}
