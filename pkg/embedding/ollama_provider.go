package embedding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"

	"regboard-be/pkg/apperror"
)

// OllamaProvider implements EmbeddingProvider against a local Ollama server
// (e.g. nomic-embed-text). The server is an external collaborator: we only
// format the request and label its failures.
type OllamaProvider struct {
	BaseURL string
	Model   string
	client  *http.Client
}

func NewOllamaProvider(baseURL string, model string) EmbeddingProvider {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "nomic-embed-text"
	}
	return &OllamaProvider{
		BaseURL: baseURL,
		Model:   model,
		client:  http.DefaultClient,
	}
}

type ollamaEmbeddingRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type ollamaEmbeddingResponse struct {
	Embedding []float64 `json:"embedding"` // Ollama returns float64
}

// Generate embeds text through POST /api/embeddings. Connection failures and
// non-2xx statuses come back as NetworkError ("service unreachable"); bodies
// that do not decode into a vector come back as FormatError, so callers can
// tell a dead service from a misbehaving one.
func (p *OllamaProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	// taskType is ignored by Ollama/Nomic, kept for interface compatibility.

	reqBody := ollamaEmbeddingRequest{
		Model:  p.Model,
		Prompt: text,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/api/embeddings", p.BaseURL)
	resp, err := p.client.Post(endpoint, "application/json", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, apperror.Network("ollama embedding", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Network("ollama embedding", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.Network("ollama embedding", fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes)))
	}

	var ollamaResp ollamaEmbeddingResponse
	if err := json.Unmarshal(bodyBytes, &ollamaResp); err != nil {
		return nil, apperror.Format("ollama embedding", err)
	}
	if len(ollamaResp.Embedding) == 0 {
		return nil, apperror.Format("ollama embedding", fmt.Errorf("empty embedding in response"))
	}

	values := make([]float32, len(ollamaResp.Embedding))
	for i, v := range ollamaResp.Embedding {
		values[i] = float32(v)
	}

	// pgvector cosine distance assumes unit-length vectors.
	return &EmbeddingResponse{Values: normalizeVector(values)}, nil
}

// normalizeVector scales vec to magnitude 1.
func normalizeVector(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
