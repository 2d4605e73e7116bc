package embedding

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regboard-be/pkg/apperror"
)

func TestOllamaProviderGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embeddings", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req ollamaEmbeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "nomic-embed-text", req.Model)
		assert.Equal(t, "data retention policy", req.Prompt)

		json.NewEncoder(w).Encode(ollamaEmbeddingResponse{Embedding: []float64{3, 4}})
	}))
	defer srv.Close()

	provider := NewOllamaProvider(srv.URL, "nomic-embed-text")
	resp, err := provider.Generate("data retention policy", TaskQuery)
	require.NoError(t, err)
	require.Equal(t, 2, resp.Dimension())

	// 3-4-5 triangle normalized.
	assert.InDelta(t, 0.6, float64(resp.Values[0]), 1e-6)
	assert.InDelta(t, 0.8, float64(resp.Values[1]), 1e-6)

	var magnitude float64
	for _, v := range resp.Values {
		magnitude += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(magnitude), 1e-6)
}

func TestOllamaProviderErrors(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		wantNetwork bool
		wantFormat  bool
	}{
		{
			name: "server error is a network failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "model not found", http.StatusInternalServerError)
			},
			wantNetwork: true,
		},
		{
			name: "garbage body is a format failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>not json</html>"))
			},
			wantFormat: true,
		},
		{
			name: "empty embedding is a format failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(ollamaEmbeddingResponse{Embedding: nil})
			},
			wantFormat: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			provider := NewOllamaProvider(srv.URL, "")
			_, err := provider.Generate("anything", TaskDocument)
			require.Error(t, err)
			assert.Equal(t, tt.wantNetwork, apperror.IsNetwork(err))
			assert.Equal(t, tt.wantFormat, apperror.IsFormat(err))
		})
	}
}

func TestOllamaProviderUnreachable(t *testing.T) {
	// Port 1 is never listening.
	provider := NewOllamaProvider("http://127.0.0.1:1", "")
	_, err := provider.Generate("anything", TaskQuery)
	require.Error(t, err)
	assert.True(t, apperror.IsNetwork(err))
	assert.Contains(t, err.Error(), "service unavailable")
}

func TestNormalizeVectorZero(t *testing.T) {
	vec := []float32{0, 0, 0}
	assert.Equal(t, vec, normalizeVector(vec))
}
