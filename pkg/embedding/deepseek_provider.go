package embedding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DeepSeekProvider implements EmbeddingProvider against the DeepSeek
// OpenAI-compatible embeddings endpoint.
type DeepSeekProvider struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

func NewDeepSeekProvider(apiKey string) EmbeddingProvider {
	return &DeepSeekProvider{
		BaseURL: "https://api.deepseek.com/v1",
		APIKey:  apiKey,
		Model:   "deepseek-embed",
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type deepseekEmbeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type deepseekEmbeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

func (p *DeepSeekProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	// taskType is kept for interface compatibility; DeepSeek has no task hints
	reqBody := deepseekEmbeddingRequest{
		Model: p.Model,
		Input: []string{text},
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := p.BaseURL + "/embeddings"
	req, err := http.NewRequest("POST", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("deepseek embedding error: %s", string(bodyBytes))
	}

	var dsResp deepseekEmbeddingResponse
	if err := json.Unmarshal(bodyBytes, &dsResp); err != nil {
		return nil, err
	}
	if len(dsResp.Data) == 0 {
		return nil, fmt.Errorf("deepseek embedding returned no data")
	}

	return &EmbeddingResponse{
		Embedding: EmbeddingResponseEmbedding{
			Values: normalizeVector(dsResp.Data[0].Embedding),
		},
	}, nil
}
