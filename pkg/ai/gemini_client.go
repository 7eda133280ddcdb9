package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pantrypal-backend/domain"
	"pantrypal-backend/internal/logger"
	"pantrypal-backend/internal/utils"
)

type (
	GeminiClient interface {
		GenerateContent(ctx context.Context, prompt string) (string, error)
	}

	geminiClient struct {
		httpClient *http.Client
	}
)

func NewGeminiClient() GeminiClient {
	return &geminiClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *geminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return "", fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": prompt,
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	geminiReq, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	geminiReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(geminiReq)
	if err != nil {
		logger.Log.Errorw("gemini request failed", "error", err)
		return "", domain.ErrGeminiAPIFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		logger.Log.Errorw("gemini API error", "status", resp.Status, "body", string(bodyBytes))
		return "", domain.ErrGeminiAPIFailed
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", domain.ErrGeminiAPIFailed
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGeminiAPIFailed
	}

	return strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text), nil
}
