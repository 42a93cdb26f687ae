package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Fixed fallback strings. Callers treat every return as success-shaped, so
// the service never surfaces a fault as an error.
const (
	reportFailureText  = "Sorry, I encountered an error processing your request."
	reportEmptyText    = "No response generated."
	analyzeFailureText = "Error analyzing attendance."
	analyzeEmptyText   = "Analysis failed."
)

// AssistConfig points the service at the generative-text API.
type AssistConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// AssistService calls the Gemini generateContent endpoint. It is stateless,
// has no retry policy, and converts every failure into a fixed
// human-readable string.
type AssistService struct {
	client httpDoer
	logger *zap.Logger
	config AssistConfig
}

// NewAssistService constructs the assist service.
func NewAssistService(client httpDoer, logger *zap.Logger, config AssistConfig) *AssistService {
	if client == nil {
		client = &http.Client{Timeout: config.Timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Model == "" {
		config.Model = "gemini-2.5-flash"
	}
	if config.BaseURL == "" {
		config.BaseURL = "https://generativelanguage.googleapis.com"
	}
	return &AssistService{client: client, logger: logger, config: config}
}

// GenerateReport asks the assistant for a response grounded on a serialized
// context summary. Always returns displayable text.
func (s *AssistService) GenerateReport(ctx context.Context, contextSummary, prompt string) string {
	fullPrompt := fmt.Sprintf(`You are an intelligent assistant for a School Management System.
You have access to the following context summary:
%s

User Request: %s

Provide a professional, concise, and helpful response. If asked for a draft (email, notice), format it properly.`, contextSummary, prompt)

	text, err := s.generateContent(ctx, fullPrompt)
	if err != nil {
		s.logger.Warn("report generation failed", zap.Error(err))
		return reportFailureText
	}
	if text == "" {
		return reportEmptyText
	}
	return text
}

// AnalyzeAttendance asks the assistant to summarise serialized attendance
// records. Always returns displayable text.
func (s *AssistService) AnalyzeAttendance(ctx context.Context, serializedRecords string) string {
	prompt := "Analyze this attendance JSON data and identify trends, students with low attendance, and suggestions for improvement. Keep it brief. Data: " + serializedRecords

	text, err := s.generateContent(ctx, prompt)
	if err != nil {
		s.logger.Warn("attendance analysis failed", zap.Error(err))
		return analyzeFailureText
	}
	if text == "" {
		return analyzeEmptyText
	}
	return text
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (s *AssistService) generateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.config.BaseURL, s.config.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call generate api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generate api returned status %d", resp.StatusCode)
	}

	var decoded generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
