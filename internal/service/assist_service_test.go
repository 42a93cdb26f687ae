package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoer struct {
	lastRequest *http.Request
	lastBody    []byte
	response    *http.Response
	err         error
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.lastRequest = req
	if req.Body != nil {
		f.lastBody, _ = io.ReadAll(req.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

const candidateBody = `{"candidates":[{"content":{"parts":[{"text":"Attendance is healthy."}]}}]}`

func TestAssistServiceGenerateReportSuccess(t *testing.T) {
	doer := &fakeDoer{response: jsonResponse(http.StatusOK, candidateBody)}
	svc := NewAssistService(doer, nil, AssistConfig{APIKey: "key-123"})

	text := svc.GenerateReport(context.Background(), `{"stats":{}}`, "Draft a notice")
	assert.Equal(t, "Attendance is healthy.", text)

	require.NotNil(t, doer.lastRequest)
	assert.Equal(t, http.MethodPost, doer.lastRequest.Method)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent", doer.lastRequest.URL.String())
	assert.Equal(t, "key-123", doer.lastRequest.Header.Get("x-goog-api-key"))
	assert.Contains(t, string(doer.lastBody), "User Request: Draft a notice")
	assert.Contains(t, string(doer.lastBody), "School Management System")
}

func TestAssistServiceGenerateReportFallbacks(t *testing.T) {
	tests := []struct {
		name string
		doer *fakeDoer
		want string
	}{
		{"transport error", &fakeDoer{err: errors.New("connection refused")}, "Sorry, I encountered an error processing your request."},
		{"non-200 status", &fakeDoer{response: jsonResponse(http.StatusTooManyRequests, `{}`)}, "Sorry, I encountered an error processing your request."},
		{"no candidates", &fakeDoer{response: jsonResponse(http.StatusOK, `{"candidates":[]}`)}, "No response generated."},
		{"empty parts", &fakeDoer{response: jsonResponse(http.StatusOK, `{"candidates":[{"content":{"parts":[]}}]}`)}, "No response generated."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAssistService(tt.doer, nil, AssistConfig{})
			got := svc.GenerateReport(context.Background(), "{}", "anything")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssistServiceAnalyzeAttendance(t *testing.T) {
	doer := &fakeDoer{response: jsonResponse(http.StatusOK, candidateBody)}
	svc := NewAssistService(doer, nil, AssistConfig{Model: "gemini-2.5-flash", BaseURL: "https://example.test"})

	text := svc.AnalyzeAttendance(context.Background(), `[{"student":"Alice Johnson","date":"2024-03-01","status":"PRESENT"}]`)
	assert.Equal(t, "Attendance is healthy.", text)
	assert.Equal(t, "https://example.test/v1beta/models/gemini-2.5-flash:generateContent", doer.lastRequest.URL.String())
	assert.Contains(t, string(doer.lastBody), "Alice Johnson")
}

func TestAssistServiceAnalyzeAttendanceFallbacks(t *testing.T) {
	failing := NewAssistService(&fakeDoer{err: errors.New("timeout")}, nil, AssistConfig{})
	assert.Equal(t, "Error analyzing attendance.", failing.AnalyzeAttendance(context.Background(), "[]"))

	empty := NewAssistService(&fakeDoer{response: jsonResponse(http.StatusOK, `{"candidates":[]}`)}, nil, AssistConfig{})
	assert.Equal(t, "Analysis failed.", empty.AnalyzeAttendance(context.Background(), "[]"))
}
