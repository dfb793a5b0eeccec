package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laganbus/internal/domain"
)

func TestGenerateReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "What time do you open?", req.Contents[0].Parts[0].Text)
		assert.Contains(t, req.SystemInstruction.Parts[0].Text, "Lagan Bus Travel Assistant")
		assert.Contains(t, req.SystemInstruction.Parts[0].Text, "Star Travels: LKR 1,600")

		_, _ = w.Write([]byte(`{"candidates": [{"content": {"role": "model", "parts": [{"text": "We open at 7:00 AM."}]}}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", "gemini-2.0-flash", time.Second)
	reply, err := c.GenerateReply(context.Background(), "What time do you open?")
	require.NoError(t, err)
	assert.Equal(t, "We open at 7:00 AM.", reply)
}

func TestGenerateReplyErrors(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": {"message": "quota"}}`, http.StatusTooManyRequests)
		},
		"empty candidates": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates": []}`))
		},
		"blank text": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "  "}]}}]}`))
		},
		"not json": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html></html>"))
		},
	}
	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()

			c := New(srv.URL, "test-key", "gemini-2.0-flash", time.Second)
			_, err := c.GenerateReply(context.Background(), "hello")
			require.Error(t, err)
			assert.True(t, domain.IsUnavailable(err), "got %v", err)
		})
	}
}

func TestGenerateReplyTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, "test-key", "gemini-2.0-flash", time.Second)
	_, err := c.GenerateReply(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestFallbackReplyIsFixed(t *testing.T) {
	assert.True(t, strings.HasPrefix(FallbackReply, "I'm sorry"))
}
