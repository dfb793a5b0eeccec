// Package assistant relays free-text travel questions to the Gemini
// generateContent endpoint with a fixed instruction describing the Lagan
// fleet. One turn in, one text reply out; no conversation memory.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"laganbus/internal/domain"
)

// FallbackReply is returned to the user whenever the endpoint cannot be
// reached or answers with anything unusable.
const FallbackReply = "I'm sorry, I'm having trouble connecting to my travel database. Please try again later."

const systemInstruction = `You are Lagan Bus Travel Assistant.
You help users with routes in Sri Lanka, especially Nintavur and Kandy.
Keep responses concise, friendly, and helpful.
Mention that for official bookings, they should use the booking form on the main page.

Bus services and prices:
- Sakeer Express: LKR 2,700
- RS Express: LKR 2,900
- Myown Express: LKR 2,700
- Al Ahla: LKR 2,800
- Al Rashith: LKR 2,700
- Star Travels: LKR 1,600 (Cheapest / Economy option)
- Lloyds Travels: LKR 2,700
- Super Line: LKR 2,700

Routes: Primary routes connect Nintavur to Kandy, Badulla, Nuwara Eliya, etc.
Support Hours: 7:00 AM - 10:00 PM
Support Contact: Mr. Fawas (+94701362527)`

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func New(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type generateRequest struct {
	SystemInstruction content   `json:"system_instruction"`
	Contents          []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateReply sends a single-turn query and returns the model's text.
func (c *Client) GenerateReply(ctx context.Context, query string) (string, error) {
	body, err := json.Marshal(generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: query}}}},
	})
	if err != nil {
		return "", domain.InternalError{Msg: "assistant: encode request", Err: err}
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", domain.InternalError{Msg: "assistant: build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.UnavailableError{Service: "assistant", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", domain.UnavailableError{
			Service: "assistant",
			Err:     fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))),
		}
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", domain.UnavailableError{Service: "assistant", Err: fmt.Errorf("decode response: %w", err)}
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", domain.UnavailableError{Service: "assistant", Err: fmt.Errorf("empty candidate set")}
	}
	reply := strings.TrimSpace(gr.Candidates[0].Content.Parts[0].Text)
	if reply == "" {
		return "", domain.UnavailableError{Service: "assistant", Err: fmt.Errorf("blank reply text")}
	}
	return reply, nil
}
