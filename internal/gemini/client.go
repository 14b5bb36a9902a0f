package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Client calls the Gemini generateContent API for structured prompt tasks
// and speech synthesis.
type Client struct {
	apiKey     string
	model      string
	ttsModel   string
	baseURL    string
	maxTokens  int
	httpClient *http.Client

	Stats *Stats
}

func NewClient(apiKey, model, ttsModel string, maxTokens int) *Client {
	return newClient(apiKey, model, ttsModel, maxTokens, apiBaseURL)
}

// NewClientWithBaseURL creates a client pointing at a custom API base URL (for testing).
func NewClientWithBaseURL(apiKey, model, ttsModel string, maxTokens int, baseURL string) *Client {
	return newClient(apiKey, model, ttsModel, maxTokens, baseURL)
}

func newClient(apiKey, model, ttsModel string, maxTokens int, baseURL string) *Client {
	if maxTokens <= 0 {
		maxTokens = 8192
	}
	return &Client{
		apiKey:    apiKey,
		model:     model,
		ttsModel:  ttsModel,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		maxTokens: maxTokens,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		Stats: NewStats(time.Hour),
	}
}

// Model returns the configured text model name.
func (c *Client) Model() string {
	return c.model
}

// Media is an inline binary attachment for a prompt.
type Media struct {
	MimeType string
	Data     []byte
}

// InvokeRequest is a rendered prompt plus its declared output shape.
type InvokeRequest struct {
	Task   string
	Prompt string
	Schema *Schema
	Media  *Media
}

// InvocationError wraps any failure to obtain a schema-valid result
// from the model for a named task.
type InvocationError struct {
	Task string
	Err  error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("model invocation failed for task %q: %v", e.Task, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type part struct {
	InlineData *inlineData `json:"inline_data,omitempty"`
	Text       string      `json:"text,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType   string        `json:"responseMimeType,omitempty"`
	ResponseSchema     *Schema       `json:"responseSchema,omitempty"`
	ResponseModalities []string      `json:"responseModalities,omitempty"`
	SpeechConfig       *speechConfig `json:"speechConfig,omitempty"`
	MaxOutputTokens    int           `json:"maxOutputTokens,omitempty"`
	Temperature        float64       `json:"temperature"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text       string `json:"text"`
				InlineData *struct {
					MimeType string `json:"mimeType"`
					Data     string `json:"data"`
				} `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Invoke sends a rendered prompt to the model and decodes the
// schema-validated JSON result into out. No retries are performed:
// a single failed call surfaces immediately as an InvocationError.
func (c *Client) Invoke(ctx context.Context, req InvokeRequest, out any) error {
	raw, err := c.generateJSON(ctx, req)
	if err != nil {
		return &InvocationError{Task: req.Task, Err: err}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &InvocationError{Task: req.Task, Err: fmt.Errorf("decode result: %w", err)}
	}
	return nil
}

func (c *Client) generateJSON(ctx context.Context, req InvokeRequest) (json.RawMessage, error) {
	var parts []part
	if req.Media != nil {
		parts = append(parts, part{InlineData: &inlineData{
			MimeType: req.Media.MimeType,
			Data:     base64.StdEncoding.EncodeToString(req.Media.Data),
		}})
	}
	parts = append(parts, part{Text: req.Prompt})

	body := generateRequest{
		Contents: []content{{Role: "user", Parts: parts}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   req.Schema,
			MaxOutputTokens:  c.maxTokens,
		},
	}

	apiResp, err := c.post(ctx, c.model, body)
	if err != nil {
		return nil, err
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response: no candidates")
	}

	text := stripCodeBlock(apiResp.Candidates[0].Content.Parts[0].Text)
	raw := json.RawMessage(text)

	if req.Schema != nil {
		if err := req.Schema.Validate(raw); err != nil {
			return nil, fmt.Errorf("schema validation: %w (raw: %s)", err, truncate(text, 200))
		}
	}
	return raw, nil
}

func (c *Client) post(ctx context.Context, model string, body generateRequest) (*generateResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent", c.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if c.Stats != nil {
		c.Stats.Record(time.Since(start).Milliseconds())
	}
	if err != nil {
		return nil, fmt.Errorf("gemini api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 64<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini api status %d: %s", resp.StatusCode, truncate(string(respBody), 500))
	}

	var apiResp generateResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if apiResp.Error != nil {
		return nil, fmt.Errorf("gemini error %d: %s", apiResp.Error.Code, apiResp.Error.Message)
	}
	return &apiResp, nil
}

var codeBlockRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

func stripCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	if m := codeBlockRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Close releases resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
