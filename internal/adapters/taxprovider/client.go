package taxprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/core/ports/providers"
)

const issuePath = "/v1/documents"

// ErrNotConfigured is returned by NewClient when no provider URL is set.
var ErrNotConfigured = errors.New("tax document provider not configured")

// Client talks to the electronic invoice provider over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	// apiKey is sent as a bearer token and never logged
	apiKey string
}

// ClientConfig configures the provider client.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// HTTPClient overrides the default client, mostly for tests.
	HTTPClient *http.Client
}

// NewClient creates a provider client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrNotConfigured
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
	}, nil
}

var _ providers.TaxDocumentProvider = (*Client)(nil)

type issueRequest struct {
	domain.TaxDocumentRequest
	IssueDate string `json:"issueDate"`
}

// Issue submits a document. A 2xx answer is decoded as the provider's verdict, which may
// still be a rejection (Success=false); anything else is a provider error.
func (c *Client) Issue(ctx context.Context, req domain.TaxDocumentRequest) (*domain.TaxDocumentResult, error) {
	body, err := json.Marshal(issueRequest{
		TaxDocumentRequest: req,
		IssueDate:          req.IssueDate.Format(time.DateOnly),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+issuePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", apperrors.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseError(resp)
	}

	var result domain.TaxDocumentResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", apperrors.ErrProvider, err)
	}
	return &result, nil
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func parseError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var eb errorBody
	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &eb) == nil {
		switch {
		case eb.Message != "":
			msg = eb.Message
		case eb.Error != "":
			msg = eb.Error
		}
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return fmt.Errorf("%w: status %d: %s", apperrors.ErrProvider, resp.StatusCode, msg)
}
