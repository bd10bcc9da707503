package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Samrat25/HireX/internal/common"
	domain "github.com/Samrat25/HireX/internal/domain/identity"
)

// HTTPClient talks to the external identity provider's profile store. It
// implements identity.Provider.
type HTTPClient struct {
	baseURL     string
	internalKey string
	httpClient  *http.Client
}

func NewClient(baseURL, internalKey string, httpClient *http.Client) *HTTPClient {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		baseURL:     trimmed,
		internalKey: strings.TrimSpace(internalKey),
		httpClient:  httpClient,
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *HTTPClient) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, common.NewError(common.CodeValidation, "user id is required", nil)
	}
	payload, status, err := c.do(ctx, http.MethodGet, "/v1/profiles/"+userID, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, common.NewError(common.CodeNotFound, "profile not found", nil)
	}
	if status != http.StatusOK {
		return nil, mapProviderError(payload, status)
	}
	var profile domain.Profile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, fmt.Errorf("decode profile response: %w", err)
	}
	return &profile, nil
}

func (c *HTTPClient) CreateProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	body, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("encode profile request: %w", err)
	}
	payload, status, err := c.do(ctx, http.MethodPost, "/v1/profiles", body)
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return nil, mapProviderError(payload, status)
	}
	var created domain.Profile
	if err := json.Unmarshal(payload, &created); err != nil {
		return nil, fmt.Errorf("decode profile response: %w", err)
	}
	return &created, nil
}

func (c *HTTPClient) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	body, err := json.Marshal(map[string]string{"last_login_at": at.UTC().Format(time.RFC3339)})
	if err != nil {
		return fmt.Errorf("encode last login request: %w", err)
	}
	payload, status, err := c.do(ctx, http.MethodPatch, "/v1/profiles/"+userID+"/last-login", body)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return mapProviderError(payload, status)
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body []byte) ([]byte, int, error) {
	if c.baseURL == "" {
		return nil, 0, common.NewError(common.CodeInternal, "identity provider is not configured", nil)
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("create identity request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.internalKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.internalKey)
		req.Header.Set("X-Internal-Key", c.internalKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "identity provider unreachable", err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read identity response: %w", err)
	}
	return payload, resp.StatusCode, nil
}

func mapProviderError(payload []byte, status int) error {
	var parsed errorResponse
	if err := json.Unmarshal(payload, &parsed); err != nil || parsed.Error == "" {
		message := strings.TrimSpace(string(payload))
		if message == "" {
			message = fmt.Sprintf("identity provider returned status %d", status)
		}
		return common.NewError(common.CodeInternal, message, nil)
	}
	switch parsed.Error {
	case "validation":
		return common.NewError(common.CodeValidation, parsed.Message, nil)
	case "unauthorized":
		return common.NewError(common.CodeUnauthorized, parsed.Message, nil)
	default:
		return common.NewError(common.CodeInternal, "identity provider error: "+parsed.Error, nil)
	}
}
