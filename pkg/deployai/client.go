// Package deployai is a minimal client for the Deploy AI chat API: an
// OAuth2 client-credentials token exchange followed by a create-chat /
// post-message pair.
package deployai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

const (
	defaultAuthURL = "https://api-auth.deploy.ai/oauth2/token"
	defaultBaseURL = "https://core-api.deploy.ai"
	defaultAgentID = "GPT_4O"

	// DefaultOrgID is the shared demo organization used when no org is
	// configured.
	DefaultOrgID = "59f3dce8-2dcf-4a7f-b6ff-d2cbce1231dc"

	tokenTimeout   = 15 * time.Second
	chatTimeout    = 15 * time.Second
	messageTimeout = 120 * time.Second
)

// Client performs the three-leg Deploy AI exchange.
type Client interface {
	// Token obtains a bearer token via the client-credentials grant.
	Token(ctx context.Context) (string, error)
	// CreateChat opens a conversation and returns its id.
	CreateChat(ctx context.Context, token string) (string, error)
	// SendMessage posts a single text message to an open conversation and
	// returns the first text block of the reply.
	SendMessage(ctx context.Context, token, chatID, content string) (string, error)
}

// StatusError reports a non-2xx API response.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("deployai: %s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}

// Option configures the client.
type Option func(*httpClient)

// WithAuthURL overrides the OAuth2 token endpoint.
func WithAuthURL(url string) Option {
	return func(c *httpClient) {
		c.authURL = url
	}
}

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithAgentID overrides the default chat agent.
func WithAgentID(id string) Option {
	return func(c *httpClient) {
		c.agentID = id
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	clientID     string
	clientSecret string
	orgID        string
	authURL      string
	baseURL      string
	agentID      string
	http         *http.Client
}

// NewClient creates a Deploy AI client. orgID falls back to DefaultOrgID
// when empty. Per-call timeouts are applied by the methods, so the
// underlying http.Client carries none.
func NewClient(clientID, clientSecret, orgID string, opts ...Option) Client {
	if orgID == "" {
		orgID = DefaultOrgID
	}
	c := &httpClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		orgID:        orgID,
		authURL:      defaultAuthURL,
		baseURL:      defaultBaseURL,
		agentID:      defaultAgentID,
		http: &http.Client{
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) Token(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, tokenTimeout)
	defer cancel()

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", eris.Wrap(err, "deployai: create token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req, "token")
	if err != nil {
		return "", err
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", eris.Wrap(err, "deployai: unmarshal token response")
	}
	if result.AccessToken == "" {
		return "", eris.New("deployai: token response missing access_token")
	}
	return result.AccessToken, nil
}

func (c *httpClient) CreateChat(ctx context.Context, token string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, chatTimeout)
	defer cancel()

	payload, err := json.Marshal(map[string]any{
		"agentId": c.agentID,
		"stream":  false,
	})
	if err != nil {
		return "", eris.Wrap(err, "deployai: marshal chat request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chats", bytes.NewReader(payload))
	if err != nil {
		return "", eris.Wrap(err, "deployai: create chat request")
	}
	c.setHeaders(req, token)

	body, err := c.do(req, "create chat")
	if err != nil {
		return "", err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", eris.Wrap(err, "deployai: unmarshal chat response")
	}
	if result.ID == "" {
		return "", eris.New("deployai: chat response missing id")
	}
	return result.ID, nil
}

func (c *httpClient) SendMessage(ctx context.Context, token, chatID, content string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, messageTimeout)
	defer cancel()

	payload, err := json.Marshal(map[string]any{
		"chatId": chatID,
		"stream": false,
		"content": []map[string]string{
			{"type": "text", "value": content},
		},
	})
	if err != nil {
		return "", eris.Wrap(err, "deployai: marshal message request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return "", eris.Wrap(err, "deployai: create message request")
	}
	c.setHeaders(req, token)

	body, err := c.do(req, "send message")
	if err != nil {
		return "", err
	}

	var result struct {
		Content []struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		} `json:"content"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", eris.Wrap(err, "deployai: unmarshal message response")
	}
	for _, block := range result.Content {
		if block.Type == "text" {
			return block.Value, nil
		}
	}
	return "", eris.New("deployai: message response has no text block")
}

func (c *httpClient) setHeaders(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Org", c.orgID)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("accept", "application/json")
}

func (c *httpClient) do(req *http.Request, op string) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "deployai: %s", op)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrapf(err, "deployai: %s: read response", op)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Op: op, StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
