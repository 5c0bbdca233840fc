package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a typed client for the murmur API. Unauthenticated operations
// hang off the Client directly; owner-scoped operations require the bearer
// token returned by SignIn.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with a sane default timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError is returned when the service answers with success=false.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sdk: %d: %s", e.StatusCode, e.Message)
}

// SignUp registers a new account. The verification code is emailed, not
// returned.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) error {
	var out Envelope
	return c.do(ctx, http.MethodPost, "/v1/sign-up", "", req, &out)
}

// VerifyCode confirms email ownership with the 6-digit code.
func (c *Client) VerifyCode(ctx context.Context, username, code string) error {
	var out Envelope
	return c.do(ctx, http.MethodPost, "/v1/verify-code", "", VerifyCodeRequest{
		Username: username,
		Code:     code,
	}, &out)
}

// CheckUsername reports whether a username is still available among
// verified accounts.
func (c *Client) CheckUsername(ctx context.Context, username string) (bool, error) {
	var out Envelope
	err := c.do(ctx, http.MethodGet,
		"/v1/check-username-unique?username="+url.QueryEscape(username), "", nil, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SignIn authenticates and returns the session token.
func (c *Client) SignIn(ctx context.Context, email, password string) (SignInResponse, error) {
	var out SignInResponse
	err := c.do(ctx, http.MethodPost, "/v1/sign-in", "", SignInRequest{
		Email:    email,
		Password: password,
	}, &out)
	return out, err
}

// SendMessage delivers an anonymous message and returns the recipient's
// updated collection.
func (c *Client) SendMessage(ctx context.Context, username, content string) ([]Message, error) {
	var out MessagesResponse
	err := c.do(ctx, http.MethodPost, "/v1/send-message", "", SendMessageRequest{
		Username: username,
		Content:  content,
	}, &out)
	return out.Messages, err
}

// GetMessages lists the owner's messages newest-first.
func (c *Client) GetMessages(ctx context.Context, token string) ([]Message, error) {
	var out MessagesResponse
	err := c.do(ctx, http.MethodGet, "/v1/get-messages", token, nil, &out)
	return out.Messages, err
}

// DeleteMessage removes one of the owner's messages.
func (c *Client) DeleteMessage(ctx context.Context, token, messageID string) error {
	var out Envelope
	return c.do(ctx, http.MethodDelete, "/v1/delete-message?messageId="+url.QueryEscape(messageID), token, nil, &out)
}

// AcceptanceStatus reads the owner's acceptance gate.
func (c *Client) AcceptanceStatus(ctx context.Context, token string) (bool, error) {
	var out AcceptMessagesResponse
	err := c.do(ctx, http.MethodGet, "/v1/accept-messages", token, nil, &out)
	return out.IsAcceptingMessages, err
}

// SetAcceptance toggles the owner's acceptance gate.
func (c *Client) SetAcceptance(ctx context.Context, token string, accept bool) (bool, error) {
	var out AcceptMessagesResponse
	err := c.do(ctx, http.MethodPost, "/v1/accept-messages", token, AcceptMessagesRequest{
		AcceptMessages: accept,
	}, &out)
	return out.IsAcceptingMessages, err
}

// Suggestions fetches generated message prompts as a "||"-joined string.
func (c *Client) Suggestions(ctx context.Context) (string, error) {
	var out SuggestionsResponse
	err := c.do(ctx, http.MethodPost, "/v1/suggest-messages", "", nil, &out)
	return out.Messages, err
}

// do performs one JSON round-trip. out must embed Envelope (or be one) so
// failure bodies can be surfaced as *APIError.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("sdk: encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("sdk: build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("sdk: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("sdk: decode response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    envelopeMessage(out),
		}
	}
	return nil
}

// envelopeMessage pulls the message field out of any response struct that
// embeds Envelope.
func envelopeMessage(out any) string {
	if env, ok := out.(*Envelope); ok {
		return env.Message
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return ""
	}
	var env Envelope
	_ = json.Unmarshal(raw, &env)
	return env.Message
}
