package sdk

import "time"

// Envelope is the uniform response body. Every endpoint, success or
// failure, answers with at least {success, message}.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SignUpRequest creates a new unverified account.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyCodeRequest submits the emailed 6-digit code.
type VerifyCodeRequest struct {
	Username string `json:"username"`
	Code     string `json:"code"`
}

// SignInRequest authenticates with email + password.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse carries the bearer session token.
type SignInResponse struct {
	Envelope

	Token     string `json:"token,omitempty"`
	ExpiresIn int    `json:"expires_in,omitempty"`
}

// SendMessageRequest delivers an anonymous message to a username.
type SendMessageRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// Message is a single anonymous message as seen by the owner.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessagesResponse lists messages newest-first. Send-message echoes the
// updated collection back the same way.
type MessagesResponse struct {
	Envelope

	Messages []Message `json:"messages,omitempty"`
}

// AcceptMessagesRequest toggles the owner's acceptance gate.
type AcceptMessagesRequest struct {
	AcceptMessages bool `json:"acceptMessages"`
}

// AcceptMessagesResponse reports the gate's current value.
type AcceptMessagesResponse struct {
	Envelope

	IsAcceptingMessages bool `json:"isAcceptingMessages"`
}

// SuggestionsResponse carries a "||"-delimited string of message
// suggestions from the text-generation service.
type SuggestionsResponse struct {
	Envelope

	Messages string `json:"messages,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the livez/readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
