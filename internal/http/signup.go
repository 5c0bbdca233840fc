package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/murmurapp/murmur/internal/service"
	"github.com/murmurapp/murmur/pkg/httpx"
	"github.com/murmurapp/murmur/pkg/sdk"
	"github.com/murmurapp/murmur/pkg/slogx"
)

type SignUpHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Sign Up Endpoint
//	@Description	Register a new account and email a one-time verification code.
//	@Description	Re-registering an unverified email reissues the code and replaces
//	@Description	the held credentials.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.SignUpRequest	true	"username, email, password"
//	@Success		201		{object}	sdk.Envelope		"success, message"
//	@Failure		400		{object}	sdk.Envelope		"success, message"
//	@Failure		409		{object}	sdk.Envelope		"success, message"
//	@Failure		500		{object}	sdk.Envelope		"success, message"
//	@Router			/v1/sign-up [post].
func (h *SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req sdk.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, sdk.Envelope{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if _, err := h.AccountService.SignUp(ctx, req.Username, req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUsername):
			httpx.WriteJSON(w, http.StatusBadRequest, sdk.Envelope{
				Success: false,
				Message: "Username must be 2-20 characters using letters, numbers or underscores",
			})
		case errors.Is(err, service.ErrInvalidEmail):
			httpx.WriteJSON(w, http.StatusBadRequest, sdk.Envelope{
				Success: false,
				Message: "Invalid email address",
			})
		case errors.Is(err, service.ErrWeakPassword):
			httpx.WriteJSON(w, http.StatusBadRequest, sdk.Envelope{
				Success: false,
				Message: "Password must be at least 8 characters with upper and lower case letters, a digit and a symbol",
			})
		case errors.Is(err, service.ErrUsernameTaken):
			httpx.WriteJSON(w, http.StatusConflict, sdk.Envelope{
				Success: false,
				Message: "Username is already taken",
			})
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteJSON(w, http.StatusConflict, sdk.Envelope{
				Success: false,
				Message: "An account with this email already exists",
			})
		case errors.Is(err, service.ErrEmailSend):
			log.Error("failed to send verification email", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, sdk.Envelope{
				Success: false,
				Message: "Failed to send verification email",
			})
		default:
			log.Error("failed to sign up", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, sdk.Envelope{
				Success: false,
				Message: "Failed to register account",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, sdk.Envelope{
		Success: true,
		Message: "Account registered. Please check your email to verify your account",
	})
}
