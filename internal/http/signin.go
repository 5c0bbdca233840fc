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

type SignInHandler struct {
	AccountService *service.AccountService
	TokenService   *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Sign In Endpoint
//	@Description	Exchange email+password credentials for a session token.
//	@Description	Only verified accounts may sign in.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.SignInRequest	true	"email, password"
//	@Success		200		{object}	sdk.SignInResponse	"token, expires_in"
//	@Failure		400		{object}	sdk.Envelope		"success, message"
//	@Failure		401		{object}	sdk.Envelope		"success, message"
//	@Failure		403		{object}	sdk.Envelope		"success, message"
//	@Failure		500		{object}	sdk.Envelope		"success, message"
//	@Router			/v1/sign-in [post].
func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req sdk.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, sdk.Envelope{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, sdk.Envelope{
			Success: false,
			Message: "email and password are required",
		})
		return
	}

	user, err := h.AccountService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteJSON(w, http.StatusUnauthorized, sdk.Envelope{
				Success: false,
				Message: "Incorrect email or password",
			})
		case errors.Is(err, service.ErrNotVerified):
			httpx.WriteJSON(w, http.StatusForbidden, sdk.Envelope{
				Success: false,
				Message: "Please verify your account before signing in",
			})
		default:
			log.Error("failed to authenticate", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, sdk.Envelope{
				Success: false,
				Message: "Failed to sign in",
			})
		}
		return
	}

	token, expiresIn, err := h.TokenService.Issue(user)
	if err != nil {
		log.Error("failed to issue session token", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, sdk.Envelope{
			Success: false,
			Message: "Failed to sign in",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.SignInResponse{
		Envelope:  sdk.Envelope{Success: true, Message: "Signed in successfully"},
		Token:     token,
		ExpiresIn: expiresIn,
	})
}
