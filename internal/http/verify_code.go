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

type VerifyCodeHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Verify Code Endpoint
//	@Description	Verify an account using the one-time code emailed at sign-up.
//	@Description	Verifying an already-verified account with the same code succeeds.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.VerifyCodeRequest	true	"username, code"
//	@Success		200		{object}	sdk.Envelope			"success, message"
//	@Failure		400		{object}	sdk.Envelope			"success, message"
//	@Failure		404		{object}	sdk.Envelope			"success, message"
//	@Failure		500		{object}	sdk.Envelope			"success, message"
//	@Router			/v1/verify-code [post].
func (h *VerifyCodeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req sdk.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, sdk.Envelope{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if err := h.AccountService.VerifyCode(ctx, req.Username, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, sdk.Envelope{
				Success: false,
				Message: "User not found",
			})
		case errors.Is(err, service.ErrInvalidCode):
			httpx.WriteJSON(w, http.StatusBadRequest, sdk.Envelope{
				Success: false,
				Message: "Incorrect verification code",
			})
		case errors.Is(err, service.ErrCodeExpired):
			httpx.WriteJSON(w, http.StatusBadRequest, sdk.Envelope{
				Success: false,
				Message: "Verification code has expired. Please sign up again to get a new code",
			})
		default:
			log.Error("failed to verify code", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, sdk.Envelope{
				Success: false,
				Message: "Failed to verify account",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.Envelope{
		Success: true,
		Message: "Account verified successfully",
	})
}
