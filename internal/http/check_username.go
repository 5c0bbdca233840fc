package http

import (
	"errors"
	"net/http"

	"github.com/murmurapp/murmur/internal/service"
	"github.com/murmurapp/murmur/pkg/httpx"
	"github.com/murmurapp/murmur/pkg/sdk"
	"github.com/murmurapp/murmur/pkg/slogx"
)

type CheckUsernameHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Check Username Endpoint
//	@Description	Check whether a username is available. A username is taken only
//	@Description	once a verified account holds it.
//	@Tags			Accounts
//	@Produce		json
//	@Param			username	query		string			true	"Username to check"
//	@Success		200			{object}	sdk.Envelope	"success, message"
//	@Failure		400			{object}	sdk.Envelope	"success, message"
//	@Failure		409			{object}	sdk.Envelope	"success, message"
//	@Failure		500			{object}	sdk.Envelope	"success, message"
//	@Router			/v1/check-username-unique [get].
func (h *CheckUsernameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := r.URL.Query().Get("username")
	if username == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, sdk.Envelope{
			Success: false,
			Message: "username query parameter is required",
		})
		return
	}

	available, err := h.AccountService.CheckUsername(ctx, username)
	if err != nil {
		if errors.Is(err, service.ErrInvalidUsername) {
			httpx.WriteJSON(w, http.StatusBadRequest, sdk.Envelope{
				Success: false,
				Message: "Username must be 2-20 characters using letters, numbers or underscores",
			})
			return
		}

		log.Error("failed to check username", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, sdk.Envelope{
			Success: false,
			Message: "Failed to check username",
		})
		return
	}

	if !available {
		httpx.WriteJSON(w, http.StatusConflict, sdk.Envelope{
			Success: false,
			Message: "Username is already taken",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.Envelope{
		Success: true,
		Message: "Username is available",
	})
}
