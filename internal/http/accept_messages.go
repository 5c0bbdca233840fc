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

type AcceptMessagesHandler struct {
	MessageService *service.MessageService
}

// HandleGet godoc
//
//	@Summary		Get Acceptance Status Endpoint
//	@Description	Report whether the authenticated user is accepting anonymous
//	@Description	messages.
//	@Tags			Messages
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	sdk.AcceptMessagesResponse	"success, message, isAcceptingMessages"
//	@Failure		401	{object}	sdk.Envelope				"success, message"
//	@Failure		404	{object}	sdk.Envelope				"success, message"
//	@Failure		500	{object}	sdk.Envelope				"success, message"
//	@Router			/v1/accept-messages [get].
func (h *AcceptMessagesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, sdk.Envelope{
			Success: false,
			Message: "Unauthenticated",
		})
		return
	}

	accepting, err := h.MessageService.AcceptanceStatus(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, sdk.Envelope{
				Success: false,
				Message: "User not found",
			})
			return
		}

		log.Error("failed to fetch acceptance status", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, sdk.Envelope{
			Success: false,
			Message: "Failed to fetch message acceptance status",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.AcceptMessagesResponse{
		Envelope:            sdk.Envelope{Success: true, Message: "Acceptance status fetched"},
		IsAcceptingMessages: accepting,
	})
}

// HandlePost godoc
//
//	@Summary		Set Acceptance Status Endpoint
//	@Description	Toggle whether the authenticated user accepts anonymous
//	@Description	messages. Last write wins under concurrent updates.
//	@Tags			Messages
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		sdk.AcceptMessagesRequest	true	"acceptMessages"
//	@Success		200		{object}	sdk.AcceptMessagesResponse	"success, message, isAcceptingMessages"
//	@Failure		400		{object}	sdk.Envelope				"success, message"
//	@Failure		401		{object}	sdk.Envelope				"success, message"
//	@Failure		404		{object}	sdk.Envelope				"success, message"
//	@Failure		500		{object}	sdk.Envelope				"success, message"
//	@Router			/v1/accept-messages [post].
func (h *AcceptMessagesHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, sdk.Envelope{
			Success: false,
			Message: "Unauthenticated",
		})
		return
	}

	var req sdk.AcceptMessagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, sdk.Envelope{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	accepting, err := h.MessageService.SetAcceptance(ctx, userID, req.AcceptMessages)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, sdk.Envelope{
				Success: false,
				Message: "User not found",
			})
			return
		}

		log.Error("failed to update acceptance status", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, sdk.Envelope{
			Success: false,
			Message: "Failed to update message acceptance status",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.AcceptMessagesResponse{
		Envelope:            sdk.Envelope{Success: true, Message: "Acceptance status updated"},
		IsAcceptingMessages: accepting,
	})
}
