package http

import (
	"errors"
	"net/http"

	"github.com/murmurapp/murmur/internal/service"
	"github.com/murmurapp/murmur/pkg/httpx"
	"github.com/murmurapp/murmur/pkg/sdk"
	"github.com/murmurapp/murmur/pkg/slogx"
)

type DeleteMessageHandler struct {
	MessageService *service.MessageService
}

// ServeHTTP godoc
//
//	@Summary		Delete Message Endpoint
//	@Description	Delete one of the authenticated user's received messages.
//	@Description	Deleting a message that is already gone returns 404.
//	@Tags			Messages
//	@Produce		json
//	@Security		BearerAuth
//	@Param			messageId	query		string			true	"Message ID to delete"
//	@Success		200			{object}	sdk.Envelope	"success, message"
//	@Failure		400			{object}	sdk.Envelope	"success, message"
//	@Failure		401			{object}	sdk.Envelope	"success, message"
//	@Failure		404			{object}	sdk.Envelope	"success, message"
//	@Failure		500			{object}	sdk.Envelope	"success, message"
//	@Router			/v1/delete-message [delete].
func (h *DeleteMessageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	messageID := r.URL.Query().Get("messageId")
	if messageID == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, sdk.Envelope{
			Success: false,
			Message: "messageId query parameter is required",
		})
		return
	}

	if err := h.MessageService.Delete(ctx, userID, messageID); err != nil {
		switch {
		case errors.Is(err, service.ErrMessageNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, sdk.Envelope{
				Success: false,
				Message: "Message not found or already deleted",
			})
		default:
			log.Error("failed to delete message", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, sdk.Envelope{
				Success: false,
				Message: "Failed to delete message",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.Envelope{
		Success: true,
		Message: "Message deleted",
	})
}
