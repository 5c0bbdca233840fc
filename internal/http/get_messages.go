package http

import (
	"net/http"

	"github.com/murmurapp/murmur/internal/service"
	"github.com/murmurapp/murmur/pkg/httpx"
	"github.com/murmurapp/murmur/pkg/sdk"
	"github.com/murmurapp/murmur/pkg/slogx"
)

type GetMessagesHandler struct {
	MessageService *service.MessageService
}

// ServeHTTP godoc
//
//	@Summary		Get Messages Endpoint
//	@Description	List the authenticated user's received messages, newest first.
//	@Tags			Messages
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	sdk.MessagesResponse	"success, message, messages"
//	@Failure		401	{object}	sdk.Envelope			"success, message"
//	@Failure		500	{object}	sdk.Envelope			"success, message"
//	@Router			/v1/get-messages [get].
func (h *GetMessagesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	messages, err := h.MessageService.List(ctx, userID)
	if err != nil {
		log.Error("failed to list messages", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, sdk.Envelope{
			Success: false,
			Message: "Failed to fetch messages",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.MessagesResponse{
		Envelope: sdk.Envelope{Success: true, Message: "Messages fetched successfully"},
		Messages: toSDKMessages(messages),
	})
}
