package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/murmurapp/murmur/internal/domain"
	"github.com/murmurapp/murmur/internal/service"
	"github.com/murmurapp/murmur/pkg/httpx"
	"github.com/murmurapp/murmur/pkg/sdk"
	"github.com/murmurapp/murmur/pkg/slogx"
)

type SendMessageHandler struct {
	MessageService *service.MessageService
}

// ServeHTTP godoc
//
//	@Summary		Send Message Endpoint
//	@Description	Deliver an anonymous message to a user. The sender needs no
//	@Description	account; the recipient must exist and be accepting messages.
//	@Description	Responds with the recipient's updated message collection.
//	@Tags			Messages
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.SendMessageRequest	true	"username, content"
//	@Success		201		{object}	sdk.MessagesResponse	"success, message, messages"
//	@Failure		400		{object}	sdk.Envelope			"success, message"
//	@Failure		403		{object}	sdk.Envelope			"success, message"
//	@Failure		404		{object}	sdk.Envelope			"success, message"
//	@Failure		500		{object}	sdk.Envelope			"success, message"
//	@Router			/v1/send-message [post].
func (h *SendMessageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req sdk.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, sdk.Envelope{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	messages, err := h.MessageService.Submit(ctx, req.Username, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidContent):
			httpx.WriteJSON(w, http.StatusBadRequest, sdk.Envelope{
				Success: false,
				Message: "Message content must be between 5 and 300 characters",
			})
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, sdk.Envelope{
				Success: false,
				Message: "User not found",
			})
		case errors.Is(err, service.ErrNotAccepting):
			httpx.WriteJSON(w, http.StatusForbidden, sdk.Envelope{
				Success: false,
				Message: "User is not accepting messages",
			})
		default:
			log.Error("failed to send message", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, sdk.Envelope{
				Success: false,
				Message: "Failed to send message",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, sdk.MessagesResponse{
		Envelope: sdk.Envelope{Success: true, Message: "Message sent successfully"},
		Messages: toSDKMessages(messages),
	})
}

func toSDKMessages(messages []domain.Message) []sdk.Message {
	out := make([]sdk.Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, sdk.Message{
			ID:        m.ID,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}
