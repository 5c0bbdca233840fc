package http

import (
	"errors"
	"net/http"

	"github.com/murmurapp/murmur/internal/service"
	"github.com/murmurapp/murmur/pkg/httpx"
	"github.com/murmurapp/murmur/pkg/sdk"
	"github.com/murmurapp/murmur/pkg/slogx"
)

type SuggestMessagesHandler struct {
	SuggestService *service.SuggestService
}

// ServeHTTP godoc
//
//	@Summary		Suggest Messages Endpoint
//	@Description	Generate three open-ended message suggestions as a single
//	@Description	"||"-delimited string.
//	@Tags			Messages
//	@Produce		json
//	@Success		200	{object}	sdk.SuggestionsResponse	"success, message, messages"
//	@Failure		502	{object}	sdk.Envelope			"success, message"
//	@Router			/v1/suggest-messages [post].
func (h *SuggestMessagesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	suggestions, err := h.SuggestService.Suggest(ctx)
	if err != nil {
		if errors.Is(err, service.ErrSuggestUnavailable) {
			httpx.WriteJSON(w, http.StatusBadGateway, sdk.Envelope{
				Success: false,
				Message: "Suggestion service is unavailable",
			})
			return
		}

		log.Error("failed to generate suggestions", "err", err)
		httpx.WriteJSON(w, http.StatusBadGateway, sdk.Envelope{
			Success: false,
			Message: "Failed to generate suggestions",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.SuggestionsResponse{
		Envelope: sdk.Envelope{Success: true, Message: "Suggestions generated"},
		Messages: suggestions,
	})
}
