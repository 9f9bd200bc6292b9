package api

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/portfolio-site/backend/errs"
	"github.com/portfolio-site/backend/metrics"
)

// likeNotifier relays the fixed like message to an external chat.
// *services.TelegramNotifier satisfies it.
type likeNotifier interface {
	Configured() bool
	SendMessage(ctx context.Context, text string) error
}

type likeHandler struct {
	responder Responder
	logger    zerolog.Logger
	notifier  likeNotifier
}

func newLikeHandler(notifier likeNotifier) likeHandler {
	logger := log.With().Str("handlerName", "likeHandler").Logger()

	return likeHandler{
		responder: NewResponder(logger),
		logger:    logger,
		notifier:  notifier,
	}
}

// sendLike fires the one-shot like notification. Nothing is persisted; a
// visitor clearing local storage can trigger it again.
func (h likeHandler) sendLike(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.notifier.Configured() {
			metrics.IncrementLikeNotification("unconfigured")
			h.responder.WriteError(w, errs.NewNotifierNotConfiguredError("Telegram bot token or chat ID not found"))
			return
		}

		if err := h.notifier.SendMessage(r.Context(), message); err != nil {
			metrics.IncrementLikeNotification("failed")
			h.responder.WriteError(w, errs.NewNotifierDeliveryError("Failed to send like message", err))
			return
		}

		metrics.IncrementLikeNotification("success")
		h.responder.WriteJSON(w, map[string]string{
			"message": "Like message sent successfully",
		})
	}
}
