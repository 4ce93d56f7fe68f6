package http

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/okruta/routelog/internal/adapters/telegram"
	"github.com/okruta/routelog/internal/core/domain"
	"github.com/okruta/routelog/internal/pkg/metrics"
)

// WebhookHandler receives Telegram updates. The bot token doubles as the
// webhook path secret. Processing happens in the background so the webhook
// always acknowledges fast; Telegram retries on anything but a 200.
func WebhookHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Params("token")
		if subtle.ConstantTimeCompare([]byte(token), []byte(deps.WebhookToken)) != 1 {
			return errUnauthorized(c, "unknown webhook token")
		}

		var update telegram.Update
		if err := json.Unmarshal(c.Body(), &update); err != nil {
			return errBadRequest(c, "invalid update payload")
		}

		if update.Message == nil || update.Message.Text == "" {
			return c.SendStatus(fiber.StatusOK)
		}

		msg := domain.InboundMessage{
			ConversationID: update.Message.Chat.ID,
			Timestamp:      update.Message.Date,
			Text:           update.Message.Text,
		}
		metrics.MessagesProcessed.WithLabelValues(domain.CommandKind(domain.ParseCommand(msg.Text))).Inc()

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := deps.Routes.HandleMessage(ctx, msg); err != nil {
				slog.Error("handle message",
					"conversation_id", msg.ConversationID,
					"error", err)
			}
		}()

		return c.SendStatus(fiber.StatusOK)
	}
}
