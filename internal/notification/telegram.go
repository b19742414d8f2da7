package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/s448/event-horizon/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts booking activity to the operator chat. With an
// empty token the notifier constructs in disabled mode and drops messages.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, principal domain.Principal, event domain.Event) {
	text := fmt.Sprintf(
		"*New booking*\n\nEvent: %s\nVenue: %s\nDate (UTC): %s\nBooked by: %s",
		event.Name, event.Venue,
		event.OccursAt.Format("02.01.2006 15:04"),
		principal.DisplayName,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, principal domain.Principal, event domain.Event) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\nEvent: %s\nDate (UTC): %s\nCancelled by: %s",
		event.Name,
		event.OccursAt.Format("02.01.2006 15:04"),
		principal.DisplayName,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
