package notification

import (
	"context"
	"fmt"

	"github.com/CheesyTech/booking/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const messageTimeLayout = "02.01.2006 15:04"

// TelegramNotifier sends human-readable booking alerts to an operator chat.
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

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	n.send(ctx, fmt.Sprintf(
		"*New booking*\n\nResource: %s\nRequester: %s\nSlot (UTC): %s - %s",
		b.ResourceRef, b.RequesterRef,
		b.StartTime.UTC().Format(messageTimeLayout),
		b.EndTime.UTC().Format(messageTimeLayout),
	))
}

func (n *TelegramNotifier) NotifyBookingUpdated(ctx context.Context, b *domain.Booking) {
	n.send(ctx, fmt.Sprintf(
		"*Booking rescheduled*\n\nResource: %s\nNew slot (UTC): %s - %s",
		b.ResourceRef,
		b.StartTime.UTC().Format(messageTimeLayout),
		b.EndTime.UTC().Format(messageTimeLayout),
	))
}

func (n *TelegramNotifier) NotifyBookingDeleted(ctx context.Context, b *domain.Booking) {
	n.send(ctx, fmt.Sprintf(
		"*Booking deleted*\n\nResource: %s\nSlot (UTC): %s - %s",
		b.ResourceRef,
		b.StartTime.UTC().Format(messageTimeLayout),
		b.EndTime.UTC().Format(messageTimeLayout),
	))
}

func (n *TelegramNotifier) NotifyStatusChanged(ctx context.Context, b *domain.Booking, newStatus domain.BookingStatus) {
	text := fmt.Sprintf(
		"*Booking status changed*\n\nResource: %s\nStatus: %s",
		b.ResourceRef, newStatus.Status,
	)
	if newStatus.Reason != "" {
		text += "\nReason: " + newStatus.Reason
	}
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
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
