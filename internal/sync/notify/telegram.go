package notify

import (
	"context"

	"notion-gcal-sync/internal/sync"
)

// Sender is the part of the Telegram bot the notifier uses.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type telegramNotifier struct {
	bot    Sender
	chatID int64
}

// NewTelegram reports failed runs to one Telegram chat.
func NewTelegram(bot Sender, chatID int64) sync.Notifier {
	return &telegramNotifier{bot: bot, chatID: chatID}
}

func (n *telegramNotifier) Notify(ctx context.Context, text string) error {
	return n.bot.SendMessage(ctx, n.chatID, text)
}
