package api

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"cover-meter/internal/domain/entity"
	"cover-meter/internal/domain/port"
	"cover-meter/internal/logger"
)

// Bot отправляет итог прогона в чат Telegram
type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewBot создаёт бота для стандартного API Telegram
func NewBot(token string, chatID int64) (*Bot, error) {
	return NewBotWithEndpoint(token, tgbotapi.APIEndpoint, chatID)
}

// NewBotWithEndpoint создаёт бота с другим адресом API (формат как у tgbotapi.APIEndpoint)
func NewBotWithEndpoint(token, endpoint string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}

	logger.WithField("account", api.Self.UserName).Info("Telegram notifier authorized")

	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

// Notify отправляет сводку одним сообщением
func (b *Bot) Notify(ctx context.Context, summary *entity.BatchRunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(b.chatID, summaryText(summary))
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("send summary: %w", err)
	}
	return nil
}

func summaryText(s *entity.BatchRunSummary) string {
	return fmt.Sprintf("🌿 Cover run %s\n\n%s", s.RunID, s.Details())
}

// Проверка реализации интерфейса
var _ port.SummaryNotifier = (*Bot)(nil)
