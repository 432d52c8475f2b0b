package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramService pushes approve/decline decisions into the partners
// channel. Outbound only.
type TelegramService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramService returns nil when no token is configured; callers treat
// a nil service as "notifications disabled".
func NewTelegramService(botToken string, chatID int64) *TelegramService {
	if botToken == "" || chatID == 0 {
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("[tg] bot init failed, notifications disabled: %v", err)
		return nil
	}
	return &TelegramService{bot: bot, chatID: chatID}
}

func (t *TelegramService) NotifyPartners(text string) error {
	if t == nil {
		return nil
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}
