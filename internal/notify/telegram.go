package notify

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ESChernov/steamrent/internal/service/rentalservice"
)

// BotAPI is the slice of tgbotapi.BotAPI the notifier needs.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

var ErrNoOperatorChat = errors.New("operator chat is not configured")

// TelegramNotifier delivers rental messages over Telegram. Renters are
// addressed by their chat id (or @channel), the reserved operator recipient
// goes to the configured operator chat.
type TelegramNotifier struct {
	bot            BotAPI
	operatorChatID int64
}

func NewTelegram(token string, operatorChatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	zap.L().Info("Telegram notifier ready", zap.String("bot", bot.Self.UserName))

	return &TelegramNotifier{
		bot:            bot,
		operatorChatID: operatorChatID,
	}, nil
}

func (n *TelegramNotifier) Send(_ context.Context, recipient string, message string) error {
	if recipient == rentalservice.OperatorRecipient {
		if n.operatorChatID == 0 {
			return ErrNoOperatorChat
		}
		_, err := n.bot.Send(tgbotapi.NewMessage(n.operatorChatID, message))
		return err
	}

	if strings.HasPrefix(recipient, "@") {
		_, err := n.bot.Send(tgbotapi.NewMessageToChannel(recipient, message))
		return err
	}

	chatID, err := strconv.ParseInt(recipient, 10, 64)
	if err != nil {
		return errors.New("recipient must be a chat id or @channel")
	}
	_, err = n.bot.Send(tgbotapi.NewMessage(chatID, message))
	return err
}

// LogNotifier is the fallback used when no Telegram token is configured:
// messages are only written to the log.
type LogNotifier struct{}

func (LogNotifier) Send(_ context.Context, recipient string, message string) error {
	zap.L().Info("notification", zap.String("recipient", recipient), zap.String("message", message))
	return nil
}
