package notify

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"

	"github.com/ESChernov/steamrent/internal/service/rentalservice"
)

type fakeBot struct {
	sent []tgbotapi.Chattable
	err  error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if b.err != nil {
		return tgbotapi.Message{}, b.err
	}
	b.sent = append(b.sent, c)
	return tgbotapi.Message{}, nil
}

func TestSendToRenter(t *testing.T) {
	bot := &fakeBot{}
	notifier := &TelegramNotifier{bot: bot, operatorChatID: 42}

	err := notifier.Send(context.Background(), "123456", "your code")
	assert.NoError(t, err)
	assert.Len(t, bot.sent, 1)

	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	assert.True(t, ok)
	assert.Equal(t, int64(123456), msg.ChatID)
	assert.Equal(t, "your code", msg.Text)
}

func TestSendToChannel(t *testing.T) {
	bot := &fakeBot{}
	notifier := &TelegramNotifier{bot: bot}

	err := notifier.Send(context.Background(), "@renters", "hello")
	assert.NoError(t, err)
	assert.Len(t, bot.sent, 1)

	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	assert.True(t, ok)
	assert.Equal(t, "@renters", msg.ChannelUsername)
}

func TestSendToOperator(t *testing.T) {
	bot := &fakeBot{}
	notifier := &TelegramNotifier{bot: bot, operatorChatID: 42}

	err := notifier.Send(context.Background(), rentalservice.OperatorRecipient, "alert")
	assert.NoError(t, err)
	assert.Len(t, bot.sent, 1)

	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	assert.True(t, ok)
	assert.Equal(t, int64(42), msg.ChatID)
}

func TestSendToOperatorUnconfigured(t *testing.T) {
	notifier := &TelegramNotifier{bot: &fakeBot{}}

	err := notifier.Send(context.Background(), rentalservice.OperatorRecipient, "alert")
	assert.ErrorIs(t, err, ErrNoOperatorChat)
}

func TestSendInvalidRecipient(t *testing.T) {
	notifier := &TelegramNotifier{bot: &fakeBot{}}

	err := notifier.Send(context.Background(), "not-a-chat-id", "hello")
	assert.Error(t, err)
}

func TestSendDeliveryError(t *testing.T) {
	notifier := &TelegramNotifier{bot: &fakeBot{err: errors.New("telegram down")}}

	err := notifier.Send(context.Background(), "123", "hello")
	assert.Error(t, err)
}

func TestLogNotifier(t *testing.T) {
	err := LogNotifier{}.Send(context.Background(), "123", "hello")
	assert.NoError(t, err)
}
