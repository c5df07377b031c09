// Package bot связывает Telegram Bot API со сценарием диалога.
package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/susuregis/Chatbot/internal/dialogue"
)

// Sender отправляет сообщения в Telegram. Реализуется *tgbotapi.BotAPI.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Conversation обрабатывает входящее сообщение и возвращает ответы.
type Conversation interface {
	Handle(ctx context.Context, in dialogue.Input) []dialogue.Reply
}

// Bot принимает обновления Telegram и отвечает по сценарию диалога.
type Bot struct {
	api          Sender
	conversation Conversation
	log          logrus.FieldLogger
}

// New создает бота.
func New(api Sender, conversation Conversation, log logrus.FieldLogger) *Bot {
	return &Bot{api: api, conversation: conversation, log: log}
}

// Run обрабатывает обновления по одному, пока не закроется канал или не отменится ctx.
// Последовательная обработка гарантирует порядок сообщений внутри одного чата.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate обрабатывает одно обновление. Все, кроме сообщений, игнорируется.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return
	}

	in := toInput(msg)
	for _, reply := range b.conversation.Handle(ctx, in) {
		if _, err := b.api.Send(toMessage(in.ChatID, reply)); err != nil {
			b.log.WithError(err).WithField("chat_id", in.ChatID).Error("не удалось отправить сообщение")
		}
	}
}

func toInput(msg *tgbotapi.Message) dialogue.Input {
	in := dialogue.Input{
		ChatID: msg.Chat.ID,
		Text:   msg.Text,
	}
	if msg.IsCommand() {
		in.Command = strings.ToLower(msg.Command())
	}
	if msg.From != nil {
		in.DisplayName = strings.TrimSpace(msg.From.FirstName + " " + msg.From.LastName)
	}
	return in
}

func toMessage(chatID int64, reply dialogue.Reply) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if reply.Markdown {
		msg.ParseMode = tgbotapi.ModeMarkdown
	}
	if len(reply.Keyboard) > 0 {
		rows := make([][]tgbotapi.KeyboardButton, 0, len(reply.Keyboard))
		for _, row := range reply.Keyboard {
			buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
			for _, label := range row {
				buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
			}
			rows = append(rows, tgbotapi.NewKeyboardButtonRow(buttons...))
		}
		keyboard := tgbotapi.NewReplyKeyboard(rows...)
		keyboard.OneTimeKeyboard = true
		keyboard.ResizeKeyboard = true
		msg.ReplyMarkup = keyboard
	}
	return msg
}
