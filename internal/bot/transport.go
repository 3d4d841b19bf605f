package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Rezateymoori/esm-famil-bot/internal/game"
)

// telegramTransport adapts the Bot API to the game.Transport interface.
type telegramTransport struct {
	api *tgbotapi.BotAPI
}

func (t *telegramTransport) SendText(chatID int64, text string) error {
	_, err := t.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (t *telegramTransport) SendMenu(chatID int64, text string, options []game.MenuOption) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = menuKeyboard(options)
	_, err := t.api.Send(msg)
	return err
}

func (t *telegramTransport) DeleteMessage(ref game.MessageRef) error {
	_, err := t.api.Request(tgbotapi.NewDeleteMessage(ref.ChatID, ref.MessageID))
	return err
}

func (t *telegramTransport) EditMessage(ref game.MessageRef, text string) error {
	_, err := t.api.Send(tgbotapi.NewEditMessageText(ref.ChatID, ref.MessageID, text))
	return err
}

// menuKeyboard lays options out one button per row so Persian labels
// stay readable.
func menuKeyboard(options []game.MenuOption) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options))
	for _, option := range options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option.Label, option.Data),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
