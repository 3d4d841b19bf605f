package bot

import (
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Rezateymoori/esm-famil-bot/internal/game"
)

const (
	callbackPickCategory = "pickcat"
	callbackReviewAccept = "manualok"
	callbackReviewReject = "manualno"
	pickCancel           = "__cancel__"
)

// Bot wires the Telegram update stream into the game service. Updates
// are consumed sequentially on one goroutine, which is the ordering
// guarantee the service relies on.
type Bot struct {
	api       *tgbotapi.BotAPI
	svc       *game.Service
	transport game.Transport
}

// New authenticates against the Bot API. The service is attached with
// Bind once it has been constructed around this bot's transport.
func New(token string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{api: api, transport: &telegramTransport{api: api}}, nil
}

// Transport is the outbound side, for service construction.
func (b *Bot) Transport() game.Transport {
	return b.transport
}

// Bind attaches the service and installs this bot as its referee
// channel.
func (b *Bot) Bind(svc *game.Service) {
	b.svc = svc
	svc.SetReferee(&telegramReferee{api: b.api})
}

// Run consumes updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)
	log.Printf("bot started username=%s", b.api.Self.UserName)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		if update.Message.IsCommand() {
			b.handleCommand(update.Message)
		} else {
			b.handleGroupText(update.Message)
		}
	}
}

func displayName(user *tgbotapi.User) string {
	if user == nil {
		return ""
	}
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		name = user.UserName
	}
	return name
}

func isGroup(chat *tgbotapi.Chat) bool {
	return chat != nil && (chat.IsGroup() || chat.IsSuperGroup())
}
