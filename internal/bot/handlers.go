package bot

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Rezateymoori/esm-famil-bot/internal/game"
)

const groupOnlyNotice = "ℹ️ این دستور فقط در گروه کار می‌کند."

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	chatID := msg.Chat.ID
	playerID := msg.From.ID

	switch msg.Command() {
	case "start", "help":
		b.reply(chatID, "🎮 بازی اسم‌فامیل\n\n"+
			"/newgame — ساخت بازی در گروه\n"+
			"/join — ورود به بازی\n"+
			"/newround — شروع دور جدید (فقط سازنده)\n"+
			"/answer — انتخاب دسته برای پاسخ\n"+
			"/scores — جدول امتیازها")
	case "newgame":
		if !isGroup(msg.Chat) {
			b.reply(chatID, groupOnlyNotice)
			return
		}
		b.svc.CreateRoom(chatID, msg.Chat.Title, playerID, displayName(msg.From))
	case "join":
		if !isGroup(msg.Chat) {
			b.reply(chatID, groupOnlyNotice)
			return
		}
		if err := b.svc.Join(chatID, playerID, displayName(msg.From)); err != nil {
			b.reply(chatID, errorNotice(err))
		}
	case "newround":
		if !isGroup(msg.Chat) {
			b.reply(chatID, groupOnlyNotice)
			return
		}
		if err := b.svc.StartRound(chatID, playerID); err != nil {
			b.reply(chatID, errorNotice(err))
		}
	case "answer":
		if !isGroup(msg.Chat) {
			b.reply(chatID, groupOnlyNotice)
			return
		}
		b.sendCategoryMenu(chatID, playerID, displayName(msg.From))
	case "scores":
		if !isGroup(msg.Chat) {
			b.reply(chatID, groupOnlyNotice)
			return
		}
		board, err := b.svc.Scoreboard(chatID)
		if err != nil {
			b.reply(chatID, errorNotice(err))
			return
		}
		b.reply(chatID, board)
	}
}

// sendCategoryMenu offers the caller the categories still open for them,
// plus a cancel button. The caller's id is baked into the callback data
// so nobody else can press their keyboard.
func (b *Bot) sendCategoryMenu(chatID, playerID int64, name string) {
	open, err := b.svc.OpenCategories(chatID, playerID)
	if err != nil {
		b.reply(chatID, errorNotice(err))
		return
	}
	if len(open) == 0 {
		b.reply(chatID, fmt.Sprintf("✅ %s، شما همه دسته‌های باز را پاسخ داده‌اید.", name))
		return
	}
	options := make([]game.MenuOption, 0, len(open)+1)
	for _, category := range open {
		options = append(options, game.MenuOption{
			Label: category,
			Data:  pickCallbackData(chatID, playerID, category),
		})
	}
	options = append(options, game.MenuOption{
		Label: "انصراف",
		Data:  pickCallbackData(chatID, playerID, pickCancel),
	})
	text := fmt.Sprintf("%s، برای کدام دسته پاسخ می‌دهید؟", name)
	if err := b.transport.SendMenu(chatID, text, options); err != nil {
		log.Printf("send category menu failed chat_id=%d player_id=%d error=%v", chatID, playerID, err)
	}
}

// handleGroupText treats a plain group message from a player with a
// picked category as their answer. The message is deleted so other
// players cannot copy it before adjudication is announced.
func (b *Bot) handleGroupText(msg *tgbotapi.Message) {
	if msg.From == nil || !isGroup(msg.Chat) {
		return
	}
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}
	chatID := msg.Chat.ID
	playerID := msg.From.ID
	category, ok := b.svc.ActiveCategoryFor(chatID, playerID)
	if !ok {
		// A playing participant who skipped /answer gets warned; anyone
		// else is just chatting.
		open, err := b.svc.OpenCategories(chatID, playerID)
		if err != nil || len(open) == 0 {
			return
		}
		b.deleteMessage(chatID, msg.MessageID)
		b.reply(chatID, fmt.Sprintf("⚠️ %s، ابتدا باید دسته را با /answer انتخاب کنید.", displayName(msg.From)))
		return
	}
	b.deleteMessage(chatID, msg.MessageID)
	if _, err := b.svc.Submit(chatID, playerID, category, text); err != nil {
		b.reply(chatID, errorNotice(err))
	}
}

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.From == nil {
		return
	}
	parts := strings.SplitN(callback.Data, ":", 4)
	if len(parts) != 4 {
		b.ackCallback(callback.ID, "")
		return
	}
	chatID, errChat := strconv.ParseInt(parts[1], 10, 64)
	playerID, errPlayer := strconv.ParseInt(parts[2], 10, 64)
	if errChat != nil || errPlayer != nil {
		b.ackCallback(callback.ID, "")
		return
	}
	category := parts[3]

	switch parts[0] {
	case callbackPickCategory:
		if callback.From.ID != playerID {
			b.ackCallback(callback.ID, "این کیبورد برای شما نیست.")
			return
		}
		b.handlePick(callback, chatID, playerID, category)
	case callbackReviewAccept:
		b.handleReview(callback, chatID, playerID, category, true)
	case callbackReviewReject:
		b.handleReview(callback, chatID, playerID, category, false)
	default:
		b.ackCallback(callback.ID, "")
	}
}

func (b *Bot) handlePick(callback *tgbotapi.CallbackQuery, chatID, playerID int64, category string) {
	if category == pickCancel {
		b.svc.CancelPick(chatID, playerID)
		b.ackCallback(callback.ID, "")
		b.editCallbackMessage(callback, "انتخاب دسته لغو شد.")
		return
	}
	if err := b.svc.PickCategory(chatID, playerID, category); err != nil {
		b.ackCallback(callback.ID, errorNotice(err))
		return
	}
	b.ackCallback(callback.ID, "")
	b.editCallbackMessage(callback, fmt.Sprintf("✍️ دسته «%s» انتخاب شد؛ حالا پاسخ را در گروه بفرستید.", category))
}

func (b *Bot) handleReview(callback *tgbotapi.CallbackQuery, chatID, playerID int64, category string, accept bool) {
	if err := b.svc.ResolveReview(chatID, playerID, category, accept); err != nil {
		b.ackCallback(callback.ID, errorNotice(err))
		return
	}
	b.ackCallback(callback.ID, "")
	verdict := "❌ پاسخ رد شد."
	if accept {
		verdict = "✅ پاسخ تأیید شد و به فهرست کلمات اضافه شد."
	}
	b.editCallbackMessage(callback, verdict)
}

func (b *Bot) ackCallback(id, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("callback ack failed error=%v", err)
	}
}

// editCallbackMessage replaces the keyboard message with its outcome so
// the buttons cannot be pressed twice.
func (b *Bot) editCallbackMessage(callback *tgbotapi.CallbackQuery, text string) {
	if callback.Message == nil {
		return
	}
	ref := game.MessageRef{ChatID: callback.Message.Chat.ID, MessageID: callback.Message.MessageID}
	if err := b.transport.EditMessage(ref, text); err != nil {
		log.Printf("edit callback message failed chat_id=%d message_id=%d error=%v", ref.ChatID, ref.MessageID, err)
	}
}

func (b *Bot) deleteMessage(chatID int64, messageID int) {
	if err := b.transport.DeleteMessage(game.MessageRef{ChatID: chatID, MessageID: messageID}); err != nil {
		log.Printf("delete answer message failed chat_id=%d message_id=%d error=%v", chatID, messageID, err)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	if err := b.transport.SendText(chatID, text); err != nil {
		log.Printf("send reply failed chat_id=%d error=%v", chatID, err)
	}
}

func pickCallbackData(chatID, playerID int64, category string) string {
	return fmt.Sprintf("%s:%d:%d:%s", callbackPickCategory, chatID, playerID, category)
}

// errorNotice maps service errors onto the player-facing Persian notices.
func errorNotice(err error) string {
	switch {
	case errors.Is(err, game.ErrRoomNotFound):
		return "ℹ️ هنوز بازی‌ای در این گروه ساخته نشده است. با /newgame شروع کنید."
	case errors.Is(err, game.ErrRoundNotActive):
		return "ℹ️ الان دوری در جریان نیست. سازنده می‌تواند با /newround شروع کند."
	case errors.Is(err, game.ErrRoundInProgress):
		return "⏳ دور در جریان است؛ بعد از پایان دور دوباره تلاش کنید."
	case errors.Is(err, game.ErrPlayerNotRegistered):
		return "ℹ️ اول با /join وارد بازی شوید."
	case errors.Is(err, game.ErrAlreadyRegistered):
		return "ℹ️ شما قبلاً وارد بازی شده‌اید."
	case errors.Is(err, game.ErrDuplicateSubmission):
		return "⚠️ برای این دسته قبلاً پاسخ داده‌اید."
	case errors.Is(err, game.ErrEmptyAnswer):
		return "⚠️ پاسخ خالی پذیرفته نمی‌شود."
	case errors.Is(err, game.ErrUnknownCategory):
		return "⚠️ این دسته در دور فعلی نیست."
	case errors.Is(err, game.ErrCategoryNotOpen):
		return "⚠️ نوبت این دسته هنوز نرسیده است."
	case errors.Is(err, game.ErrNotOwner):
		return "⛔ فقط سازنده بازی می‌تواند دور را شروع کند."
	case errors.Is(err, game.ErrNoPlayers):
		return "ℹ️ هنوز بازیکنی وارد نشده است."
	case errors.Is(err, game.ErrReviewNotFound):
		return "ℹ️ این پاسخ قبلاً رسیدگی شده است."
	default:
		return "⚠️ خطایی رخ داد؛ دوباره تلاش کنید."
	}
}
