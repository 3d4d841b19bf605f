package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Rezateymoori/esm-famil-bot/internal/game"
)

// telegramReferee DMs the room owner an accept/reject keyboard for an
// answer neither dictionary check could judge.
type telegramReferee struct {
	api *tgbotapi.BotAPI
}

func (r *telegramReferee) RequestReview(req game.ReviewRequest) error {
	title := req.RoomTitle
	if title == "" {
		title = fmt.Sprintf("%d", req.RoomID)
	}
	text := fmt.Sprintf(
		"📩 درخواست تأیید پاسخ\n\nگروه: %s\nبازیکن: %s\nدسته: %s\nپاسخ: «%s»\n\nآیا این پاسخ را تأیید می‌کنید؟",
		title, req.PlayerName, req.Category, req.Text,
	)
	msg := tgbotapi.NewMessage(req.RefereeID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ درست", reviewCallbackData(callbackReviewAccept, req)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ غلط", reviewCallbackData(callbackReviewReject, req)),
		),
	)
	_, err := r.api.Send(msg)
	return err
}

func reviewCallbackData(prefix string, req game.ReviewRequest) string {
	return fmt.Sprintf("%s:%d:%d:%s", prefix, req.RoomID, req.PlayerID, req.Category)
}
