package game

import (
	"fmt"
	"log"

	"github.com/Rezateymoori/esm-famil-bot/internal/dict"
)

// PickCategory marks the category a player's next group message answers.
func (s *Service) PickCategory(chatID, playerID int64, category string) error {
	_, err := s.store.UpdateRoom(chatID, func(room *Room) error {
		round := room.Round
		if round == nil || round.Status != roundActive {
			return ErrRoundNotActive
		}
		if !room.Registered(playerID) {
			return ErrPlayerNotRegistered
		}
		if !round.HasCategory(category) {
			return ErrUnknownCategory
		}
		if room.Sequential && category != round.CurrentCategory() {
			return ErrCategoryNotOpen
		}
		if existing := round.Answer(playerID, category); existing != nil && existing.Text != "" {
			return ErrDuplicateSubmission
		}
		room.ActiveCategory[playerID] = category
		return nil
	})
	return err
}

// CancelPick clears a player's selected category without submitting.
func (s *Service) CancelPick(chatID, playerID int64) {
	_, _ = s.store.UpdateRoom(chatID, func(room *Room) error {
		delete(room.ActiveCategory, playerID)
		return nil
	})
}

// ActiveCategoryFor returns the category the player previously picked,
// if any.
func (s *Service) ActiveCategoryFor(chatID, playerID int64) (string, bool) {
	room, ok := s.store.GetRoom(chatID)
	if !ok {
		return "", false
	}
	category, ok := room.ActiveCategory[playerID]
	return category, ok
}

// Submit drives one candidate answer through the adjudication pipeline:
// exact dictionary match, then fuzzy match, then referee review. First
// match wins. The completion check runs on every status transition out
// of pending.
func (s *Service) Submit(chatID, playerID int64, category, text string) (*Answer, error) {
	normalized := dict.Normalize(text)
	var (
		answer  *Answer
		review  *ReviewRequest
		round   *Round
		outcome roundOutcome
	)
	room, err := s.store.UpdateRoom(chatID, func(room *Room) error {
		round = room.Round
		if round == nil || round.Status != roundActive {
			return ErrRoundNotActive
		}
		if !room.Registered(playerID) {
			return ErrPlayerNotRegistered
		}
		if normalized == "" {
			return ErrEmptyAnswer
		}
		if !round.HasCategory(category) {
			return ErrUnknownCategory
		}
		if room.Sequential && category != round.CurrentCategory() {
			return ErrCategoryNotOpen
		}
		if existing := round.Answer(playerID, category); existing != nil && existing.Text != "" {
			return ErrDuplicateSubmission
		}

		answer = &Answer{Text: normalized, SubmittedAt: timeNowUTC()}
		round.setAnswer(playerID, category, answer)
		delete(room.ActiveCategory, playerID)

		if s.dict.Contains(category, normalized) {
			answer.Status = StatusAccepted
			answer.Canonical = normalized
		} else if ok, canonical := dict.Match(normalized, s.dict.Words(category), s.cfg.FuzzyCutoff); ok {
			answer.Status = StatusAcceptedFuzzy
			answer.Canonical = canonical
		} else if s.referee != nil {
			answer.Status = StatusPending
			review = &ReviewRequest{
				RoomID:     chatID,
				RoomTitle:  room.Title,
				RefereeID:  room.OwnerID,
				PlayerID:   playerID,
				PlayerName: room.PlayerName(playerID),
				Category:   category,
				Text:       normalized,
			}
		} else {
			answer.Status = StatusRejected
		}

		if answer.Status != StatusPending {
			outcome = s.checkCompletion(room)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.persistAnswer(room, round, playerID, category, answer)
	name := room.PlayerName(playerID)
	switch answer.Status {
	case StatusAccepted:
		s.notify(chatID, fmt.Sprintf("✅ پاسخ %s برای «%s» معتبر است.", name, category))
	case StatusAcceptedFuzzy:
		s.notify(chatID, fmt.Sprintf("✅ پاسخ %s شبیه «%s» است (تطابق تقریبی).", name, answer.Canonical))
	case StatusRejected:
		s.notify(chatID, fmt.Sprintf("❌ پاسخ %s برای «%s» در فهرست نبود و داوری تنظیم نشده است.", name, category))
	case StatusPending:
		// handled below once the referee is reached
	}

	if review != nil {
		if err := s.referee.RequestReview(*review); err != nil {
			log.Printf("referee request failed chat_id=%d player_id=%d category=%s error=%v", chatID, playerID, category, err)
			return s.degradeReview(chatID, playerID, category)
		}
		s.notify(chatID, fmt.Sprintf("🕵️ پاسخ %s نیاز به بررسی دارد؛ به داور اطلاع داده شد.", name))
	}

	s.applyOutcome(room, outcome)
	return answer, nil
}

// degradeReview rejects a pending answer whose review request never
// reached the referee, so the round cannot hang on an unreachable human.
func (s *Service) degradeReview(chatID, playerID int64, category string) (*Answer, error) {
	var (
		answer  *Answer
		round   *Round
		outcome roundOutcome
	)
	room, err := s.store.UpdateRoom(chatID, func(room *Room) error {
		round = room.Round
		if round == nil {
			return ErrRoundNotActive
		}
		answer = round.Answer(playerID, category)
		if answer == nil || answer.Status != StatusPending {
			return ErrReviewNotFound
		}
		answer.Status = StatusRejected
		outcome = s.checkCompletion(room)
		return nil
	})
	if err != nil {
		return answer, err
	}
	s.persistAnswer(room, round, playerID, category, answer)
	s.notify(chatID, fmt.Sprintf("⚠️ پاسخ %s قابل ارسال به داور نبود و رد شد.", room.PlayerName(playerID)))
	s.applyOutcome(room, outcome)
	return answer, nil
}

// ResolveReview applies the referee's verdict. An acceptance writes the
// word into the category dictionary before anything is acknowledged, so
// future rounds treat it as canonical.
func (s *Service) ResolveReview(chatID, playerID int64, category string, accept bool) error {
	var (
		answer  *Answer
		round   *Round
		outcome roundOutcome
	)
	room, err := s.store.UpdateRoom(chatID, func(room *Room) error {
		round = room.Round
		if round == nil {
			return ErrReviewNotFound
		}
		answer = round.Answer(playerID, category)
		if answer == nil || answer.Status != StatusPending {
			return ErrReviewNotFound
		}
		if accept {
			answer.Status = StatusAccepted
			answer.Canonical = answer.Text
		} else {
			answer.Status = StatusRejected
		}
		outcome = s.checkCompletion(room)
		return nil
	})
	if err != nil {
		return err
	}

	if accept {
		if err := s.dict.Add(category, answer.Text); err != nil {
			log.Printf("dictionary write failed category=%s word=%s error=%v", category, answer.Text, err)
		}
	}
	s.persistAnswer(room, round, playerID, category, answer)
	s.persistEvent(room, "review_resolved", EventPayload{
		RoomID:   chatID,
		PlayerID: playerID,
		Category: category,
		Status:   answer.Status.String(),
		Word:     answer.Text,
	})
	if accept {
		s.notify(chatID, fmt.Sprintf("✅ پاسخ «%s» برای دسته «%s» توسط داور تأیید شد.", answer.Text, category))
	} else {
		s.notify(chatID, fmt.Sprintf("❌ پاسخ «%s» برای دسته «%s» توسط داور رد شد.", answer.Text, category))
	}
	s.applyOutcome(room, outcome)
	return nil
}
