package game

import (
	"log"
	"time"
)

func (s *Service) scheduleRoundTimer(chatID int64, serial int) {
	duration := time.Duration(s.cfg.RoundSeconds) * time.Second
	if duration <= 0 {
		s.cancelRoundTimer(chatID)
		return
	}
	s.timersMu.Lock()
	if existing, ok := s.timers[chatID]; ok {
		existing.Stop()
	}
	s.timers[chatID] = time.AfterFunc(duration, func() {
		s.timeoutRound(chatID, serial)
	})
	s.timersMu.Unlock()
}

func (s *Service) cancelRoundTimer(chatID int64) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	if timer, ok := s.timers[chatID]; ok {
		timer.Stop()
		delete(s.timers, chatID)
	}
}

// timeoutRound fires when the round duration elapses. The serial check
// makes a timer left over from an earlier round a no-op, so a stale
// timeout can never close the wrong round.
func (s *Service) timeoutRound(chatID int64, serial int) {
	var out roundOutcome
	room, err := s.store.UpdateRoom(chatID, func(room *Room) error {
		if room.Round == nil || room.RoundSerial != serial || room.Round.Status != roundActive {
			return ErrRoundNotActive
		}
		s.lockRound(room, "timeout", &out)
		if !hasPending(room) {
			s.closeRound(room, &out)
		}
		return nil
	})
	if err != nil {
		return
	}
	log.Printf("round timed out chat_id=%d serial=%d closed=%v", chatID, serial, out.closed)
	s.notify(chatID, "⏰ زمان این دور تمام شد!")
	if !out.closed {
		s.notify(chatID, "🕵️ چند پاسخ هنوز منتظر نظر داور است؛ نتیجه بعد از داوری اعلام می‌شود.")
	}
	s.persistEvent(room, "round_locked", EventPayload{
		RoomID:      chatID,
		RoundNumber: serial,
		Reason:      out.lockReason,
	})
	s.applyOutcome(room, out)
}
