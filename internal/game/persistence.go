package game

import (
	"encoding/json"
	"log"
	"time"

	"github.com/Rezateymoori/esm-famil-bot/internal/db"

	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// The audit database is optional and every write is best-effort: a nil
// connection or a failed write never blocks adjudication or scoring.

func (s *Service) persistRoom(room *Room) {
	if s.db == nil {
		return
	}
	record := db.Room{
		ChatID:  room.ChatID,
		Title:   room.Title,
		OwnerID: room.OwnerID,
	}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		log.Printf("persist room failed chat_id=%d error=%v", room.ChatID, err)
		return
	}
	if record.ID == 0 {
		var existing db.Room
		if err := s.db.Where("chat_id = ?", room.ChatID).First(&existing).Error; err != nil {
			log.Printf("lookup room failed chat_id=%d error=%v", room.ChatID, err)
			return
		}
		record.ID = existing.ID
	}
	room.DBID = record.ID
}

func (s *Service) persistPlayer(room *Room, player *Player) {
	if s.db == nil || player == nil {
		return
	}
	if player.DBID != 0 {
		return
	}
	if room.DBID == 0 {
		s.persistRoom(room)
		if room.DBID == 0 {
			return
		}
	}
	record := db.Player{
		RoomID:     room.DBID,
		TelegramID: player.ID,
		Name:       player.Name,
		JoinedAt:   time.Now().UTC(),
	}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		log.Printf("persist player failed chat_id=%d player_id=%d error=%v", room.ChatID, player.ID, err)
		return
	}
	if record.ID == 0 {
		var existing db.Player
		if err := s.db.Where("room_id = ? AND telegram_id = ?", room.DBID, player.ID).First(&existing).Error; err != nil {
			return
		}
		record.ID = existing.ID
	}
	player.DBID = record.ID
}

func (s *Service) persistRound(room *Room, round *Round) {
	if s.db == nil || round == nil {
		return
	}
	if room.DBID == 0 {
		s.persistRoom(room)
		if room.DBID == 0 {
			return
		}
	}
	record := db.Round{
		RoomID: room.DBID,
		Number: round.Number,
		Letter: round.Letter,
		Status: round.Status,
	}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		log.Printf("persist round failed chat_id=%d round=%d error=%v", room.ChatID, round.Number, err)
		return
	}
	round.DBID = record.ID
}

func (s *Service) persistAnswer(room *Room, round *Round, playerID int64, category string, answer *Answer) {
	if s.db == nil || answer == nil || round == nil {
		return
	}
	if round.DBID == 0 {
		s.persistRound(room, round)
		if round.DBID == 0 {
			return
		}
	}
	playerDBID := s.playerDBID(room, playerID)
	if playerDBID == 0 {
		return
	}
	if answer.DBID != 0 {
		err := s.db.Model(&db.Answer{}).
			Where("id = ?", answer.DBID).
			Updates(map[string]any{
				"status":    answer.Status.String(),
				"canonical": answer.Canonical,
			}).Error
		if err != nil {
			log.Printf("update answer failed chat_id=%d player_id=%d category=%s error=%v", room.ChatID, playerID, category, err)
		}
		return
	}
	record := db.Answer{
		RoundID:     round.DBID,
		PlayerID:    playerDBID,
		Category:    category,
		Text:        answer.Text,
		Canonical:   answer.Canonical,
		Status:      answer.Status.String(),
		SubmittedAt: answer.SubmittedAt,
	}
	if record.SubmittedAt.IsZero() {
		record.SubmittedAt = time.Now().UTC()
	}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		log.Printf("persist answer failed chat_id=%d player_id=%d category=%s error=%v", room.ChatID, playerID, category, err)
		return
	}
	answer.DBID = record.ID
}

// persistRoundClosed records the auto-filled answers, final status and
// totals after a round closes. The room has already rolled over, so the
// closed round travels in the outcome.
func (s *Service) persistRoundClosed(room *Room, out roundOutcome) {
	if s.db == nil {
		return
	}
	if out.round != nil {
		for _, player := range room.Players {
			for category, answer := range out.round.Answers[player.ID] {
				if answer.DBID == 0 {
					s.persistAnswer(room, out.round, player.ID, category, answer)
				}
			}
		}
	}
	if room.DBID != 0 {
		err := s.db.Model(&db.Round{}).
			Where("room_id = ? AND number = ?", room.DBID, out.roundNumber).
			Update("status", "closed").Error
		if err != nil {
			log.Printf("close round failed chat_id=%d round=%d error=%v", room.ChatID, out.roundNumber, err)
		}
	}
	for _, player := range room.Players {
		if player.DBID == 0 {
			continue
		}
		err := s.db.Model(&db.Player{}).
			Where("id = ?", player.DBID).
			Update("total_score", room.Totals[player.ID]).Error
		if err != nil {
			log.Printf("update total failed chat_id=%d player_id=%d error=%v", room.ChatID, player.ID, err)
		}
		s.persistEvent(room, "round_scored", EventPayload{
			RoomID:      room.ChatID,
			PlayerID:    player.ID,
			PlayerName:  player.Name,
			RoundNumber: out.roundNumber,
			Points:      out.scores[player.ID],
		})
	}
}

func (s *Service) persistEvent(room *Room, eventType string, payload EventPayload) {
	if s.db == nil {
		return
	}
	if room.DBID == 0 {
		s.persistRoom(room)
		if room.DBID == 0 {
			return
		}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("encode event failed type=%s error=%v", eventType, err)
		return
	}
	record := db.Event{
		RoomID:  room.DBID,
		Type:    eventType,
		Payload: datatypes.JSON(raw),
	}
	if err := s.db.Create(&record).Error; err != nil {
		log.Printf("persist event failed chat_id=%d type=%s error=%v", room.ChatID, eventType, err)
	}
}

func (s *Service) playerDBID(room *Room, playerID int64) uint {
	for i := range room.Players {
		if room.Players[i].ID == playerID {
			if room.Players[i].DBID == 0 {
				s.persistPlayer(room, &room.Players[i])
			}
			return room.Players[i].DBID
		}
	}
	return 0
}
