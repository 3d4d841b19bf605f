package game

import (
	"fmt"
	"strings"
)

// CreateRoom makes the room for a chat if it does not exist, registering
// the creator as owner and first player.
func (s *Service) CreateRoom(chatID int64, title string, ownerID int64, ownerName string) *Room {
	room, created := s.store.EnsureRoom(chatID, title, ownerID, ownerName)
	if !created {
		s.notify(chatID, "ℹ️ بازی این گروه از قبل ساخته شده است. با /join وارد شوید.")
		return room
	}
	room.Sequential = s.cfg.SequentialCategories
	s.persistRoom(room)
	s.persistPlayer(room, &room.Players[0])
	s.persistEvent(room, "room_created", EventPayload{
		RoomID:     chatID,
		PlayerID:   ownerID,
		PlayerName: ownerName,
	})
	s.notify(chatID, fmt.Sprintf("🎮 بازی اسم‌فامیل ساخته شد!\nسازنده: %s\nبا /join وارد بازی شوید و سازنده با /newround دور را شروع می‌کند.", ownerName))
	return room
}

// Join registers a player. Registration is only open between rounds.
func (s *Service) Join(chatID, playerID int64, name string) error {
	var joined *Player
	room, err := s.store.UpdateRoom(chatID, func(room *Room) error {
		if room.Registered(playerID) {
			return ErrAlreadyRegistered
		}
		if room.Round != nil {
			return ErrRoundInProgress
		}
		room.Players = append(room.Players, Player{ID: playerID, Name: name})
		if room.Totals == nil {
			room.Totals = make(map[int64]int)
		}
		room.Totals[playerID] += 0
		joined = &room.Players[len(room.Players)-1]
		return nil
	})
	if err != nil {
		return err
	}
	s.persistPlayer(room, joined)
	s.persistEvent(room, "player_joined", EventPayload{
		RoomID:     chatID,
		PlayerID:   playerID,
		PlayerName: name,
	})
	s.notify(chatID, fmt.Sprintf("✅ %s به بازی اضافه شد.", name))
	return nil
}

// StartRound begins a new round: uniform random letter, fresh category
// list, armed timer. Only the owner may start, and only between rounds.
func (s *Service) StartRound(chatID, callerID int64) error {
	room, err := s.store.UpdateRoom(chatID, func(room *Room) error {
		if callerID != room.OwnerID {
			return ErrNotOwner
		}
		if room.Round != nil {
			return ErrRoundInProgress
		}
		if len(room.Players) == 0 {
			return ErrNoPlayers
		}
		room.RoundSerial++
		room.Round = &Round{
			Number:     room.RoundsPlayed + 1,
			Letter:     randomLetter(),
			Categories: append([]string(nil), s.categories...),
			Answers:    make(map[int64]map[string]*Answer),
			Status:     roundActive,
			StartedAt:  timeNowUTC(),
		}
		clear(room.ActiveCategory)
		return nil
	})
	if err != nil {
		return err
	}
	s.persistRound(room, room.Round)
	s.persistEvent(room, "round_started", EventPayload{
		RoomID:      chatID,
		RoundNumber: room.Round.Number,
		Letter:      room.Round.Letter,
	})
	s.scheduleRoundTimer(chatID, room.RoundSerial)
	s.notify(chatID, startAnnouncement(room, s.cfg.RoundSeconds))
	return nil
}

func startAnnouncement(room *Room, roundSeconds int) string {
	round := room.Round
	var b strings.Builder
	fmt.Fprintf(&b, "🎲 دور %d شروع شد!\n", round.Number)
	fmt.Fprintf(&b, "حرف این دور: «%s»\n", round.Letter)
	fmt.Fprintf(&b, "دسته‌ها: %s\n", strings.Join(round.Categories, "، "))
	fmt.Fprintf(&b, "⏱ مهلت پاسخ: %d ثانیه\n", roundSeconds)
	if room.Sequential {
		fmt.Fprintf(&b, "➡️ دسته فعلی: «%s»\n", round.CurrentCategory())
	}
	b.WriteString("برای پاسخ، اول دسته را با /answer انتخاب کنید و بعد جواب را در گروه بفرستید.")
	return b.String()
}

// Scoreboard renders the cumulative table in player order.
func (s *Service) Scoreboard(chatID int64) (string, error) {
	room, ok := s.store.GetRoom(chatID)
	if !ok {
		return "", ErrRoomNotFound
	}
	var b strings.Builder
	b.WriteString("📊 جدول کلی\n")
	for _, player := range room.Players {
		fmt.Fprintf(&b, "- %s: %d\n", player.Name, room.Totals[player.ID])
	}
	return b.String(), nil
}

// OpenCategories lists the categories a player can still answer in the
// current round. In sequential mode only the cursor category is open.
func (s *Service) OpenCategories(chatID, playerID int64) ([]string, error) {
	room, ok := s.store.GetRoom(chatID)
	if !ok {
		return nil, ErrRoomNotFound
	}
	round := room.Round
	if round == nil || round.Status != roundActive {
		return nil, ErrRoundNotActive
	}
	if !room.Registered(playerID) {
		return nil, ErrPlayerNotRegistered
	}
	if room.Sequential {
		current := round.CurrentCategory()
		if current == "" || round.Answer(playerID, current) != nil {
			return nil, nil
		}
		return []string{current}, nil
	}
	open := make([]string, 0, len(round.Categories))
	for _, category := range round.Categories {
		if round.Answer(playerID, category) == nil {
			open = append(open, category)
		}
	}
	return open, nil
}
