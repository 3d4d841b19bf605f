package game

import "sync"

// Store is the registry of rooms, keyed by chat id. All state mutation
// goes through UpdateRoom so the invariants on Room are enforced in one
// place.
type Store struct {
	mu    sync.Mutex
	rooms map[int64]*Room
}

func NewStore() *Store {
	return &Store{
		rooms: make(map[int64]*Room),
	}
}

// EnsureRoom returns the room for chatID, creating it with the caller as
// owner and first registered player if it does not exist yet.
func (s *Store) EnsureRoom(chatID int64, title string, ownerID int64, ownerName string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if room, ok := s.rooms[chatID]; ok {
		return room, false
	}
	room := &Room{
		ChatID:         chatID,
		Title:          title,
		OwnerID:        ownerID,
		Players:        []Player{{ID: ownerID, Name: ownerName}},
		Totals:         map[int64]int{ownerID: 0},
		ActiveCategory: make(map[int64]string),
	}
	s.rooms[chatID] = room
	return room, true
}

func (s *Store) GetRoom(chatID int64) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[chatID]
	return room, ok
}

func (s *Store) UpdateRoom(chatID int64, update func(room *Room) error) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[chatID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if err := update(room); err != nil {
		return nil, err
	}
	return room, nil
}
