package game

import (
	"log"
	"sync"
	"time"

	"github.com/Rezateymoori/esm-famil-bot/internal/config"
	"github.com/Rezateymoori/esm-famil-bot/internal/dict"

	"gorm.io/gorm"
)

// Service owns the room registry and drives every state transition.
// Inbound events (submissions, referee verdicts, commands) are expected
// to arrive on a single goroutine; round timers are the only other
// callers and funnel through the same locked store.
type Service struct {
	store      *Store
	dict       *dict.Dictionary
	transport  Transport
	referee    Referee
	db         *gorm.DB
	cfg        config.Config
	categories []string
	timersMu   sync.Mutex
	timers     map[int64]*time.Timer
}

func New(conn *gorm.DB, words *dict.Dictionary, transport Transport, cfg config.Config) *Service {
	return &Service{
		store:      NewStore(),
		dict:       words,
		transport:  transport,
		db:         conn,
		cfg:        cfg,
		categories: DefaultCategories,
		timers:     make(map[int64]*time.Timer),
	}
}

// SetReferee installs the human-review capability. Without one, answers
// that fail both dictionary checks are rejected outright.
func (s *Service) SetReferee(r Referee) {
	s.referee = r
}

func (s *Service) Categories() []string {
	return s.categories
}

func (s *Service) notify(chatID int64, text string) {
	if s.transport == nil {
		return
	}
	if err := s.transport.SendText(chatID, text); err != nil {
		log.Printf("send failed chat_id=%d error=%v", chatID, err)
	}
}
