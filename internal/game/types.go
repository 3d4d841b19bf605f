package game

import "time"

const (
	roundActive = "active"
	roundLocked = "locked"
)

// Status is the adjudication state of a submitted answer. Pending means
// the answer failed both dictionary checks and is waiting on the referee;
// auto-judging itself is synchronous, so no record is ever observable
// before it ran.
type Status int

const (
	StatusPending Status = iota
	StatusAccepted
	StatusAcceptedFuzzy
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusAccepted:
		return "accepted"
	case StatusAcceptedFuzzy:
		return "accepted-fuzzy"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

type Player struct {
	ID   int64
	Name string
	DBID uint
}

type Answer struct {
	Text        string
	Canonical   string
	Status      Status
	SubmittedAt time.Time
	DBID        uint
}

type Round struct {
	Number     int
	Letter     string
	Categories []string
	Answers    map[int64]map[string]*Answer
	Cursor     int
	Status     string
	StartedAt  time.Time
	DBID       uint
}

// Room is the per-chat game state. Players and cumulative totals survive
// round rollover; Round is nil between rounds.
type Room struct {
	ChatID         int64
	Title          string
	OwnerID        int64
	Players        []Player
	Totals         map[int64]int
	Sequential     bool
	Round          *Round
	RoundSerial    int
	RoundsPlayed   int
	ActiveCategory map[int64]string
	DBID           uint
}

func (r *Room) Registered(playerID int64) bool {
	for _, player := range r.Players {
		if player.ID == playerID {
			return true
		}
	}
	return false
}

func (r *Room) PlayerName(playerID int64) string {
	for _, player := range r.Players {
		if player.ID == playerID {
			return player.Name
		}
	}
	return ""
}

func (rd *Round) HasCategory(category string) bool {
	for _, c := range rd.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// CurrentCategory is the category the cursor points at in sequential
// mode, or "" once the list is exhausted.
func (rd *Round) CurrentCategory() string {
	if rd.Cursor < 0 || rd.Cursor >= len(rd.Categories) {
		return ""
	}
	return rd.Categories[rd.Cursor]
}

func (rd *Round) Answer(playerID int64, category string) *Answer {
	return rd.Answers[playerID][category]
}

func (rd *Round) setAnswer(playerID int64, category string, answer *Answer) {
	records, ok := rd.Answers[playerID]
	if !ok {
		records = make(map[string]*Answer)
		rd.Answers[playerID] = records
	}
	records[category] = answer
}

func timeNowUTC() time.Time {
	return time.Now().UTC()
}
