package game

import "fmt"

// roundOutcome collects the side effects a completion check decided on
// while the store lock was held. Transport and persistence run after
// the lock is released.
type roundOutcome struct {
	nextCategory string
	lockReason   string
	closed       bool
	summary      string
	scores       map[int64]int
	roundNumber  int
	round        *Round
}

// checkCompletion runs inside the store lock after every adjudication
// event. In sequential mode the cursor advances while the current
// category is fully adjudicated; exhausting the list locks the round
// without waiting for the timer. In free-for-all mode the round locks
// the moment every player has a non-pending record for every category.
// A locked round closes once no review is outstanding.
func (s *Service) checkCompletion(room *Room) roundOutcome {
	var out roundOutcome
	round := room.Round
	if round == nil {
		return out
	}
	if round.Status == roundActive {
		if room.Sequential {
			for {
				current := round.CurrentCategory()
				if current == "" || !categoryComplete(room, current) {
					break
				}
				round.Cursor++
				out.nextCategory = round.CurrentCategory()
			}
			if round.CurrentCategory() == "" {
				s.lockRound(room, "categories exhausted", &out)
			}
		} else if allAdjudicated(room) {
			s.lockRound(room, "all answers adjudicated", &out)
		}
	}
	if round.Status == roundLocked && !hasPending(room) {
		s.closeRound(room, &out)
	}
	return out
}

// lockRound stops the round from accepting answers and gives every
// player an empty rejected record for each category they never answered,
// so scoring sees a uniform grid.
func (s *Service) lockRound(room *Room, reason string, out *roundOutcome) {
	round := room.Round
	if round == nil || round.Status == roundLocked {
		return
	}
	round.Status = roundLocked
	for _, player := range room.Players {
		for _, category := range round.Categories {
			if round.Answer(player.ID, category) == nil {
				round.setAnswer(player.ID, category, &Answer{Status: StatusRejected})
			}
		}
	}
	clear(room.ActiveCategory)
	out.lockReason = reason
}

// closeRound scores exactly once, folds round points into the cumulative
// totals and rolls the room over to the between-rounds state. Players
// and totals are preserved.
func (s *Service) closeRound(room *Room, out *roundOutcome) {
	round := room.Round
	if round == nil {
		return
	}
	scores := scoreRound(room)
	for playerID, points := range scores {
		room.Totals[playerID] += points
	}
	out.closed = true
	out.scores = scores
	out.roundNumber = round.Number
	out.round = round
	out.summary = buildSummary(room, scores)
	room.RoundsPlayed++
	room.Round = nil
	clear(room.ActiveCategory)
}

// applyOutcome performs the deferred side effects of a completion check.
func (s *Service) applyOutcome(room *Room, out roundOutcome) {
	if out.nextCategory != "" && !out.closed {
		s.notify(room.ChatID, fmt.Sprintf("➡️ دسته بعدی: «%s»", out.nextCategory))
	}
	if out.closed {
		s.cancelRoundTimer(room.ChatID)
		s.notify(room.ChatID, out.summary)
		s.persistRoundClosed(room, out)
	}
}

func categoryComplete(room *Room, category string) bool {
	for _, player := range room.Players {
		answer := room.Round.Answer(player.ID, category)
		if answer == nil || answer.Status == StatusPending {
			return false
		}
	}
	return true
}

func allAdjudicated(room *Room) bool {
	for _, player := range room.Players {
		for _, category := range room.Round.Categories {
			answer := room.Round.Answer(player.ID, category)
			if answer == nil || answer.Status == StatusPending {
				return false
			}
		}
	}
	return true
}

func hasPending(room *Room) bool {
	for _, player := range room.Players {
		for _, answer := range room.Round.Answers[player.ID] {
			if answer.Status == StatusPending {
				return true
			}
		}
	}
	return false
}
