package game

import (
	"fmt"
	"strings"
)

// Point values per category: a unique exact answer earns 10, a unique
// fuzzy answer 7, any duplicated answer 5, anything rejected or empty 0.
const (
	pointsUniqueExact = 10
	pointsUniqueFuzzy = 7
	pointsDuplicate   = 5
)

// scoreRound computes the round points of every registered player from
// the locked round. It reads recorded adjudication results only and has
// no side effects, so closing a round is idempotent over its inputs.
//
// A player's comparison key is the submitted text when exactly accepted
// and the fuzzy-matched canonical form otherwise. The duplicate count is
// how many of the round's submitted texts (one per player per category,
// empty for non-respondents) equal that key.
func scoreRound(room *Room) map[int64]int {
	round := room.Round
	scores := make(map[int64]int, len(room.Players))
	for _, player := range room.Players {
		scores[player.ID] = 0
	}
	if round == nil {
		return scores
	}
	for _, category := range round.Categories {
		texts := make([]string, 0, len(room.Players))
		for _, player := range room.Players {
			text := ""
			if answer := round.Answer(player.ID, category); answer != nil {
				text = answer.Text
			}
			texts = append(texts, text)
		}
		for _, player := range room.Players {
			answer := round.Answer(player.ID, category)
			if answer == nil || answer.Text == "" {
				continue
			}
			var key string
			exact := false
			switch answer.Status {
			case StatusAccepted:
				key = answer.Text
				exact = true
			case StatusAcceptedFuzzy:
				key = answer.Canonical
			default:
				continue
			}
			duplicates := 0
			for _, text := range texts {
				if text == key {
					duplicates++
				}
			}
			switch {
			case duplicates > 1:
				scores[player.ID] += pointsDuplicate
			case exact:
				scores[player.ID] += pointsUniqueExact
			default:
				scores[player.ID] += pointsUniqueFuzzy
			}
		}
	}
	return scores
}

func buildSummary(room *Room, scores map[int64]int) string {
	var b strings.Builder
	b.WriteString("🏆 نتایج این دور\n\n")
	for _, player := range room.Players {
		fmt.Fprintf(&b, "- %s: %d\n", player.Name, scores[player.ID])
	}
	b.WriteString("\n📊 جدول کلی\n")
	for _, player := range room.Players {
		fmt.Fprintf(&b, "- %s: %d\n", player.Name, room.Totals[player.ID])
	}
	return b.String()
}
