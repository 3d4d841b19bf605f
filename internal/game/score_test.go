package game

import "testing"

func roomForScoring(players ...Player) *Room {
	room := &Room{
		ChatID:  testChatID,
		OwnerID: players[0].ID,
		Players: players,
		Totals:  make(map[int64]int),
	}
	room.Round = &Round{
		Number:     1,
		Letter:     "س",
		Categories: []string{"شهر"},
		Answers:    make(map[int64]map[string]*Answer),
		Status:     roundLocked,
	}
	return room
}

func TestScoreUniqueExact(t *testing.T) {
	room := roomForScoring(Player{ID: 1, Name: "A"}, Player{ID: 2, Name: "B"})
	room.Round.setAnswer(1, "شهر", &Answer{Text: "سنندج", Canonical: "سنندج", Status: StatusAccepted})
	room.Round.setAnswer(2, "شهر", &Answer{Status: StatusRejected})

	scores := scoreRound(room)
	if scores[1] != 10 {
		t.Fatalf("unique exact answer must score 10, got %d", scores[1])
	}
	if scores[2] != 0 {
		t.Fatalf("rejected answer must score 0, got %d", scores[2])
	}
}

func TestScoreDuplicateExact(t *testing.T) {
	room := roomForScoring(Player{ID: 1, Name: "A"}, Player{ID: 2, Name: "B"})
	room.Round.setAnswer(1, "شهر", &Answer{Text: "تهران", Canonical: "تهران", Status: StatusAccepted})
	room.Round.setAnswer(2, "شهر", &Answer{Text: "تهران", Canonical: "تهران", Status: StatusAccepted})

	scores := scoreRound(room)
	if scores[1] != 5 || scores[2] != 5 {
		t.Fatalf("duplicated exact answers must score 5 each, got %d and %d", scores[1], scores[2])
	}
}

func TestScoreUniqueFuzzy(t *testing.T) {
	room := roomForScoring(Player{ID: 1, Name: "A"}, Player{ID: 2, Name: "B"})
	room.Round.setAnswer(1, "شهر", &Answer{Text: "تحران", Canonical: "تهران", Status: StatusAcceptedFuzzy})
	room.Round.setAnswer(2, "شهر", &Answer{Status: StatusRejected})

	scores := scoreRound(room)
	if scores[1] != 7 {
		t.Fatalf("unique fuzzy answer must score 7, got %d", scores[1])
	}
}

func TestScoreFuzzyCollidingWithExact(t *testing.T) {
	// Duplicates are counted over raw submitted texts, not comparison
	// keys. The fuzzy player's typo تحران is the only raw text besides
	// تهران, so each key matches exactly one raw text and both answers
	// stay unique.
	room := roomForScoring(Player{ID: 1, Name: "A"}, Player{ID: 2, Name: "B"})
	room.Round.setAnswer(1, "شهر", &Answer{Text: "تهران", Canonical: "تهران", Status: StatusAccepted})
	room.Round.setAnswer(2, "شهر", &Answer{Text: "تحران", Canonical: "تهران", Status: StatusAcceptedFuzzy})

	scores := scoreRound(room)
	if scores[1] != 10 {
		t.Fatalf("exact answer with no matching raw text must score 10, got %d", scores[1])
	}
	if scores[2] != 7 {
		t.Fatalf("fuzzy answer with a unique raw text must score 7, got %d", scores[2])
	}
}

func TestScoreFuzzyDuplicatedByRawText(t *testing.T) {
	// A third player submitting the canonical form exactly makes both
	// the exact and the fuzzy answer duplicates of it.
	room := roomForScoring(Player{ID: 1, Name: "A"}, Player{ID: 2, Name: "B"}, Player{ID: 3, Name: "C"})
	room.Round.setAnswer(1, "شهر", &Answer{Text: "تهران", Canonical: "تهران", Status: StatusAccepted})
	room.Round.setAnswer(2, "شهر", &Answer{Text: "تحران", Canonical: "تهران", Status: StatusAcceptedFuzzy})
	room.Round.setAnswer(3, "شهر", &Answer{Text: "تهران", Canonical: "تهران", Status: StatusAccepted})

	scores := scoreRound(room)
	if scores[1] != 5 || scores[3] != 5 {
		t.Fatalf("duplicated exact answers must score 5 each, got %d and %d", scores[1], scores[3])
	}
	if scores[2] != 5 {
		t.Fatalf("fuzzy answer whose canonical matches two raw texts must score 5, got %d", scores[2])
	}
}

func TestScoreEmptyAnswer(t *testing.T) {
	room := roomForScoring(Player{ID: 1, Name: "A"})
	room.Round.setAnswer(1, "شهر", &Answer{Status: StatusRejected})

	scores := scoreRound(room)
	if scores[1] != 0 {
		t.Fatalf("empty answer must score 0, got %d", scores[1])
	}
}

func TestScoreSumsAcrossCategories(t *testing.T) {
	room := roomForScoring(Player{ID: 1, Name: "A"})
	room.Round.Categories = []string{"شهر", "حیوان"}
	room.Round.setAnswer(1, "شهر", &Answer{Text: "سنندج", Canonical: "سنندج", Status: StatusAccepted})
	room.Round.setAnswer(1, "حیوان", &Answer{Text: "سگ", Canonical: "سگ", Status: StatusAccepted})

	scores := scoreRound(room)
	if scores[1] != 20 {
		t.Fatalf("expected points to sum across categories, got %d", scores[1])
	}
}
