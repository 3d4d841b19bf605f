package game

import (
	"strings"
	"testing"
)

func startedSequentialRoom(t *testing.T, svc *Service) *Room {
	t.Helper()
	svc.CreateRoom(testChatID, "گروه تست", testOwnerID, "Omid")
	if err := svc.Join(testChatID, testSecond, "Sara"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if _, err := svc.store.UpdateRoom(testChatID, func(room *Room) error {
		room.Sequential = true
		return nil
	}); err != nil {
		t.Fatalf("set sequential: %v", err)
	}
	if err := svc.StartRound(testChatID, testOwnerID); err != nil {
		t.Fatalf("start round: %v", err)
	}
	room, _ := svc.store.GetRoom(testChatID)
	return room
}

func TestSequentialCursorAdvances(t *testing.T) {
	svc, transport := newTestService(t)
	room := startedSequentialRoom(t, svc)

	if got := room.Round.CurrentCategory(); got != "شهر" {
		t.Fatalf("expected cursor on شهر, got %q", got)
	}
	open, err := svc.OpenCategories(testChatID, testOwnerID)
	if err != nil {
		t.Fatalf("open categories: %v", err)
	}
	if len(open) != 1 || open[0] != "شهر" {
		t.Fatalf("sequential mode must only open the cursor category, got %v", open)
	}

	if _, err := svc.Submit(testChatID, testOwnerID, "شهر", "سنندج"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if room.Round.Cursor != 0 {
		t.Fatalf("cursor must hold until every player answered, got %d", room.Round.Cursor)
	}
	if _, err := svc.Submit(testChatID, testSecond, "شهر", "تهران"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if room.Round.Cursor != 1 {
		t.Fatalf("cursor must advance once the category completes, got %d", room.Round.Cursor)
	}

	advanced := false
	for _, text := range transport.texts {
		if strings.Contains(text, "دسته بعدی") && strings.Contains(text, "حیوان") {
			advanced = true
		}
	}
	if !advanced {
		t.Fatalf("expected a next-category notification")
	}
}

func TestSequentialRejectsCategoryAheadOfCursor(t *testing.T) {
	svc, _ := newTestService(t)
	room := startedSequentialRoom(t, svc)

	if got := room.Round.CurrentCategory(); got != "شهر" {
		t.Fatalf("expected cursor on شهر, got %q", got)
	}
	if err := svc.PickCategory(testChatID, testOwnerID, "حیوان"); err != ErrCategoryNotOpen {
		t.Fatalf("picking a category ahead of the cursor must fail, got %v", err)
	}
	if _, err := svc.Submit(testChatID, testOwnerID, "حیوان", "سگ"); err != ErrCategoryNotOpen {
		t.Fatalf("submitting ahead of the cursor must fail, got %v", err)
	}
	if answer := room.Round.Answer(testOwnerID, "حیوان"); answer != nil {
		t.Fatalf("rejected submission must not leave a record, got %+v", answer)
	}
	if _, err := svc.Submit(testChatID, testOwnerID, "شهر", "سنندج"); err != nil {
		t.Fatalf("cursor category must stay playable: %v", err)
	}
}

func TestSequentialRoundEndsWhenCategoriesExhaust(t *testing.T) {
	svc, _ := newTestService(t)
	startedSequentialRoom(t, svc)

	submissions := []struct {
		player   int64
		category string
		text     string
	}{
		{testOwnerID, "شهر", "سنندج"},
		{testSecond, "شهر", "تهران"},
		{testOwnerID, "حیوان", "سگ"},
		{testSecond, "حیوان", "شتر"}, // rejected, still adjudicated
	}
	for _, sub := range submissions {
		if _, err := svc.Submit(testChatID, sub.player, sub.category, sub.text); err != nil {
			t.Fatalf("submit %s/%s: %v", sub.category, sub.text, err)
		}
	}

	room, _ := svc.store.GetRoom(testChatID)
	if room.Round != nil {
		t.Fatalf("round must end when the cursor exhausts the category list")
	}
	if room.Totals[testOwnerID] != 20 || room.Totals[testSecond] != 10 {
		t.Fatalf("unexpected totals: %d and %d", room.Totals[testOwnerID], room.Totals[testSecond])
	}
}

func TestCheckCompletionHoldsWhilePending(t *testing.T) {
	svc, _ := newTestService(t)
	referee := &fakeReferee{}
	svc.SetReferee(referee)
	startedRoom(t, svc)

	if _, err := svc.Submit(testChatID, testOwnerID, "شهر", "سنندج"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Submit(testChatID, testOwnerID, "حیوان", "سمور"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Submit(testChatID, testSecond, "شهر", "تهران"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Submit(testChatID, testSecond, "حیوان", "سگ"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	room, _ := svc.store.GetRoom(testChatID)
	if room.Round == nil {
		t.Fatalf("round must stay open while a review is pending")
	}

	if err := svc.ResolveReview(testChatID, testOwnerID, "حیوان", false); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	room, _ = svc.store.GetRoom(testChatID)
	if room.Round != nil {
		t.Fatalf("round must close once the last answer is adjudicated")
	}
}
