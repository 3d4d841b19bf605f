package game

import "testing"

func TestTimeoutFillsMissingAnswers(t *testing.T) {
	svc, _ := newTestService(t)
	room := startedRoom(t, svc)

	if _, err := svc.Submit(testChatID, testOwnerID, "شهر", "سنندج"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	svc.timeoutRound(testChatID, room.RoundSerial)

	room, _ = svc.store.GetRoom(testChatID)
	if room.Round != nil {
		t.Fatalf("round with no outstanding reviews must close on timeout")
	}
	// The lone accepted answer scores 10; everything auto-rejected is 0.
	if room.Totals[testOwnerID] != 10 {
		t.Fatalf("expected 10 for the only accepted answer, got %d", room.Totals[testOwnerID])
	}
	if room.Totals[testSecond] != 0 {
		t.Fatalf("expected 0 for the absent player, got %d", room.Totals[testSecond])
	}
}

func TestTimeoutWaitsForPendingReview(t *testing.T) {
	svc, _ := newTestService(t)
	referee := &fakeReferee{}
	svc.SetReferee(referee)
	room := startedRoom(t, svc)

	if _, err := svc.Submit(testChatID, testOwnerID, "حیوان", "سمور"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	svc.timeoutRound(testChatID, room.RoundSerial)

	room, _ = svc.store.GetRoom(testChatID)
	round := room.Round
	if round == nil || round.Status != roundLocked {
		t.Fatalf("round with an outstanding review must stay locked")
	}
	// Every missing slot was auto-rejected; only the reviewed answer is
	// still pending.
	for _, player := range room.Players {
		for _, category := range round.Categories {
			answer := round.Answer(player.ID, category)
			if answer == nil {
				t.Fatalf("missing record for player %d category %s after timeout", player.ID, category)
			}
			if player.ID == testOwnerID && category == "حیوان" {
				if answer.Status != StatusPending {
					t.Fatalf("reviewed answer must stay pending, got %s", answer.Status)
				}
				continue
			}
			if answer.Status == StatusPending {
				t.Fatalf("unexpected pending record for player %d category %s", player.ID, category)
			}
		}
	}

	// No new answers once locked.
	if _, err := svc.Submit(testChatID, testSecond, "شهر", "سنندج"); err == nil {
		t.Fatalf("locked round must not accept new answers")
	}

	// The referee verdict closes the round and scores it.
	if err := svc.ResolveReview(testChatID, testOwnerID, "حیوان", true); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	room, _ = svc.store.GetRoom(testChatID)
	if room.Round != nil {
		t.Fatalf("round must close after the last review resolves")
	}
	if room.Totals[testOwnerID] != 10 {
		t.Fatalf("expected 10 for the approved unique answer, got %d", room.Totals[testOwnerID])
	}
}

func TestStaleTimerIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	room := startedRoom(t, svc)
	staleSerial := room.RoundSerial

	svc.timeoutRound(testChatID, staleSerial)
	room, _ = svc.store.GetRoom(testChatID)
	if room.Round != nil {
		t.Fatalf("first timeout should close the round")
	}

	if err := svc.StartRound(testChatID, testOwnerID); err != nil {
		t.Fatalf("restart: %v", err)
	}
	svc.timeoutRound(testChatID, staleSerial)

	room, _ = svc.store.GetRoom(testChatID)
	if room.Round == nil || room.Round.Status != roundActive {
		t.Fatalf("stale timer must not touch the new round")
	}
}

func TestTimeoutOnClosedRoundIsNoOp(t *testing.T) {
	svc, transport := newTestService(t)
	room := startedRoom(t, svc)
	serial := room.RoundSerial

	svc.timeoutRound(testChatID, serial)
	sent := len(transport.texts)
	svc.timeoutRound(testChatID, serial)
	if len(transport.texts) != sent {
		t.Fatalf("second timeout must be silent")
	}
}
