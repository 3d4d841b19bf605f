package game

import (
	"errors"
	"testing"

	"github.com/Rezateymoori/esm-famil-bot/internal/config"
	"github.com/Rezateymoori/esm-famil-bot/internal/dict"
)

type fakeTransport struct {
	texts []string
	fail  bool
}

func (f *fakeTransport) SendText(chatID int64, text string) error {
	if f.fail {
		return errors.New("transport down")
	}
	f.texts = append(f.texts, text)
	return nil
}

func (f *fakeTransport) SendMenu(chatID int64, text string, options []MenuOption) error {
	if f.fail {
		return errors.New("transport down")
	}
	f.texts = append(f.texts, text)
	return nil
}

func (f *fakeTransport) DeleteMessage(ref MessageRef) error {
	if f.fail {
		return errors.New("transport down")
	}
	return nil
}

func (f *fakeTransport) EditMessage(ref MessageRef, text string) error {
	if f.fail {
		return errors.New("transport down")
	}
	return nil
}

type fakeReferee struct {
	requests []ReviewRequest
	err      error
}

func (f *fakeReferee) RequestReview(req ReviewRequest) error {
	if f.err != nil {
		return f.err
	}
	f.requests = append(f.requests, req)
	return nil
}

const (
	testChatID  = int64(-100200)
	testOwnerID = int64(11)
	testSecond  = int64(22)
)

// newTestService seeds a dictionary with شهر={سنندج، تهران} and
// حیوان={سگ} and disables the real timer so tests drive timeouts by
// hand.
func newTestService(t *testing.T) (*Service, *fakeTransport) {
	t.Helper()
	store := dict.NewFileStore(t.TempDir())
	categories := []string{"شهر", "حیوان"}
	words := dict.New(store, categories)
	for _, word := range []string{"سنندج", "تهران"} {
		if err := words.Add("شهر", word); err != nil {
			t.Fatalf("seed dictionary: %v", err)
		}
	}
	if err := words.Add("حیوان", "سگ"); err != nil {
		t.Fatalf("seed dictionary: %v", err)
	}

	cfg := config.Default()
	cfg.RoundSeconds = 0

	transport := &fakeTransport{}
	svc := New(nil, words, transport, cfg)
	svc.categories = categories
	return svc, transport
}

func startedRoom(t *testing.T, svc *Service) *Room {
	t.Helper()
	svc.CreateRoom(testChatID, "گروه تست", testOwnerID, "Omid")
	if err := svc.Join(testChatID, testSecond, "Sara"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := svc.StartRound(testChatID, testOwnerID); err != nil {
		t.Fatalf("start round: %v", err)
	}
	room, ok := svc.store.GetRoom(testChatID)
	if !ok {
		t.Fatalf("room missing after start")
	}
	return room
}
