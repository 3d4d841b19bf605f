package game

// MenuOption is one button of an outbound menu.
type MenuOption struct {
	Label string
	Data  string
}

// MessageRef identifies a previously delivered message.
type MessageRef struct {
	ChatID    int64
	MessageID int
}

// Transport delivers outbound messages to a chat or a player. Failures
// are the caller's problem to log and swallow; nothing in the
// adjudication path may block on a transport error.
type Transport interface {
	SendText(chatID int64, text string) error
	SendMenu(chatID int64, text string, options []MenuOption) error
	DeleteMessage(ref MessageRef) error
	EditMessage(ref MessageRef, text string) error
}

// ReviewRequest asks the referee to judge an answer neither dictionary
// check accepted.
type ReviewRequest struct {
	RoomID     int64
	RoomTitle  string
	RefereeID  int64
	PlayerID   int64
	PlayerName string
	Category   string
	Text       string
}

// Referee is the capability to request a human verdict. The verdict
// comes back through Service.ResolveReview.
type Referee interface {
	RequestReview(req ReviewRequest) error
}
