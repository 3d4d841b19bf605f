package game

import "errors"

var (
	ErrRoundNotActive      = errors.New("round not active")
	ErrRoundInProgress     = errors.New("round already in progress")
	ErrPlayerNotRegistered = errors.New("player not registered")
	ErrAlreadyRegistered   = errors.New("player already registered")
	ErrDuplicateSubmission = errors.New("category already answered")
	ErrEmptyAnswer         = errors.New("answer is empty")
	ErrUnknownCategory     = errors.New("unknown category")
	ErrCategoryNotOpen     = errors.New("category not open yet")
	ErrNotOwner            = errors.New("caller is not the room owner")
	ErrNoPlayers           = errors.New("no registered players")
	ErrRoomNotFound        = errors.New("room not found")
	ErrReviewNotFound      = errors.New("no pending review for answer")
)
