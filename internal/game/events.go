package game

type EventPayload struct {
	RoomID      int64  `json:"room_id,omitempty"`
	PlayerID    int64  `json:"player_id,omitempty"`
	PlayerName  string `json:"player,omitempty"`
	RoundNumber int    `json:"round_number,omitempty"`
	Letter      string `json:"letter,omitempty"`
	Category    string `json:"category,omitempty"`
	Status      string `json:"status,omitempty"`
	Word        string `json:"word,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Points      int    `json:"points,omitempty"`
}
