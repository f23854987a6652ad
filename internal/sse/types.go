package sse

// MessagePayload is a line of game text addressed to a player
type MessagePayload struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

// ConnectedPayload is sent when a stream opens
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Player   string   `json:"player,omitempty"`
	Filters  []string `json:"filters,omitempty"`
}
