package domain

import "time"

// ChatMessage is a persisted chat line, replayed to clients joining a room.
type ChatMessage struct {
	ID        string
	User      string
	Message   string
	Room      string
	Timestamp time.Time
}
