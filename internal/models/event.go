package models

// Event is an audit record published to Kafka for account activity.
type Event struct {
	EventID   string `json:"event_id"`  // Unique event id
	Timestamp int64  `json:"timestamp"` // Unix timestamp
	UserID    string `json:"user_id"`   // Acting user
	Operation string `json:"operation"` // user_registered, score_updated, image_uploaded
}
