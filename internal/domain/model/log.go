package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogEntry is a request or audit record mirrored to the logs collection.
// Cart actions fill ActionType ("add_item", "adjust_quantity", "delete_item",
// "confirm_delivery", "checkout") and put product ids and amounts in Fields.
type LogEntry struct {
	ID         primitive.ObjectID     `json:"id" swaggertype:"string" example:"67a1c2d3e4f5a6b7c8d9e0f1"`
	Timestamp  time.Time              `json:"timestamp"`
	Level      string                 `json:"level" example:"info"`
	Message    string                 `json:"message" example:"Cart action"`
	RequestID  string                 `json:"request_id,omitempty"`
	SessionID  string                 `json:"session_id,omitempty"`
	Method     string                 `json:"method,omitempty" example:"POST"`
	Path       string                 `json:"path,omitempty" example:"/api/cart/items/:id/adjust"`
	StatusCode int                    `json:"status_code,omitempty" example:"409"`
	Duration   int64                  `json:"duration_ms,omitempty"`
	IP         string                 `json:"ip,omitempty"`
	UserAgent  string                 `json:"user_agent,omitempty"`
	Error      string                 `json:"error,omitempty"`
	ActionType string                 `json:"action_type,omitempty" example:"adjust_quantity"`
	Outcome    string                 `json:"outcome,omitempty" example:"rejected"`
	Fields     map[string]interface{} `json:"fields,omitempty"`
} // @name LogEntry

func (e *LogEntry) WithField(key string, value interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// WithFields merges fields into the entry, overwriting existing keys.
func (e *LogEntry) WithFields(fields map[string]interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{}, len(fields))
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// LogQueryOptions selects audit entries. Empty strings and nil times do not filter.
type LogQueryOptions struct {
	RequestID  string
	SessionID  string
	ActionType string
	Outcome    string
	Level      string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}
