// diary/types/mood.go
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MoodValue accepts a JSON string or, from older clients, a JSON number.
// Numbers are kept as their decimal text so "2" and 2 store the same way.
// null, false and the number 0 decode to "" and count as no mood.
type MoodValue string

func (m *MoodValue) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte("false")) {
		*m = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = MoodValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("mood must be a string or a number")
	}
	if f, err := n.Float64(); err == nil && f == 0 {
		*m = ""
		return nil
	}
	*m = MoodValue(n.String())
	return nil
}

type SaveMoodRequest struct {
	Content string    `json:"content"`
	Mood    MoodValue `json:"mood"`
}

type SaveMoodResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// MonthEntry is one day of a month aggregate.
type MonthEntry struct {
	Content string `json:"content"`
	Mood    string `json:"mood"`
	Date    string `json:"date"`
}

// MonthAggregate maps day of month to that day's entry. Encoded as a JSON
// object with string keys ("1".."31").
type MonthAggregate map[int]MonthEntry

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
