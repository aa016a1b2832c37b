// Package domain defines the types and interfaces for the incidents service
package domain

import "time"

// MaxTextLen mirrors the text column width
const MaxTextLen = 1000

// Incident is a reported event. Text is the natural key: reporting the same
// text again updates reporter and category but never creates a second row
type Incident struct {
	ID        int64     `json:"id"`
	Reporter  string    `json:"reporter"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// WeekCount is one ISO week bucket (Monday start) with its incident count
type WeekCount struct {
	WeekStart time.Time `json:"week_start"`
	Count     int64     `json:"count"`
}

// CategoryCount is one category bucket with its incident count
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
