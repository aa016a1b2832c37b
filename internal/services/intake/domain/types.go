// Package domain defines the types and interfaces for the intake workflow
package domain

// Message is an inbound channel message from the chat transport
type Message struct {
	Reporter    string
	Text        string
	ThreadReply bool
}

// Prompt asks the reporter to pick a category for a just-reported incident.
// The action id carries the encoded report text; nothing is persisted yet
type Prompt struct {
	ActionID string
	Options  []string
}

// Selection is a completed category pick for a pending report
type Selection struct {
	ActionID string
	Reporter string
	Choice   string
}

// AddCategoryResult reports the outcome of a category slash command
type AddCategoryResult struct {
	Name    string `json:"name"`
	Created bool   `json:"created"`
}
