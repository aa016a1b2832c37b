// Package domain defines the types and interfaces for the categories service
package domain

// MaxNameLen mirrors the name column width
const MaxNameLen = 50

// Category is a label an incident can be filed under
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
