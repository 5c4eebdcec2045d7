package core

import "time"

// ConfirmationEntry records a reviewer acknowledgement or comment against one
// section of a sealed package. Entries are append-only: once written to an
// archive they are never altered, removed or reordered.
type ConfirmationEntry struct {
	// ID uniquely identifies this entry.
	ID string `json:"id"`
	// Section references the package content being confirmed: a stage name,
	// an artifact title or a draft report section heading.
	Section string `json:"section"`
	// Acknowledged records whether the reviewer signed the section off.
	Acknowledged bool `json:"acknowledged"`
	// Comment is optional reviewer free text.
	Comment string `json:"comment,omitempty"`
	// CreatedAt is the UTC time the entry was written.
	CreatedAt time.Time `json:"created_at"`
}

// NewConfirmationEntry constructs an entry with a fresh ID and timestamp.
func NewConfirmationEntry(section string, acknowledged bool, comment string) ConfirmationEntry {
	return ConfirmationEntry{
		ID:           NewID(),
		Section:      section,
		Acknowledged: acknowledged,
		Comment:      comment,
		CreatedAt:    time.Now().UTC(),
	}
}
