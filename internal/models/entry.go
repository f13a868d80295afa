// Package models defines the domain types for the journal.
package models

import "strings"

// ContinuationMarker at the start of a message joins it to the previous entry line.
const ContinuationMarker = "..."

// Entry is one invocation's worth of content to add to the week file.
type Entry struct {
	Message      string
	Header       string
	Continuation bool
	// Timestamped prefixes a fresh entry line with its HH:MM time.
	Timestamped bool
}

// ParseMessage joins the positional words into a message body and strips
// the continuation marker.
func ParseMessage(words []string) Entry {
	text := strings.TrimSpace(strings.Join(words, " "))
	if rest, ok := strings.CutPrefix(text, ContinuationMarker); ok {
		return Entry{Message: strings.TrimSpace(rest), Continuation: true}
	}
	return Entry{Message: text}
}

// Empty reports whether the entry would add nothing beyond a day header.
func (e Entry) Empty() bool {
	return e.Message == "" && e.Header == ""
}
