// Package forms validates user input before it is sent anywhere: login
// credentials and document fields. It also converts signature dates between
// the short form typed by the user and the timestamp the service stores.
package forms

import "strings"

// ValidationError is a rejected input. Message always mentions the label of
// the offending field, so a form can mark it with Mentions.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Mentions reports whether the message refers to label.
func (e *ValidationError) Mentions(label string) bool {
	return label != "" && strings.Contains(e.Message, label)
}
