package domain

import "github.com/google/uuid"

// Worker is a factory-floor employee identified by a personal number.
type Worker struct {
	ID         uuid.UUID
	PersonalID string
	FirstName  string
	LastName   string
	IsActive   bool
}

// FullName returns "First Last", skipping empty parts.
func (w Worker) FullName() string {
	switch {
	case w.FirstName == "":
		return w.LastName
	case w.LastName == "":
		return w.FirstName
	default:
		return w.FirstName + " " + w.LastName
	}
}
