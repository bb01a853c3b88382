package auth

import "github.com/google/uuid"

// CanAccessOwned reports whether a caller may read or mutate a record
// owned by ownerID. Admins and managers see everything; reps only
// their own records.
func CanAccessOwned(role string, callerID, ownerID uuid.UUID) bool {
	if role == "admin" || role == "manager" {
		return true
	}
	return callerID == ownerID
}

// EffectiveUserFilter returns the user id a list query must be scoped
// to. Reps are always forced to their own id regardless of what they
// asked for; admins and managers get the requested filter as-is.
func EffectiveUserFilter(role string, callerID uuid.UUID, requested *uuid.UUID) *uuid.UUID {
	if role == "rep" {
		id := callerID
		return &id
	}
	return requested
}
