// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attachment is the predicate function for attachment builders.
type Attachment func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// Prospect is the predicate function for prospect builders.
type Prospect func(*sql.Selector)

// RefreshToken is the predicate function for refreshtoken builders.
type RefreshToken func(*sql.Selector)

// Tour is the predicate function for tour builders.
type Tour func(*sql.Selector)

// TourStep is the predicate function for tourstep builders.
type TourStep func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Visit is the predicate function for visit builders.
type Visit func(*sql.Selector)
