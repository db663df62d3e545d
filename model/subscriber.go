package model

import (
	"regexp"
	"time"
)

// Subscriber status values. The stored status is a snapshot taken at
// write time; the admission gate re-derives liveness from the expiration
// timestamp at decision time.
const (
	StatusActive  = "active"
	StatusExpired = "expired"
)

// Decision is the value cached per subscriber id in the decision cache.
type Decision string

const (
	DecisionValid   Decision = "valid"
	DecisionInvalid Decision = "invalid"
)

// Subscriber is one tunnel subscription record.
type Subscriber struct {
	ID                  string `json:"id" gorm:"primaryKey;size:36"`
	ExpirationTimestamp int64  `json:"expiration_timestamp" gorm:"not null"`
	Status              string `json:"status" gorm:"not null;size:16"`
	Notes               string `json:"notes"`
	CreatedAt           int64  `json:"created_at" gorm:"not null;index"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}

// Live reports whether the subscription authorizes tunnel access at the
// given instant. Both conditions are required: the stored status must be
// active and the expiration must be in the future.
func (s *Subscriber) Live(now time.Time) bool {
	return s.ExpirationTimestamp > now.Unix() && s.Status == StatusActive
}

// StatusAt computes the status snapshot for an expiration timestamp at
// the given write-time clock.
func StatusAt(expirationTimestamp int64, now time.Time) string {
	if expirationTimestamp > now.Unix() {
		return StatusActive
	}
	return StatusExpired
}

// subscriberIDPattern is the canonical 8-4-4-4-12 hyphenated hex shape.
var subscriberIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ValidSubscriberID reports whether s matches the opaque subscriber id shape.
func ValidSubscriberID(s string) bool {
	return subscriberIDPattern.MatchString(s)
}

// UpsertSubscriberRequest is the admin API create-or-update payload.
type UpsertSubscriberRequest struct {
	ID                  string `json:"id"`
	ExpirationTimestamp int64  `json:"expiration_timestamp" binding:"required"`
	Notes               string `json:"notes"`
}
