package models

import "time"

// OnboardingSession is the per-user wizard state persisted in Redis between
// requests. There is exactly one active session per user.
type OnboardingSession struct {
	UserID           string          `json:"userId"`
	CurrentStepIndex int             `json:"currentStepIndex"`
	Profile          ProfileDocument `json:"profile"`
	StartedAt        time.Time       `json:"startedAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
