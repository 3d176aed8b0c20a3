package domain

// UserProfile holds learner-level settings that shape duration estimates.
type UserProfile struct {
	ID    string
	Level Level
}
