package auth

import "time"

// Strategy issues and verifies auth tokens for user sessions.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

// Options tunes token issuance. A zero TTL falls back to the strategy default.
type Options struct {
	TTL time.Duration
}
