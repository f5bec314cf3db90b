package domain

import "time"

// User is created once at registration and never edited. Secret holds the
// password in whatever form the configured password storage produced.
type User struct {
	Username      string
	Secret        string
	AccountNumber string
	CreatedAt     time.Time
}

type Registration struct {
	Username          string
	AccountNumber     string
	GeneratedPassword string
}
