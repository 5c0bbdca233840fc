package domain

import "time"

// User is an account record. An account starts unverified; VerifiedAt is
// set exactly once when a correct, unexpired code is submitted and is
// never cleared afterwards.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2id encoded

	// VerifyCodeHash is the SHA-256 fingerprint of the current 6-digit
	// verification code. It stays in place after verification so a
	// repeated submit of the same code still succeeds; the housekeeping
	// sweep clears it once VerifyCodeExpiry passes.
	VerifyCodeHash   *string
	VerifyCodeExpiry *time.Time

	VerifiedAt        *time.Time
	AcceptingMessages bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Verified reports whether the account has completed email verification.
func (u User) Verified() bool { return u.VerifiedAt != nil }
