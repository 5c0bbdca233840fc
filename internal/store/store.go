package store

import (
	"context"
	"errors"
	"time"

	"github.com/murmurapp/murmur/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Messages() Messages

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle multi-step writes.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail returns a user by normalized email. Email is unique
	// across all records, verified or not.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByUsername returns a user by username, preferring a verified
	// holder when unverified duplicates transiently coexist.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetVerifiedUserByUsername returns a verified user by username.
	// Username uniqueness is only enforced among verified users.
	GetVerifiedUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// ReissueVerification replaces the password hash, verification code
	// fingerprint and expiry on an existing unverified record (the
	// re-attempted sign-up branch).
	ReissueVerification(ctx context.Context, userID, passwordHash, codeHash string, expiry time.Time) error

	// MarkVerified sets verified_at. The code fields are left in place so
	// re-submitting the same unexpired code stays idempotent; housekeeping
	// sweeps them once expired.
	MarkVerified(ctx context.Context, userID string, at time.Time) error

	// SetAcceptingMessages persists the acceptance gate. Last write wins.
	SetAcceptingMessages(ctx context.Context, userID string, accepting bool) error

	// ClearExpiredVerifyCodes nulls the code fields on records whose
	// expiry has passed. Used by housekeeping.
	ClearExpiredVerifyCodes(ctx context.Context, now time.Time) (int64, error)
}

type Messages interface {
	// AppendMessage inserts a message into the owner's collection.
	AppendMessage(ctx context.Context, m domain.Message) error

	// ListMessagesSortedDesc returns all of a user's messages newest
	// first (created_at desc, id desc as tie-break). Empty slice, not an
	// error, when there are none.
	ListMessagesSortedDesc(ctx context.Context, userID string) ([]domain.Message, error)

	// RemoveMessageByID deletes one message scoped to its owner. Returns
	// ErrNotFound when nothing was deleted.
	RemoveMessageByID(ctx context.Context, userID, messageID string) error
}
