package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/murmurapp/murmur/internal/domain"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, username, email, password_hash,
	verify_code_hash, verify_code_expiry, verified_at,
	accepting_messages, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, normalizeEmail(email))
	return scanUser(row)
}

// GetUserByUsername prefers the verified holder when an unverified
// duplicate transiently exists alongside it.
func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE username = ?
		 ORDER BY (verified_at IS NULL), created_at
		 LIMIT 1`, username)
	return scanUser(row)
}

func (r *usersRepo) GetVerifiedUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE username = ? AND verified_at IS NOT NULL`, username)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO users (
			id, username, email, password_hash,
			verify_code_hash, verify_code_expiry, verified_at, accepting_messages
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Username,
		normalizeEmail(u.Email),
		u.PasswordHash,
		mapOptionalString(u.VerifyCodeHash),
		mapOptionalTime(u.VerifyCodeExpiry),
		mapOptionalTime(u.VerifiedAt),
		u.AcceptingMessages,
	)
	return mapConstraint(err)
}

func (r *usersRepo) ReissueVerification(
	ctx context.Context,
	userID, passwordHash, codeHash string,
	expiry time.Time,
) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE users SET
			password_hash = ?,
			verify_code_hash = ?,
			verify_code_expiry = ?,
			updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND verified_at IS NULL`,
		passwordHash, codeHash, expiry.UTC(), userID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *usersRepo) MarkVerified(ctx context.Context, userID string, at time.Time) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE users SET
			verified_at = ?,
			updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		at.UTC(), userID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *usersRepo) SetAcceptingMessages(ctx context.Context, userID string, accepting bool) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE users SET
			accepting_messages = ?,
			updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		accepting, userID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *usersRepo) ClearExpiredVerifyCodes(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE users SET
			verify_code_hash = NULL,
			verify_code_expiry = NULL,
			updated_at = CURRENT_TIMESTAMP
		 WHERE verify_code_expiry IS NOT NULL
		   AND verify_code_expiry <= ?`,
		now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u          domain.User
		codeHash   sql.NullString
		codeExpiry sql.NullTime
		verifiedAt sql.NullTime
	)
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&codeHash, &codeExpiry, &verifiedAt,
		&u.AcceptingMessages, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.VerifyCodeHash = mapNullStringPtr(codeHash)
	u.VerifyCodeExpiry = mapNullTimePtr(codeExpiry)
	u.VerifiedAt = mapNullTimePtr(verifiedAt)
	return u, nil
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
