package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"regexp"
	"time"
	"unicode"

	"github.com/murmurapp/murmur/internal/domain"
	"github.com/murmurapp/murmur/internal/store"
	"github.com/murmurapp/murmur/pkg/cryptox"
	"github.com/murmurapp/murmur/pkg/idx"
	"github.com/murmurapp/murmur/pkg/slogx"
)

var (
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password does not meet requirements")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrCodeExpired        = errors.New("verification code expired")
	ErrEmailSend          = errors.New("failed to send verification email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("account is not verified")
)

const (
	// VerifyCodeLength is the digit count of emailed verification codes.
	VerifyCodeLength = 6

	// DefaultVerifyCodeTTL bounds how long an issued code stays valid.
	DefaultVerifyCodeTTL = time.Hour
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{2,20}$`)

// Mailer delivers transactional email. It is constructed once during app
// wiring and injected here; the service never builds its own transport.
type Mailer interface {
	SendVerification(ctx context.Context, email, username, code string) error
}

// AccountService owns the sign-up and verification-code lifecycle.
type AccountService struct {
	Store   store.Store
	Mailer  Mailer
	CodeTTL time.Duration
}

func (s *AccountService) codeTTL() time.Duration {
	if s.CodeTTL > 0 {
		return s.CodeTTL
	}
	return DefaultVerifyCodeTTL
}

// SignUp registers a new unverified account, or re-issues a verification
// code when the email belongs to an existing unverified account. On
// success a verification email has been sent; if the record was persisted
// but the email failed, the error is ErrEmailSend and the caller may
// retry sign-up to get a fresh code.
func (s *AccountService) SignUp(ctx context.Context, username, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input shape before touching the store.
	if !usernamePattern.MatchString(username) {
		return domain.User{}, ErrInvalidUsername
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, ErrInvalidEmail
	}
	if err := checkPasswordPolicy(password); err != nil {
		return domain.User{}, err
	}

	// 2. A verified holder of the username blocks the sign-up. Unverified
	// holders don't: they may never complete verification.
	_, err := s.Store.Users().GetVerifiedUserByUsername(ctx, username)
	if err == nil {
		return domain.User{}, ErrUsernameTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check username", slog.Any("error", err))
		return domain.User{}, err
	}

	// 3. Generate the verification code and hash the password.
	code, err := cryptox.GenerateNumericCode(VerifyCodeLength)
	if err != nil {
		log.Error("failed to generate verification code", slog.Any("error", err))
		return domain.User{}, err
	}
	codeHash := cryptox.FingerprintToken(code)
	expiry := time.Now().UTC().Add(s.codeTTL())

	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	// 4. Branch on the email: verified holder rejects, unverified holder
	// gets a fresh code and password, otherwise create the record.
	var user domain.User
	existing, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil && existing.Verified():
		return domain.User{}, ErrEmailTaken

	case err == nil:
		// Re-attempted sign-up for an unverified account.
		if err := s.Store.Users().ReissueVerification(ctx, existing.ID, passwordHash, codeHash, expiry); err != nil {
			log.Error("failed to reissue verification",
				slog.String("user_id", existing.ID),
				slog.Any("error", err),
			)
			return domain.User{}, err
		}
		user = existing
		user.PasswordHash = passwordHash
		user.VerifyCodeHash = &codeHash
		user.VerifyCodeExpiry = &expiry

	case errors.Is(err, store.ErrNotFound):
		user = domain.User{
			ID:                idx.New().String(),
			Username:          username,
			Email:             email,
			PasswordHash:      passwordHash,
			VerifyCodeHash:    &codeHash,
			VerifyCodeExpiry:  &expiry,
			AcceptingMessages: true,
		}
		err = s.Store.WithTx(ctx, func(tx store.Tx) error {
			return tx.Users().CreateUser(ctx, user)
		})
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return domain.User{}, ErrEmailTaken
			}
			log.Error("failed to create user", slog.Any("error", err))
			return domain.User{}, err
		}

	default:
		log.Error("failed to look up email", slog.Any("error", err))
		return domain.User{}, err
	}

	// 5. Send the verification email. The record is already persisted;
	// a transport failure surfaces to the caller and the re-attempt
	// branch above is the recovery path.
	if err := s.Mailer.SendVerification(ctx, user.Email, user.Username, code); err != nil {
		log.Error("failed to send verification email",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return user, ErrEmailSend
	}

	log.Debug("sign-up completed",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
		slog.Time("code_expiry", expiry),
	)

	return user, nil
}

// VerifyCode checks a submitted code against the stored fingerprint.
// A matching, unexpired code marks the account verified; re-submitting it
// while it remains valid is an idempotent success.
func (s *AccountService) VerifyCode(ctx context.Context, username, code string) error {
	log := slogx.FromContext(ctx)

	// 1. Resolve the account; a verified holder wins over unverified
	// duplicates of the same username.
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}

	// 2. Compare fingerprints first: a wrong code is always InvalidCode,
	// even when the stored one has expired.
	if user.VerifyCodeHash == nil || *user.VerifyCodeHash != cryptox.FingerprintToken(code) {
		log.Warn("verification attempted with wrong code",
			slog.String("user_id", user.ID),
		)
		return ErrInvalidCode
	}

	// 3. A matching but stale code reports expiry; the user must sign up
	// again for a fresh one.
	if user.VerifyCodeExpiry == nil || !time.Now().UTC().Before(*user.VerifyCodeExpiry) {
		return ErrCodeExpired
	}

	// 4. Verification is monotonic; nothing to write on re-verification.
	if user.Verified() {
		return nil
	}

	if err := s.Store.Users().MarkVerified(ctx, user.ID, time.Now().UTC()); err != nil {
		log.Error("failed to mark user verified",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Debug("account verified", slog.String("user_id", user.ID))
	return nil
}

// CheckUsername reports whether username is free among verified accounts.
func (s *AccountService) CheckUsername(ctx context.Context, username string) (bool, error) {
	if !usernamePattern.MatchString(username) {
		return false, ErrInvalidUsername
	}

	_, err := s.Store.Users().GetVerifiedUserByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return true, nil
	}
	return false, err
}

// Authenticate validates email+password credentials for a verified
// account. Unknown emails and wrong passwords are indistinguishable to
// the caller.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("sign-in attempted with wrong password",
				slog.String("user_id", user.ID),
			)
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return domain.User{}, err
	}

	if !user.Verified() {
		return domain.User{}, ErrNotVerified
	}

	return user, nil
}

// checkPasswordPolicy enforces the sign-up password rules: at least 8
// characters with an upper, a lower, a digit and a symbol.
func checkPasswordPolicy(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return ErrWeakPassword
	}
	return nil
}
