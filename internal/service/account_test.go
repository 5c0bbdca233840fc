package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/murmurapp/murmur/internal/store"
	"github.com/murmurapp/murmur/internal/store/drivers/sqlite"
	"github.com/murmurapp/murmur/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Set up a temporary pepper file for testing
	pepperPath := filepath.Join(os.TempDir(), "murmur-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	defer os.Remove(pepperPath)
	os.Exit(m.Run())
}

// fakeMailer records sent verification codes instead of dialing SMTP.
type fakeMailer struct {
	codes map[string]string // email -> last code
	err   error
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{codes: make(map[string]string)}
}

func (f *fakeMailer) SendVerification(_ context.Context, email, _, code string) error {
	if f.err != nil {
		return f.err
	}
	f.codes[email] = code
	return nil
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestSignUpAndVerifyCode(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := newFakeMailer()
	svc := &AccountService{Store: st, Mailer: mailer}

	user, err := svc.SignUp(ctx, "alice", "alice@example.com", "Str0ng!pass")
	require.NoError(t, err)
	require.False(t, user.Verified())
	require.True(t, user.AcceptingMessages)

	code, ok := mailer.codes["alice@example.com"]
	require.True(t, ok)
	require.Len(t, code, VerifyCodeLength)

	t.Run("wrong code is rejected", func(t *testing.T) {
		err := svc.VerifyCode(ctx, "alice", "000000")
		require.ErrorIs(t, err, ErrInvalidCode)
	})

	t.Run("correct code verifies the account", func(t *testing.T) {
		require.NoError(t, svc.VerifyCode(ctx, "alice", code))

		got, err := st.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.True(t, got.Verified())
	})

	t.Run("re-verifying with the same code succeeds", func(t *testing.T) {
		require.NoError(t, svc.VerifyCode(ctx, "alice", code))
	})

	t.Run("unknown username reports not found", func(t *testing.T) {
		err := svc.VerifyCode(ctx, "nobody", code)
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestSignUpValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AccountService{Store: st, Mailer: newFakeMailer()}

	cases := []struct {
		name     string
		username string
		email    string
		password string
		want     error
	}{
		{"username too short", "a", "a@example.com", "Str0ng!pass", ErrInvalidUsername},
		{"username with spaces", "a b", "a@example.com", "Str0ng!pass", ErrInvalidUsername},
		{"bad email", "alice", "not-an-email", "Str0ng!pass", ErrInvalidEmail},
		{"password too short", "alice", "a@example.com", "Ab1!", ErrWeakPassword},
		{"password without symbol", "alice", "a@example.com", "Abcd1234", ErrWeakPassword},
		{"password without upper", "alice", "a@example.com", "abcd1234!", ErrWeakPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SignUp(ctx, tc.username, tc.email, tc.password)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSignUpUnverifiedEmailReissuesCode(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := newFakeMailer()
	svc := &AccountService{Store: st, Mailer: mailer}

	first, err := svc.SignUp(ctx, "alice", "alice@example.com", "Str0ng!pass")
	require.NoError(t, err)
	firstCode := mailer.codes["alice@example.com"]

	// Same email again before verification: new code, new password, same
	// record.
	second, err := svc.SignUp(ctx, "alice", "alice@example.com", "N3w!password")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	secondCode := mailer.codes["alice@example.com"]
	require.NotEqual(t, firstCode, secondCode)

	t.Run("old code no longer verifies", func(t *testing.T) {
		err := svc.VerifyCode(ctx, "alice", firstCode)
		require.ErrorIs(t, err, ErrInvalidCode)
	})

	t.Run("fresh code verifies with the new password", func(t *testing.T) {
		require.NoError(t, svc.VerifyCode(ctx, "alice", secondCode))

		_, err := svc.Authenticate(ctx, "alice@example.com", "N3w!password")
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, "alice@example.com", "Str0ng!pass")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestSignUpVerifiedEmailRejected(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := newFakeMailer()
	svc := &AccountService{Store: st, Mailer: mailer}

	_, err := svc.SignUp(ctx, "alice", "alice@example.com", "Str0ng!pass")
	require.NoError(t, err)
	require.NoError(t, svc.VerifyCode(ctx, "alice", mailer.codes["alice@example.com"]))

	_, err = svc.SignUp(ctx, "alice2", "alice@example.com", "Str0ng!pass")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignUpVerifiedUsernameRejected(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := newFakeMailer()
	svc := &AccountService{Store: st, Mailer: mailer}

	_, err := svc.SignUp(ctx, "alice", "alice@example.com", "Str0ng!pass")
	require.NoError(t, err)

	t.Run("unverified holder does not block the username", func(t *testing.T) {
		_, err := svc.SignUp(ctx, "alice", "other@example.com", "Str0ng!pass")
		require.NoError(t, err)
	})

	require.NoError(t, svc.VerifyCode(ctx, "alice", mailer.codes["alice@example.com"]))

	t.Run("verified holder blocks the username", func(t *testing.T) {
		_, err := svc.SignUp(ctx, "alice", "third@example.com", "Str0ng!pass")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestVerifyCodeExpiry(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := newFakeMailer()
	svc := &AccountService{Store: st, Mailer: mailer, CodeTTL: time.Nanosecond}

	_, err := svc.SignUp(ctx, "alice", "alice@example.com", "Str0ng!pass")
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	err = svc.VerifyCode(ctx, "alice", mailer.codes["alice@example.com"])
	require.ErrorIs(t, err, ErrCodeExpired)

	t.Run("wrong code still reports invalid, not expired", func(t *testing.T) {
		err := svc.VerifyCode(ctx, "alice", "000000")
		require.ErrorIs(t, err, ErrInvalidCode)
	})
}

func TestSignUpEmailFailureSurfacesButPersists(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := newFakeMailer()
	mailer.err = errors.New("smtp: connection refused")
	svc := &AccountService{Store: st, Mailer: mailer}

	_, err := svc.SignUp(ctx, "alice", "alice@example.com", "Str0ng!pass")
	require.ErrorIs(t, err, ErrEmailSend)

	// The record survived; a retry reissues against it.
	_, err = st.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)

	mailer.err = nil
	_, err = svc.SignUp(ctx, "alice", "alice@example.com", "Str0ng!pass")
	require.NoError(t, err)
	require.NotEmpty(t, mailer.codes["alice@example.com"])
}

func TestCheckUsername(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := newFakeMailer()
	svc := &AccountService{Store: st, Mailer: mailer}

	t.Run("rejects malformed usernames", func(t *testing.T) {
		_, err := svc.CheckUsername(ctx, "bad name!")
		require.ErrorIs(t, err, ErrInvalidUsername)
	})

	t.Run("free username is available", func(t *testing.T) {
		available, err := svc.CheckUsername(ctx, "alice")
		require.NoError(t, err)
		require.True(t, available)
	})

	_, err := svc.SignUp(ctx, "alice", "alice@example.com", "Str0ng!pass")
	require.NoError(t, err)

	t.Run("unverified holder leaves it available", func(t *testing.T) {
		available, err := svc.CheckUsername(ctx, "alice")
		require.NoError(t, err)
		require.True(t, available)
	})

	require.NoError(t, svc.VerifyCode(ctx, "alice", mailer.codes["alice@example.com"]))

	t.Run("verified holder makes it taken", func(t *testing.T) {
		available, err := svc.CheckUsername(ctx, "alice")
		require.NoError(t, err)
		require.False(t, available)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := newFakeMailer()
	svc := &AccountService{Store: st, Mailer: mailer}

	_, err := svc.SignUp(ctx, "alice", "alice@example.com", "Str0ng!pass")
	require.NoError(t, err)

	t.Run("unverified account cannot sign in", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice@example.com", "Str0ng!pass")
		require.ErrorIs(t, err, ErrNotVerified)
	})

	require.NoError(t, svc.VerifyCode(ctx, "alice", mailer.codes["alice@example.com"]))

	t.Run("valid credentials succeed", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "alice@example.com", "Str0ng!pass")
		require.NoError(t, err)
		require.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password is indistinguishable from unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice@example.com", "wrong-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Authenticate(ctx, "nobody@example.com", "Str0ng!pass")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
