package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHousekeepingSweepClearsExpiredCodes(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := newFakeMailer()
	accounts := &AccountService{Store: st, Mailer: mailer, CodeTTL: time.Nanosecond}

	_, err := accounts.SignUp(ctx, "alice", "alice@example.com", "Str0ng!pass")
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hk := NewHousekeepingService(st, logger, time.Hour)
	hk.Start()
	hk.Stop()

	user, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Nil(t, user.VerifyCodeHash)
	require.Nil(t, user.VerifyCodeExpiry)

	// With the code swept, verification can only restart via sign-up.
	err = accounts.VerifyCode(ctx, "alice", mailer.codes["alice@example.com"])
	require.ErrorIs(t, err, ErrInvalidCode)
}

func TestHousekeepingLeavesValidCodes(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := newFakeMailer()
	accounts := &AccountService{Store: st, Mailer: mailer}

	_, err := accounts.SignUp(ctx, "alice", "alice@example.com", "Str0ng!pass")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hk := NewHousekeepingService(st, logger, time.Hour)
	hk.Start()
	hk.Stop()

	require.NoError(t, accounts.VerifyCode(ctx, "alice", mailer.codes["alice@example.com"]))
}
