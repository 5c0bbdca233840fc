package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// signUpVerified registers and verifies a user, returning the account for
// owner-side calls.
func signUpVerified(t *testing.T, svc *AccountService, mailer *fakeMailer, username, email string) string {
	t.Helper()

	user, err := svc.SignUp(context.Background(), username, email, "Str0ng!pass")
	require.NoError(t, err)
	require.NoError(t, svc.VerifyCode(context.Background(), username, mailer.codes[email]))
	return user.ID
}

func TestSubmitMessage(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := newFakeMailer()
	accounts := &AccountService{Store: st, Mailer: mailer}
	svc := &MessageService{Store: st}

	ownerID := signUpVerified(t, accounts, mailer, "alice", "alice@example.com")

	t.Run("rejects content outside bounds", func(t *testing.T) {
		_, err := svc.Submit(ctx, "alice", "hi")
		require.ErrorIs(t, err, ErrInvalidContent)

		_, err = svc.Submit(ctx, "alice", strings.Repeat("x", 301))
		require.ErrorIs(t, err, ErrInvalidContent)
	})

	t.Run("counts characters, not bytes", func(t *testing.T) {
		// Five runes, more than five bytes.
		_, err := svc.Submit(ctx, "alice", "héllo")
		require.NoError(t, err)
	})

	t.Run("unknown recipient reports not found", func(t *testing.T) {
		_, err := svc.Submit(ctx, "nobody", "hello there friend")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("echoes the updated collection newest first", func(t *testing.T) {
		_, err := svc.Submit(ctx, "alice", "first anonymous note")
		require.NoError(t, err)

		messages, err := svc.Submit(ctx, "alice", "second anonymous note")
		require.NoError(t, err)
		require.Equal(t, "second anonymous note", messages[0].Content)
	})

	t.Run("closed gate persists nothing", func(t *testing.T) {
		before, err := svc.List(ctx, ownerID)
		require.NoError(t, err)

		_, err = svc.SetAcceptance(ctx, ownerID, false)
		require.NoError(t, err)

		_, err = svc.Submit(ctx, "alice", "should be dropped")
		require.ErrorIs(t, err, ErrNotAccepting)

		after, err := svc.List(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, after, len(before))
	})
}

func TestListMessages(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := newFakeMailer()
	accounts := &AccountService{Store: st, Mailer: mailer}
	svc := &MessageService{Store: st}

	ownerID := signUpVerified(t, accounts, mailer, "alice", "alice@example.com")

	t.Run("empty inbox is an empty slice", func(t *testing.T) {
		messages, err := svc.List(ctx, ownerID)
		require.NoError(t, err)
		require.NotNil(t, messages)
		require.Empty(t, messages)
	})

	t.Run("messages come back newest first", func(t *testing.T) {
		for _, content := range []string{"first note", "second note", "third note"} {
			_, err := svc.Submit(ctx, "alice", content)
			require.NoError(t, err)
		}

		messages, err := svc.List(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, messages, 3)
		require.Equal(t, "third note", messages[0].Content)
		require.Equal(t, "first note", messages[2].Content)
	})
}

func TestDeleteMessage(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := newFakeMailer()
	accounts := &AccountService{Store: st, Mailer: mailer}
	svc := &MessageService{Store: st}

	ownerID := signUpVerified(t, accounts, mailer, "alice", "alice@example.com")
	otherID := signUpVerified(t, accounts, mailer, "bob", "bob@example.com")

	messages, err := svc.Submit(ctx, "alice", "delete me later")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	messageID := messages[0].ID

	t.Run("another user cannot delete it", func(t *testing.T) {
		err := svc.Delete(ctx, otherID, messageID)
		require.ErrorIs(t, err, ErrMessageNotFound)
	})

	t.Run("owner deletes it once", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, ownerID, messageID))

		remaining, err := svc.List(ctx, ownerID)
		require.NoError(t, err)
		require.Empty(t, remaining)
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		err := svc.Delete(ctx, ownerID, messageID)
		require.ErrorIs(t, err, ErrMessageNotFound)
	})
}

func TestAcceptanceGate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := newFakeMailer()
	accounts := &AccountService{Store: st, Mailer: mailer}
	svc := &MessageService{Store: st}

	ownerID := signUpVerified(t, accounts, mailer, "alice", "alice@example.com")

	t.Run("accounts start accepting", func(t *testing.T) {
		accepting, err := svc.AcceptanceStatus(ctx, ownerID)
		require.NoError(t, err)
		require.True(t, accepting)
	})

	t.Run("toggle off and back on", func(t *testing.T) {
		accepting, err := svc.SetAcceptance(ctx, ownerID, false)
		require.NoError(t, err)
		require.False(t, accepting)

		accepting, err = svc.AcceptanceStatus(ctx, ownerID)
		require.NoError(t, err)
		require.False(t, accepting)

		accepting, err = svc.SetAcceptance(ctx, ownerID, true)
		require.NoError(t, err)
		require.True(t, accepting)
	})

	t.Run("unknown owner reports not found", func(t *testing.T) {
		_, err := svc.AcceptanceStatus(ctx, "missing-user")
		require.ErrorIs(t, err, ErrUserNotFound)

		_, err = svc.SetAcceptance(ctx, "missing-user", true)
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
