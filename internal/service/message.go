package service

import (
	"context"
	"errors"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/murmurapp/murmur/internal/domain"
	"github.com/murmurapp/murmur/internal/store"
	"github.com/murmurapp/murmur/pkg/idx"
	"github.com/murmurapp/murmur/pkg/slogx"
)

var (
	ErrNotAccepting    = errors.New("user is not accepting messages")
	ErrMessageNotFound = errors.New("message not found")
	ErrInvalidContent  = errors.New("content must be between 5 and 300 characters")
)

// Message content bounds, measured in characters.
const (
	MinContentLength = 5
	MaxContentLength = 300
)

// MessageService owns the anonymous inbox: the acceptance gate, message
// ingestion and owner-side retrieval/deletion.
type MessageService struct {
	Store store.Store
}

// Submit delivers an anonymous message to username's inbox and echoes the
// updated collection back, newest first. The acceptance gate is checked
// before anything is written.
func (s *MessageService) Submit(ctx context.Context, username, content string) ([]domain.Message, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate content length in characters, not bytes.
	if n := utf8.RuneCountInString(content); n < MinContentLength || n > MaxContentLength {
		return nil, ErrInvalidContent
	}

	// 2. Resolve the recipient.
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return nil, err
	}

	// 3. The gate: nothing is persisted for a closed inbox.
	if !user.AcceptingMessages {
		return nil, ErrNotAccepting
	}

	// 4. Append the message.
	msg := domain.Message{
		ID:        idx.New().String(),
		UserID:    user.ID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Messages().AppendMessage(ctx, msg)
	})
	if err != nil {
		log.Error("failed to append message",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	log.Debug("message delivered",
		slog.String("user_id", user.ID),
		slog.String("message_id", msg.ID),
	)

	// 5. Echo the whole collection back to the sender.
	return s.Store.Messages().ListMessagesSortedDesc(ctx, user.ID)
}

// List returns the owner's messages newest first. An empty inbox is an
// empty slice, not an error.
func (s *MessageService) List(ctx context.Context, ownerID string) ([]domain.Message, error) {
	return s.Store.Messages().ListMessagesSortedDesc(ctx, ownerID)
}

// Delete removes one message from the owner's collection. A second call
// with the same id reports ErrMessageNotFound: no-op deletes are detected
// by the affected-row count, not a pre-check.
func (s *MessageService) Delete(ctx context.Context, ownerID, messageID string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.Messages().RemoveMessageByID(ctx, ownerID, messageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMessageNotFound
		}
		log.Error("failed to delete message",
			slog.String("user_id", ownerID),
			slog.String("message_id", messageID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// AcceptanceStatus reads the owner's gate.
func (s *MessageService) AcceptanceStatus(ctx context.Context, ownerID string) (bool, error) {
	user, err := s.Store.Users().GetUserByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}
	return user.AcceptingMessages, nil
}

// SetAcceptance writes the owner's gate and returns the new value.
// Concurrent toggles are last-write-wins; there is no optimistic locking.
func (s *MessageService) SetAcceptance(ctx context.Context, ownerID string, accepting bool) (bool, error) {
	log := slogx.FromContext(ctx)

	if err := s.Store.Users().SetAcceptingMessages(ctx, ownerID, accepting); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, ErrUserNotFound
		}
		log.Error("failed to update acceptance gate",
			slog.String("user_id", ownerID),
			slog.Any("error", err),
		)
		return false, err
	}
	return accepting, nil
}
