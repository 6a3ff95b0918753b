package newsletter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/eyoab/tarikoch/internal/app"
)

// ErrInvalidEmail is returned for addresses that fail syntax validation.
var ErrInvalidEmail = errors.New("invalid email address")

// Service implements the subscribe/unsubscribe flow.
type Service struct {
	store  Store
	mailer Mailer
	logger *slog.Logger
}

// NewService creates a newsletter service.
func NewService(store Store, mailer Mailer) *Service {
	return &Service{
		store:  store,
		mailer: mailer,
		logger: app.Logger(),
	}
}

// Subscribe validates and records an address. Subscribing twice is
// idempotent; the welcome mail goes out only on first subscription, and a
// mail failure is logged without failing the subscription.
func (s *Service) Subscribe(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)

	if err != nil {
		return err
	}

	added, err := s.store.Add(ctx, email)

	if err != nil {
		return fmt.Errorf("could not store the subscription: %w", err)
	}

	if !added {
		s.logger.Debug("Duplicate subscription", "email", email)
		return nil
	}

	if err := s.mailer.SendWelcome(ctx, email); err != nil {
		s.logger.Error("Failed to send the welcome mail", "email", email, "error", err)
	}

	return nil
}

// Unsubscribe removes an address. Removing an unknown address is a no-op
// success so unsubscribe links can never fail for the reader.
func (s *Service) Unsubscribe(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)

	if err != nil {
		return err
	}

	if _, err := s.store.Remove(ctx, email); err != nil {
		return fmt.Errorf("could not remove the subscription: %w", err)
	}

	return nil
}

// Subscribers returns the current subscriber count.
func (s *Service) Subscribers(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	addr, err := mail.ParseAddress(email)

	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}

	return email, nil
}
