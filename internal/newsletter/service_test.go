package newsletter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockStore is a mock implementation of the Store interface
type MockStore struct {
	AddFunc    func(ctx context.Context, email string) (bool, error)
	RemoveFunc func(ctx context.Context, email string) (bool, error)
}

func (m *MockStore) Add(ctx context.Context, email string) (bool, error) {
	return m.AddFunc(ctx, email)
}

func (m *MockStore) Remove(ctx context.Context, email string) (bool, error) {
	return m.RemoveFunc(ctx, email)
}

func (m *MockStore) Has(context.Context, string) (bool, error) { return false, nil }

func (m *MockStore) Count(context.Context) (int64, error) { return 0, nil }

func (m *MockStore) Close() error { return nil }

// MockMailer is a mock implementation of the Mailer interface
type MockMailer struct {
	SendWelcomeFunc func(ctx context.Context, email string) error
	sent            []string
}

func (m *MockMailer) SendWelcome(ctx context.Context, email string) error {
	m.sent = append(m.sent, email)
	if m.SendWelcomeFunc != nil {
		return m.SendWelcomeFunc(ctx, email)
	}
	return nil
}

func TestSubscribe(t *testing.T) {
	t.Run("New subscriber gets a welcome mail", func(t *testing.T) {
		store := &MockStore{
			AddFunc: func(_ context.Context, email string) (bool, error) {
				assert.Equal(t, "reader@example.com", email)
				return true, nil
			},
		}
		mailer := &MockMailer{}

		err := NewService(store, mailer).Subscribe(context.Background(), " Reader@Example.com ")

		require.NoError(t, err)
		assert.Equal(t, []string{"reader@example.com"}, mailer.sent)
	})

	t.Run("Duplicate subscribe is idempotent and sends no mail", func(t *testing.T) {
		store := &MockStore{
			AddFunc: func(context.Context, string) (bool, error) { return false, nil },
		}
		mailer := &MockMailer{}

		err := NewService(store, mailer).Subscribe(context.Background(), "reader@example.com")

		require.NoError(t, err)
		assert.Empty(t, mailer.sent)
	})

	t.Run("Invalid address is rejected", func(t *testing.T) {
		err := NewService(&MockStore{}, &MockMailer{}).Subscribe(context.Background(), "not-an-email")

		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("Mail failure does not fail the subscription", func(t *testing.T) {
		store := &MockStore{
			AddFunc: func(context.Context, string) (bool, error) { return true, nil },
		}
		mailer := &MockMailer{
			SendWelcomeFunc: func(context.Context, string) error { return errors.New("smtp down") },
		}

		err := NewService(store, mailer).Subscribe(context.Background(), "reader@example.com")

		assert.NoError(t, err)
	})

	t.Run("Store failure fails the subscription", func(t *testing.T) {
		store := &MockStore{
			AddFunc: func(context.Context, string) (bool, error) { return false, errors.New("redis down") },
		}

		err := NewService(store, &MockMailer{}).Subscribe(context.Background(), "reader@example.com")

		assert.Error(t, err)
	})
}

func TestUnsubscribe(t *testing.T) {
	t.Run("Known address is removed", func(t *testing.T) {
		removed := ""
		store := &MockStore{
			RemoveFunc: func(_ context.Context, email string) (bool, error) {
				removed = email
				return true, nil
			},
		}

		err := NewService(store, &MockMailer{}).Unsubscribe(context.Background(), "reader@example.com")

		require.NoError(t, err)
		assert.Equal(t, "reader@example.com", removed)
	})

	t.Run("Unknown address is a no-op success", func(t *testing.T) {
		store := &MockStore{
			RemoveFunc: func(context.Context, string) (bool, error) { return false, nil },
		}

		err := NewService(store, &MockMailer{}).Unsubscribe(context.Background(), "stranger@example.com")

		assert.NoError(t, err)
	})

	t.Run("Invalid address is rejected", func(t *testing.T) {
		err := NewService(&MockStore{}, &MockMailer{}).Unsubscribe(context.Background(), "@@")

		assert.ErrorIs(t, err, ErrInvalidEmail)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	added, err := store.Add(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.Add(ctx, "a@example.com")
	require.NoError(t, err)
	assert.False(t, added, "second add reports the address as already present")

	has, err := store.Has(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, has)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	removed, err := store.Remove(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.Remove(ctx, "a@example.com")
	require.NoError(t, err)
	assert.False(t, removed)

	count, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
