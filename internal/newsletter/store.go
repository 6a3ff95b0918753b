// Package newsletter manages the subscriber set and welcome mail.
package newsletter

import "context"

// Store defines the interface for the subscriber set. Implementations
// must be safe for concurrent use.
type Store interface {
	// Add records a subscriber and reports whether the address was newly
	// added.
	Add(ctx context.Context, email string) (bool, error)

	// Remove deletes a subscriber and reports whether the address was
	// present.
	Remove(ctx context.Context, email string) (bool, error)

	// Has reports whether the address is subscribed.
	Has(ctx context.Context, email string) (bool, error)

	// Count returns the number of subscribers.
	Count(ctx context.Context) (int64, error)

	// Close releases any resources used by the store
	Close() error
}
