package provider

import (
	"context"
	"errors"

	"fraudScope/internal/model"
)

// ErrUnavailable signals that activity data cannot be supplied for the
// address. The scanner treats it as a routing signal to the synthetic
// fallback, never as a surfaced error.
var ErrUnavailable = errors.New("wallet activity unavailable")

// ActivityProvider supplies a normalized activity record for an address.
// Implementations may block on I/O; the caller bounds the call with its
// context and applies no retries of its own.
type ActivityProvider interface {
	Fetch(ctx context.Context, address, chain string) (*model.WalletActivity, error)
}
