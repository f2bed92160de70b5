// Package notify sends best-effort notifications about accepted
// registrations. Failures are logged by callers and never surface to
// the registering client.
package notify

import (
	"context"

	"github.com/hackfest/api/internal/registration/model"
)

// Notifier announces an accepted registration.
type Notifier interface {
	NotifyRegistration(ctx context.Context, reg *model.TeamRegistration) error
}

// Noop is a Notifier used when mail is not configured.
type Noop struct{}

// NewNoop creates a no-op notifier.
func NewNoop() Noop {
	return Noop{}
}

// NotifyRegistration does nothing.
func (Noop) NotifyRegistration(context.Context, *model.TeamRegistration) error {
	return nil
}
