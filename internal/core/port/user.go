package port

import (
	"context"

	"heroapp/internal/core/domain"
)

// UserRepository is the credential store. Create must return
// domain.ErrEmailTaken on a duplicate email so concurrent signups race at the
// store's uniqueness constraint instead of a check-then-act lookup.
type UserRepository interface {
	GetByUUID(ctx context.Context, uuid string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
	DeleteByUUID(ctx context.Context, uuid string) error
}
