package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// AccountRepository is the credential store. Every method is scoped to a
// single identity kind and never searches across kinds.
type AccountRepository interface {
	// FindByEmail performs an exact, case-sensitive match within the given
	// kind's collection. Returns domain.ErrAccountNotFound on miss.
	FindByEmail(ctx context.Context, kind domain.IdentityKind, email string) (*domain.Account, error)

	// FindByID resolves a numeric identifier within the given kind's
	// collection. IDs are allocated per kind, so the same number can exist
	// in both collections.
	FindByID(ctx context.Context, kind domain.IdentityKind, id int64) (*domain.Account, error)

	// Create inserts a new account, allocating its ID from the kind's
	// sequence. Returns domain.ErrDuplicateEmail if the email is already
	// taken within that kind.
	Create(ctx context.Context, kind domain.IdentityKind, account *domain.Account) (*domain.Account, error)

	// CountByKind reports how many accounts of the given kind exist.
	CountByKind(ctx context.Context, kind domain.IdentityKind) (int64, error)
}
