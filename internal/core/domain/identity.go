package domain

import (
	"errors"
	"time"
)

// IdentityKind discriminates the two account collections.
type IdentityKind string

const (
	KindStandard   IdentityKind = "standard"
	KindPrivileged IdentityKind = "privileged"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrDuplicateEmail = errors.New("email already registered")
var ErrAccountNotFound = errors.New("account not found")
var ErrUnauthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")

// Account is a credential record in one of the two collections. IDs are
// allocated from a separate sequence per kind, so the same numeric ID can
// name both a standard and a privileged account; the kind tag must always
// travel with the ID.
type Account struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name,omitempty"` // standard accounts only
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the resolved "who is making this request" value: a kind tag
// plus the underlying account. It is derived per request and never persisted.
type Identity struct {
	Kind    IdentityKind `json:"kind"`
	Account *Account     `json:"account"`
}

// Privileged reports whether the identity belongs to an administrator.
// A nil identity (anonymous request) is never privileged.
func (i *Identity) Privileged() bool {
	return i != nil && i.Kind == KindPrivileged
}
