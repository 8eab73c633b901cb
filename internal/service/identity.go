package service

import (
	"context"
	"strconv"
	"time"

	"github.com/wealthvault/backend/internal/db"
	"github.com/wealthvault/backend/internal/model"
	"github.com/wealthvault/backend/internal/token"
)

// IdentityResolver turns a presented bearer value into an authenticated
// identity. Every failure mode (malformed token, bad signature, expiry,
// empty subject, deleted user) collapses into ErrUnauthenticated.
type IdentityResolver struct {
	users    UserStore
	access   *token.AccessCodec
	devToken string
}

func NewIdentityResolver(users UserStore, access *token.AccessCodec, devToken string) *IdentityResolver {
	return &IdentityResolver{users: users, access: access, devToken: devToken}
}

func (r *IdentityResolver) Resolve(ctx context.Context, bearer string) (*model.Identity, error) {
	// Dev-override path: the hardcoded value maps to a synthetic admin
	// without decoding or touching the database. It cannot collide with
	// an issued token, which is always a three-part JWT.
	if r.devToken != "" && bearer == r.devToken {
		return model.DevAdminIdentity(), nil
	}

	subject, err := r.access.Verify(bearer, time.Now())
	if err != nil {
		return nil, ErrUnauthenticated
	}
	if subject == "" {
		return nil, ErrUnauthenticated
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := r.users.FindUserByID(ctx, userID)
	if err != nil {
		if db.IsNoRows(err) {
			// The account may have been deleted after issuance.
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	return model.IdentityFromUser(user), nil
}

// RequireAdmin is the role gate layered on top of Resolve. It is a pure
// predicate: no I/O, and it never substitutes for resolution.
func RequireAdmin(identity *model.Identity) (*model.Identity, error) {
	if identity == nil || !identity.IsAdmin() {
		return nil, ErrForbidden
	}
	return identity, nil
}
