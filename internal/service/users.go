package service

import (
	"context"

	"github.com/wealthvault/backend/internal/db"
	"github.com/wealthvault/backend/internal/model"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Profile returns the account behind an authenticated identity. The
// dev-admin identity has no users row, so its profile is synthesized.
func (s *UserService) Profile(ctx context.Context, identity *model.Identity) (*model.UserResponse, error) {
	if identity.Kind == model.IdentityDevAdmin {
		return &model.UserResponse{
			ID:    identity.ID,
			Name:  identity.Name,
			Email: identity.Email,
		}, nil
	}

	user, err := s.users.FindUserByID(ctx, identity.ID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	resp := model.NewUserResponse(user)
	return &resp, nil
}
