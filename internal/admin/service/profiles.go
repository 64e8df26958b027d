package service

import (
	"context"
	"errors"

	"github.com/hirelane/staffdesk/internal/admin/domain"
	"github.com/hirelane/staffdesk/internal/admin/store"
)

type ProfilesService struct {
	Store store.Store
}

// GetProfileByUserID fetches a profile by its auth-provider user id.
func (s *ProfilesService) GetProfileByUserID(ctx context.Context, userID string) (domain.Profile, error) {
	return s.Store.Profiles().GetProfileByUserID(ctx, userID)
}

// IsAdmin reports whether the user's profile carries the admin role. A
// missing profile is simply not an admin, not an error.
func (s *ProfilesService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	profile, err := s.Store.Profiles().GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return profile.Role == domain.RoleAdmin, nil
}
