package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/connect/internal/connect/domain"
	"github.com/aussiebroadwan/connect/internal/connect/store"
)

// ProfileService reads and updates the public profile of the signed-in
// student.
type ProfileService struct {
	Store store.Store
}

// GetPublicProfile returns the caller's profile, creating an empty one on
// first access.
func (s *ProfileService) GetPublicProfile(ctx context.Context, who domain.SessionClaim) (domain.PublicProfile, error) {
	var out domain.PublicProfile
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Profiles().CreateProfileIfMissing(ctx, baseProfile(who)); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}

		p, err := tx.Profiles().GetProfile(ctx, who.Regno)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		out = p
		return nil
	})
	return out, err
}

// UpdatePublicProfile applies the non-empty fields of u. Empty strings
// leave the stored value unchanged rather than clearing it.
func (s *ProfileService) UpdatePublicProfile(ctx context.Context, who domain.SessionClaim, u domain.ProfileUpdate) error {
	u = normalizeUpdate(u)

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Profiles().CreateProfileIfMissing(ctx, baseProfile(who)); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		if u.IsEmpty() {
			return nil
		}
		if err := tx.Profiles().UpdateProfile(ctx, who.Regno, u); err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		return nil
	})
}

func baseProfile(who domain.SessionClaim) domain.PublicProfile {
	return domain.PublicProfile{
		Firstname: who.Firstname,
		Lastname:  who.Lastname,
		Regno:     who.Regno,
	}
}

func normalizeUpdate(u domain.ProfileUpdate) domain.ProfileUpdate {
	u.ProfilePhotoURL = nonEmpty(u.ProfilePhotoURL)
	u.Branch = nonEmpty(u.Branch)
	return u
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
