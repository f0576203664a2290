package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/capitalizeai/scoring-api/internal/api/dto"
	"github.com/capitalizeai/scoring-api/internal/domain"
	"github.com/capitalizeai/scoring-api/internal/repository"
)

type ProfileService struct {
	repo repository.Repository
}

func NewProfileService(repo repository.Repository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	profile, err := s.repo.Profile().Get(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return dto.FromProfile(profile), nil
}

// Upsert creates or updates the caller's profile. The email always comes
// from the authenticated identity, never from the request body.
func (s *ProfileService) Upsert(ctx context.Context, userID, email string, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile := &domain.Profile{
		ID:                userID,
		Email:             email,
		Country:           "CM",
		PreferredLanguage: "fr",
	}

	if existing, err := s.repo.Profile().Get(ctx, userID); err == nil {
		profile = existing
		profile.Email = email
	}

	if req.FullName != nil {
		profile.FullName = req.FullName
	}
	if req.Phone != nil {
		profile.Phone = req.Phone
	}
	if req.CompanyName != nil {
		profile.CompanyName = req.CompanyName
	}
	if req.JobTitle != nil {
		profile.JobTitle = req.JobTitle
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = req.AvatarURL
	}
	if req.Country != nil {
		profile.Country = *req.Country
	}
	if req.PreferredLanguage != nil {
		profile.PreferredLanguage = *req.PreferredLanguage
	}
	if req.Onboarded != nil {
		profile.Onboarded = *req.Onboarded
	}

	saved, err := s.repo.Profile().Upsert(ctx, profile)
	if err != nil {
		return nil, err
	}
	return dto.FromProfile(saved), nil
}
