package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/usergraph/social-service/internal/social/domain"
	"github.com/usergraph/social-service/pkg/persistence"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("user already has a profile")
	ErrMemberTypeUnknown    = errors.New("unknown member type")
)

type (
	Profile interface {
		List(context.Context) ([]ProfileData, error)
		GetByID(context.Context, domain.ProfileID) (*ProfileData, error)
		Create(context.Context, CreateProfileData) (*ProfileData, error)
		Change(context.Context, domain.ProfileID, ChangeProfileData) (*ProfileData, error)
		Delete(context.Context, domain.ProfileID) (*ProfileData, error)
	}

	CreateProfileData struct {
		Avatar       string
		Sex          string
		Birthday     int64
		Country      string
		Street       string
		City         string
		MemberTypeID string
		UserID       domain.UserID
	}

	ChangeProfileData struct {
		Avatar       *string
		Sex          *string
		Birthday     *int64
		Country      *string
		Street       *string
		City         *string
		MemberTypeID *string
	}

	ProfileData struct {
		ID           domain.ProfileID
		Avatar       string
		Sex          string
		Birthday     int64
		Country      string
		Street       string
		City         string
		MemberTypeID string
		UserID       domain.UserID
	}

	profileService struct {
		profileRepo    domain.ProfileRepository
		userRepo       domain.UserRepository
		memberTypeRepo domain.MemberTypeRepository
		transaction    persistence.Transaction
	}
)

func NewProfile(
	profileRepo domain.ProfileRepository,
	userRepo domain.UserRepository,
	memberTypeRepo domain.MemberTypeRepository,
	transaction persistence.Transaction,
) Profile {
	return &profileService{
		profileRepo:    profileRepo,
		userRepo:       userRepo,
		memberTypeRepo: memberTypeRepo,
		transaction:    transaction,
	}
}

func (s *profileService) List(ctx context.Context) ([]ProfileData, error) {
	profiles, err := s.profileRepo.Find(ctx, domain.FindProfileSpecification{})
	if err != nil {
		return nil, fmt.Errorf("find profiles: %w", err)
	}

	return toProfilesData(profiles), nil
}

func (s *profileService) GetByID(ctx context.Context, profileID domain.ProfileID) (*ProfileData, error) {
	profile, err := s.findProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	return toProfileData(profile), nil
}

// Create validates every reference the new profile holds: the owning user
// must exist, the member type id must be present in the member type
// collection and the user must not have a profile yet.
func (s *profileService) Create(ctx context.Context, data CreateProfileData) (*ProfileData, error) {
	createProfileImpl := func(ctx context.Context) (*ProfileData, error) {
		_, err := s.userRepo.FindOne(ctx, domain.FindUserSpecification{IDs: []domain.UserID{data.UserID}})
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("find user by id: %w", err)
		}

		if err = s.checkMemberTypeExists(ctx, data.MemberTypeID); err != nil {
			return nil, err
		}

		_, err = s.profileRepo.FindOne(ctx, domain.FindProfileSpecification{UserIDs: []domain.UserID{data.UserID}})
		if err == nil {
			return nil, ErrProfileAlreadyExists
		}
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, fmt.Errorf("find profile by user id: %w", err)
		}

		profile := &domain.Profile{
			ID:           s.profileRepo.NextID(),
			Avatar:       data.Avatar,
			Sex:          data.Sex,
			Birthday:     data.Birthday,
			Country:      data.Country,
			Street:       data.Street,
			City:         data.City,
			MemberTypeID: data.MemberTypeID,
			UserID:       data.UserID,
		}
		err = s.profileRepo.Store(ctx, profile)
		if err != nil {
			return nil, fmt.Errorf("store profile: %w", err)
		}

		return toProfileData(profile), nil
	}

	return persistence.ExecuteWithResult(ctx, s.transaction, createProfileImpl, updateUsersLockName)
}

func (s *profileService) Change(ctx context.Context, profileID domain.ProfileID, patch ChangeProfileData) (*ProfileData, error) {
	changeProfileImpl := func(ctx context.Context) (*ProfileData, error) {
		profile, err := s.findProfile(ctx, profileID)
		if err != nil {
			return nil, err
		}

		if patch.MemberTypeID != nil {
			if err = s.checkMemberTypeExists(ctx, *patch.MemberTypeID); err != nil {
				return nil, err
			}
			profile.MemberTypeID = *patch.MemberTypeID
		}
		if patch.Avatar != nil {
			profile.Avatar = *patch.Avatar
		}
		if patch.Sex != nil {
			profile.Sex = *patch.Sex
		}
		if patch.Birthday != nil {
			profile.Birthday = *patch.Birthday
		}
		if patch.Country != nil {
			profile.Country = *patch.Country
		}
		if patch.Street != nil {
			profile.Street = *patch.Street
		}
		if patch.City != nil {
			profile.City = *patch.City
		}

		err = s.profileRepo.Store(ctx, profile)
		if err != nil {
			return nil, fmt.Errorf("store profile: %w", err)
		}

		return toProfileData(profile), nil
	}

	return persistence.ExecuteWithResult(ctx, s.transaction, changeProfileImpl)
}

func (s *profileService) Delete(ctx context.Context, profileID domain.ProfileID) (*ProfileData, error) {
	deleteProfileImpl := func(ctx context.Context) (*ProfileData, error) {
		profile, err := s.findProfile(ctx, profileID)
		if err != nil {
			return nil, err
		}

		err = s.profileRepo.Delete(ctx, profileID)
		if err != nil {
			return nil, fmt.Errorf("delete profile: %w", err)
		}

		return toProfileData(profile), nil
	}

	return persistence.ExecuteWithResult(ctx, s.transaction, deleteProfileImpl)
}

func (s *profileService) findProfile(ctx context.Context, profileID domain.ProfileID) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindOne(ctx, domain.FindProfileSpecification{IDs: []domain.ProfileID{profileID}})
	if errors.Is(err, domain.ErrProfileNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find profile by id: %w", err)
	}

	return profile, nil
}

func (s *profileService) checkMemberTypeExists(ctx context.Context, memberTypeID string) error {
	_, err := s.memberTypeRepo.FindOne(ctx, domain.FindMemberTypeSpecification{IDs: []string{memberTypeID}})
	if errors.Is(err, domain.ErrMemberTypeNotFound) {
		return ErrMemberTypeUnknown
	}
	if err != nil {
		return fmt.Errorf("find member type by id: %w", err)
	}

	return nil
}
