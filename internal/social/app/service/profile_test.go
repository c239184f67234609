package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/usergraph/social-service/internal/social/app/service"
	"github.com/usergraph/social-service/internal/social/domain"
	domainmock "github.com/usergraph/social-service/internal/social/domain/mock"
	"github.com/usergraph/social-service/pkg/persistence"
	persistencemock "github.com/usergraph/social-service/pkg/persistence/mock"
)

func TestProfileService_Create_Returns(t *testing.T) {
	userID := domain.UserID{UUID: uuid.New()}
	data := service.CreateProfileData{
		Avatar:       "https://example.com/avatar.png",
		Sex:          "female",
		Birthday:     631152000,
		Country:      "Netherlands",
		Street:       "Keizersgracht 1",
		City:         "Amsterdam",
		MemberTypeID: domain.MemberTypeIDBasic,
		UserID:       userID,
	}

	tests := []struct {
		name           string
		userRepo       func(ctrl *gomock.Controller) domain.UserRepository
		memberTypeRepo func(ctrl *gomock.Controller) domain.MemberTypeRepository
		profileRepo    func(ctrl *gomock.Controller) domain.ProfileRepository
		expect         func(t *testing.T, result *service.ProfileData, err error)
	}{
		{
			name: "success",
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := domainmock.NewUserRepository(ctrl)
				mock.EXPECT().
					FindOne(gomock.Any(), domain.FindUserSpecification{IDs: []domain.UserID{userID}}).
					Return(&domain.User{ID: userID}, nil)
				return mock
			},
			memberTypeRepo: func(ctrl *gomock.Controller) domain.MemberTypeRepository {
				mock := domainmock.NewMemberTypeRepository(ctrl)
				mock.EXPECT().
					FindOne(gomock.Any(), domain.FindMemberTypeSpecification{IDs: []string{domain.MemberTypeIDBasic}}).
					Return(&domain.MemberType{ID: domain.MemberTypeIDBasic}, nil)
				return mock
			},
			profileRepo: func(ctrl *gomock.Controller) domain.ProfileRepository {
				profileID := domain.ProfileID{UUID: uuid.New()}

				mock := domainmock.NewProfileRepository(ctrl)
				mock.EXPECT().
					FindOne(gomock.Any(), domain.FindProfileSpecification{UserIDs: []domain.UserID{userID}}).
					Return(nil, domain.ErrProfileNotFound)
				mock.EXPECT().NextID().Return(profileID)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, profile *domain.Profile) {
						assert.Equal(t, profileID, profile.ID)
						assert.Equal(t, userID, profile.UserID)
						assert.Equal(t, domain.MemberTypeIDBasic, profile.MemberTypeID)
					}).
					Return(nil)
				return mock
			},
			expect: func(t *testing.T, result *service.ProfileData, err error) {
				require.NoError(t, err)
				assert.Equal(t, userID, result.UserID)
			},
		},
		{
			name: "error_when_user_not_found",
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := domainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserNotFound)
				return mock
			},
			memberTypeRepo: func(ctrl *gomock.Controller) domain.MemberTypeRepository {
				return domainmock.NewMemberTypeRepository(ctrl)
			},
			profileRepo: func(ctrl *gomock.Controller) domain.ProfileRepository {
				return domainmock.NewProfileRepository(ctrl)
			},
			expect: func(t *testing.T, _ *service.ProfileData, err error) {
				assert.ErrorIs(t, err, service.ErrUserNotFound)
			},
		},
		{
			name: "error_when_member_type_unknown",
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := domainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(&domain.User{ID: userID}, nil)
				return mock
			},
			memberTypeRepo: func(ctrl *gomock.Controller) domain.MemberTypeRepository {
				mock := domainmock.NewMemberTypeRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrMemberTypeNotFound)
				return mock
			},
			profileRepo: func(ctrl *gomock.Controller) domain.ProfileRepository {
				return domainmock.NewProfileRepository(ctrl)
			},
			expect: func(t *testing.T, _ *service.ProfileData, err error) {
				assert.ErrorIs(t, err, service.ErrMemberTypeUnknown)
			},
		},
		{
			name: "error_when_profile_already_exists",
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := domainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(&domain.User{ID: userID}, nil)
				return mock
			},
			memberTypeRepo: func(ctrl *gomock.Controller) domain.MemberTypeRepository {
				mock := domainmock.NewMemberTypeRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(&domain.MemberType{ID: domain.MemberTypeIDBasic}, nil)
				return mock
			},
			profileRepo: func(ctrl *gomock.Controller) domain.ProfileRepository {
				mock := domainmock.NewProfileRepository(ctrl)
				mock.EXPECT().
					FindOne(gomock.Any(), domain.FindProfileSpecification{UserIDs: []domain.UserID{userID}}).
					Return(&domain.Profile{UserID: userID}, nil)
				return mock
			},
			expect: func(t *testing.T, _ *service.ProfileData, err error) {
				assert.ErrorIs(t, err, service.ErrProfileAlreadyExists)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			srv := service.NewProfile(
				tc.profileRepo(ctrl),
				tc.userRepo(ctrl),
				tc.memberTypeRepo(ctrl),
				persistence.NewTransactionStub(),
			)

			result, err := srv.Create(context.Background(), data)
			tc.expect(t, result, err)
		})
	}
}

func TestProfileService_Create_UsesCollectionLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := domainmock.NewUserRepository(ctrl)
	userRepo.EXPECT().
		FindOne(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrUserNotFound)

	transaction := persistencemock.NewTransaction(ctrl)
	transaction.EXPECT().
		Execute(gomock.Any(), gomock.Any(), "update_users").
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error, _ ...string) error {
			return fn(ctx)
		})

	srv := service.NewProfile(
		domainmock.NewProfileRepository(ctrl),
		userRepo,
		domainmock.NewMemberTypeRepository(ctrl),
		transaction,
	)

	_, err := srv.Create(context.Background(), service.CreateProfileData{
		MemberTypeID: domain.MemberTypeIDBasic,
		UserID:       domain.UserID{UUID: uuid.New()},
	})
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestProfileService_Change_Returns(t *testing.T) {
	profileID := domain.ProfileID{UUID: uuid.New()}
	unknownMemberType := "premium"

	tests := []struct {
		name           string
		patch          service.ChangeProfileData
		profileRepo    func(ctrl *gomock.Controller) domain.ProfileRepository
		memberTypeRepo func(ctrl *gomock.Controller) domain.MemberTypeRepository
		expect         func(t *testing.T, result *service.ProfileData, err error)
	}{
		{
			name:  "success_city_patched",
			patch: service.ChangeProfileData{City: ptr("Rotterdam")},
			profileRepo: func(ctrl *gomock.Controller) domain.ProfileRepository {
				mock := domainmock.NewProfileRepository(ctrl)
				mock.EXPECT().
					FindOne(gomock.Any(), domain.FindProfileSpecification{IDs: []domain.ProfileID{profileID}}).
					Return(&domain.Profile{ID: profileID, City: "Amsterdam"}, nil)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, profile *domain.Profile) {
						assert.Equal(t, "Rotterdam", profile.City)
					}).
					Return(nil)
				return mock
			},
			memberTypeRepo: func(ctrl *gomock.Controller) domain.MemberTypeRepository {
				return domainmock.NewMemberTypeRepository(ctrl)
			},
			expect: func(t *testing.T, result *service.ProfileData, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Rotterdam", result.City)
			},
		},
		{
			name:  "error_when_new_member_type_unknown",
			patch: service.ChangeProfileData{MemberTypeID: &unknownMemberType},
			profileRepo: func(ctrl *gomock.Controller) domain.ProfileRepository {
				mock := domainmock.NewProfileRepository(ctrl)
				mock.EXPECT().
					FindOne(gomock.Any(), gomock.Any()).
					Return(&domain.Profile{ID: profileID, MemberTypeID: domain.MemberTypeIDBasic}, nil)
				return mock
			},
			memberTypeRepo: func(ctrl *gomock.Controller) domain.MemberTypeRepository {
				mock := domainmock.NewMemberTypeRepository(ctrl)
				mock.EXPECT().
					FindOne(gomock.Any(), domain.FindMemberTypeSpecification{IDs: []string{unknownMemberType}}).
					Return(nil, domain.ErrMemberTypeNotFound)
				return mock
			},
			expect: func(t *testing.T, _ *service.ProfileData, err error) {
				assert.ErrorIs(t, err, service.ErrMemberTypeUnknown)
			},
		},
		{
			name:  "error_when_profile_not_found",
			patch: service.ChangeProfileData{City: ptr("Rotterdam")},
			profileRepo: func(ctrl *gomock.Controller) domain.ProfileRepository {
				mock := domainmock.NewProfileRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrProfileNotFound)
				return mock
			},
			memberTypeRepo: func(ctrl *gomock.Controller) domain.MemberTypeRepository {
				return domainmock.NewMemberTypeRepository(ctrl)
			},
			expect: func(t *testing.T, _ *service.ProfileData, err error) {
				assert.ErrorIs(t, err, service.ErrProfileNotFound)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			srv := service.NewProfile(
				tc.profileRepo(ctrl),
				domainmock.NewUserRepository(ctrl),
				tc.memberTypeRepo(ctrl),
				persistence.NewTransactionStub(),
			)

			result, err := srv.Change(context.Background(), profileID, tc.patch)
			tc.expect(t, result, err)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
