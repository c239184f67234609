package service_test

import (
	"context"
	"errors"
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

func TestUserService_Create_Returns(t *testing.T) {
	tests := []struct {
		name     string
		data     service.CreateUserData
		userRepo func(ctrl *gomock.Controller) domain.UserRepository
		expect   func(t *testing.T, result *service.UserData, err error)
	}{
		{
			name: "success",
			data: service.CreateUserData{FirstName: "John", LastName: "Doe", Email: "john@example.com"},
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				userID := domain.UserID{UUID: uuid.New()}

				mock := domainmock.NewUserRepository(ctrl)
				mock.EXPECT().NextID().Return(userID)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, user *domain.User) {
						assert.Equal(t, userID, user.ID)
						assert.Len(t, user.Changes, 1)
						assert.IsType(t, domain.EventUserCreated{}, user.Changes[0])
					}).
					Return(nil)
				return mock
			},
			expect: func(t *testing.T, result *service.UserData, err error) {
				require.NoError(t, err)
				assert.Equal(t, "John", result.FirstName)
				assert.Empty(t, result.SubscribedToUserIDs)
			},
		},
		{
			name: "success_whitespace_trimmed",
			data: service.CreateUserData{FirstName: " John ", LastName: " Doe ", Email: " john@example.com "},
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := domainmock.NewUserRepository(ctrl)
				mock.EXPECT().NextID().Return(domain.UserID{UUID: uuid.New()})
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, user *domain.User) {
						assert.Equal(t, "John", user.FirstName)
						assert.Equal(t, "john@example.com", user.Email)
					}).
					Return(nil)
				return mock
			},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error_when_empty_fields",
			data: service.CreateUserData{FirstName: "  ", LastName: "Doe", Email: "john@example.com"},
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				return domainmock.NewUserRepository(ctrl)
			},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.ErrorIs(t, err, service.ErrInvalidUserData)
			},
		},
		{
			name: "error_when_repo_fails",
			data: service.CreateUserData{FirstName: "John", LastName: "Doe", Email: "john@example.com"},
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := domainmock.NewUserRepository(ctrl)
				mock.EXPECT().NextID().Return(domain.UserID{UUID: uuid.New()})
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).Return(errors.New("unexpected"))
				return mock
			},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			srv := service.NewUser(
				tc.userRepo(ctrl),
				domainmock.NewProfileRepository(ctrl),
				domainmock.NewPostRepository(ctrl),
				persistence.NewTransactionStub(),
			)

			result, err := srv.Create(context.Background(), tc.data)
			tc.expect(t, result, err)
		})
	}
}

func TestUserService_Delete_FullCascade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := domain.UserID{UUID: uuid.New()}
	subscriberID := domain.UserID{UUID: uuid.New()}
	profileID := domain.ProfileID{UUID: uuid.New()}
	postID := domain.PostID{UUID: uuid.New()}

	user := &domain.User{
		ID:                  userID,
		FirstName:           "John",
		LastName:            "Doe",
		Email:               "john@example.com",
		SubscribedToUserIDs: []domain.UserID{subscriberID},
	}
	subscriber := domain.User{
		ID:                  subscriberID,
		FirstName:           "Jane",
		LastName:            "Roe",
		Email:               "jane@example.com",
		SubscribedToUserIDs: []domain.UserID{userID, userID},
	}

	userRepo := domainmock.NewUserRepository(ctrl)
	profileRepo := domainmock.NewProfileRepository(ctrl)
	postRepo := domainmock.NewPostRepository(ctrl)

	userRepo.EXPECT().
		FindOne(gomock.Any(), domain.FindUserSpecification{IDs: []domain.UserID{userID}}).
		Return(user, nil)
	profileRepo.EXPECT().
		FindOne(gomock.Any(), domain.FindProfileSpecification{UserIDs: []domain.UserID{userID}}).
		Return(&domain.Profile{ID: profileID, UserID: userID}, nil)
	profileRepo.EXPECT().Delete(gomock.Any(), profileID).Return(nil)
	postRepo.EXPECT().
		Find(gomock.Any(), domain.FindPostSpecification{UserIDs: []domain.UserID{userID}}).
		Return([]domain.Post{{ID: postID, UserID: userID}}, nil)
	postRepo.EXPECT().Delete(gomock.Any(), postID).Return(nil)
	userRepo.EXPECT().
		Find(gomock.Any(), domain.FindUserSpecification{SubscribedToUserID: &userID}).
		Return([]domain.User{subscriber}, nil)
	userRepo.EXPECT().Store(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, stored *domain.User) {
			assert.Equal(t, subscriberID, stored.ID)
			assert.False(t, stored.IsSubscribedTo(userID))
		}).
		Return(nil)
	userRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, deleted *domain.User) {
			assert.Equal(t, userID, deleted.ID)
			require.Len(t, deleted.Changes, 1)
			assert.IsType(t, domain.EventUserDeleted{}, deleted.Changes[0])
		}).
		Return(nil)

	srv := service.NewUser(userRepo, profileRepo, postRepo, persistence.NewTransactionStub())

	result, err := srv.Delete(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, userID, result.ID)
	assert.Equal(t, []domain.UserID{subscriberID}, result.SubscribedToUserIDs)
}

func TestUserService_Delete_UsesCollectionLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := domain.UserID{UUID: uuid.New()}

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

	srv := service.NewUser(
		userRepo,
		domainmock.NewProfileRepository(ctrl),
		domainmock.NewPostRepository(ctrl),
		transaction,
	)

	_, err := srv.Delete(context.Background(), userID)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestUserService_MutationsShareCollectionLock(t *testing.T) {
	userID := domain.UserID{UUID: uuid.New()}
	targetID := domain.UserID{UUID: uuid.New()}

	tests := []struct {
		name    string
		execute func(srv service.User) error
	}{
		{
			name: "change",
			execute: func(srv service.User) error {
				_, err := srv.Change(context.Background(), userID, service.ChangeUserData{})
				return err
			},
		},
		{
			name: "subscribe",
			execute: func(srv service.User) error {
				_, err := srv.Subscribe(context.Background(), userID, targetID)
				return err
			},
		},
		{
			name: "unsubscribe",
			execute: func(srv service.User) error {
				_, err := srv.Unsubscribe(context.Background(), userID, targetID)
				return err
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
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

			srv := service.NewUser(
				userRepo,
				domainmock.NewProfileRepository(ctrl),
				domainmock.NewPostRepository(ctrl),
				transaction,
			)

			assert.ErrorIs(t, tc.execute(srv), service.ErrUserNotFound)
		})
	}
}

func TestUserService_Delete_NotFound_NoSideEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := domainmock.NewUserRepository(ctrl)
	userRepo.EXPECT().
		FindOne(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrUserNotFound)

	srv := service.NewUser(
		userRepo,
		domainmock.NewProfileRepository(ctrl),
		domainmock.NewPostRepository(ctrl),
		persistence.NewTransactionStub(),
	)

	result, err := srv.Delete(context.Background(), domain.UserID{UUID: uuid.New()})

	assert.ErrorIs(t, err, service.ErrUserNotFound)
	assert.Nil(t, result)
}

func TestUserService_Subscribe_Returns(t *testing.T) {
	subscriberID := domain.UserID{UUID: uuid.New()}
	targetID := domain.UserID{UUID: uuid.New()}

	tests := []struct {
		name     string
		userRepo func(ctrl *gomock.Controller) domain.UserRepository
		expect   func(t *testing.T, result *service.UserData, err error)
	}{
		{
			name: "success_appends_edge",
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				subscriber := &domain.User{
					ID:                  subscriberID,
					SubscribedToUserIDs: []domain.UserID{targetID},
				}

				mock := domainmock.NewUserRepository(ctrl)
				mock.EXPECT().
					FindOne(gomock.Any(), domain.FindUserSpecification{IDs: []domain.UserID{subscriberID}}).
					Return(subscriber, nil)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, stored *domain.User) {
						assert.Equal(t, []domain.UserID{targetID, targetID}, stored.SubscribedToUserIDs)
					}).
					Return(nil)
				return mock
			},
			expect: func(t *testing.T, result *service.UserData, err error) {
				require.NoError(t, err)
				assert.Equal(t, []domain.UserID{targetID, targetID}, result.SubscribedToUserIDs)
			},
		},
		{
			name: "error_when_subscriber_not_found",
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := domainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserNotFound)
				return mock
			},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.ErrorIs(t, err, service.ErrUserNotFound)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			srv := service.NewUser(
				tc.userRepo(ctrl),
				domainmock.NewProfileRepository(ctrl),
				domainmock.NewPostRepository(ctrl),
				persistence.NewTransactionStub(),
			)

			result, err := srv.Subscribe(context.Background(), subscriberID, targetID)
			tc.expect(t, result, err)
		})
	}
}

func TestUserService_Unsubscribe_Returns(t *testing.T) {
	subscriberID := domain.UserID{UUID: uuid.New()}
	targetID := domain.UserID{UUID: uuid.New()}

	tests := []struct {
		name     string
		userRepo func(ctrl *gomock.Controller) domain.UserRepository
		expect   func(t *testing.T, result *service.UserData, err error)
	}{
		{
			name: "success_removes_all_occurrences",
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				subscriber := &domain.User{
					ID:                  subscriberID,
					SubscribedToUserIDs: []domain.UserID{targetID, targetID},
				}

				mock := domainmock.NewUserRepository(ctrl)
				mock.EXPECT().
					FindOne(gomock.Any(), domain.FindUserSpecification{IDs: []domain.UserID{subscriberID}}).
					Return(subscriber, nil)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, stored *domain.User) {
						assert.Empty(t, stored.SubscribedToUserIDs)
					}).
					Return(nil)
				return mock
			},
			expect: func(t *testing.T, result *service.UserData, err error) {
				require.NoError(t, err)
				assert.Empty(t, result.SubscribedToUserIDs)
			},
		},
		{
			name: "error_when_not_subscribed",
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				subscriber := &domain.User{ID: subscriberID}

				mock := domainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(subscriber, nil)
				return mock
			},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.ErrorIs(t, err, service.ErrUserNotSubscribed)
			},
		},
		{
			name: "error_when_subscriber_not_found",
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := domainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserNotFound)
				return mock
			},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.ErrorIs(t, err, service.ErrUserNotFound)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			srv := service.NewUser(
				tc.userRepo(ctrl),
				domainmock.NewProfileRepository(ctrl),
				domainmock.NewPostRepository(ctrl),
				persistence.NewTransactionStub(),
			)

			result, err := srv.Unsubscribe(context.Background(), subscriberID, targetID)
			tc.expect(t, result, err)
		})
	}
}
