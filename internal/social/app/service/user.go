package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/usergraph/social-service/internal/social/domain"
	"github.com/usergraph/social-service/pkg/persistence"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserNotSubscribed = errors.New("user is not subscribed to the target user")
	ErrInvalidUserData   = errors.New("invalid user data")
)

// updateUsersLockName serializes every mutation of user records. The delete
// cascade rewrites other users' subscription lists, so all such mutations
// must contend on this single name.
const updateUsersLockName = "update_users"

type (
	User interface {
		List(context.Context) ([]UserData, error)
		GetByID(context.Context, domain.UserID) (*UserData, error)
		Create(context.Context, CreateUserData) (*UserData, error)
		Change(context.Context, domain.UserID, ChangeUserData) (*UserData, error)
		Delete(context.Context, domain.UserID) (*UserData, error)
		Subscribe(ctx context.Context, subscriberID, targetID domain.UserID) (*UserData, error)
		Unsubscribe(ctx context.Context, subscriberID, targetID domain.UserID) (*UserData, error)
	}

	CreateUserData struct {
		FirstName string
		LastName  string
		Email     string
	}

	ChangeUserData struct {
		FirstName *string
		LastName  *string
		Email     *string
	}

	UserData struct {
		ID                  domain.UserID
		FirstName           string
		LastName            string
		Email               string
		SubscribedToUserIDs []domain.UserID
	}

	userService struct {
		userRepo    domain.UserRepository
		profileRepo domain.ProfileRepository
		postRepo    domain.PostRepository
		transaction persistence.Transaction
	}
)

func NewUser(
	userRepo domain.UserRepository,
	profileRepo domain.ProfileRepository,
	postRepo domain.PostRepository,
	transaction persistence.Transaction,
) User {
	return &userService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		postRepo:    postRepo,
		transaction: transaction,
	}
}

func (s *userService) List(ctx context.Context) ([]UserData, error) {
	users, err := s.userRepo.Find(ctx, domain.FindUserSpecification{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	return toUsersData(users), nil
}

func (s *userService) GetByID(ctx context.Context, userID domain.UserID) (*UserData, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toUserData(user), nil
}

func (s *userService) Create(ctx context.Context, data CreateUserData) (*UserData, error) {
	firstName := strings.TrimSpace(data.FirstName)
	lastName := strings.TrimSpace(data.LastName)
	email := strings.TrimSpace(data.Email)
	if firstName == "" || lastName == "" || email == "" {
		return nil, ErrInvalidUserData
	}

	user := domain.NewUser(s.userRepo.NextID(), firstName, lastName, email)
	err := s.userRepo.Store(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("store user: %w", err)
	}

	return toUserData(user), nil
}

func (s *userService) Change(ctx context.Context, userID domain.UserID, patch ChangeUserData) (*UserData, error) {
	changeUserImpl := func(ctx context.Context) (*UserData, error) {
		user, err := s.findUser(ctx, userID)
		if err != nil {
			return nil, err
		}

		if patch.FirstName != nil {
			user.FirstName = *patch.FirstName
		}
		if patch.LastName != nil {
			user.LastName = *patch.LastName
		}
		if patch.Email != nil {
			user.Email = *patch.Email
		}

		err = s.userRepo.Store(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("store user: %w", err)
		}

		return toUserData(user), nil
	}

	return persistence.ExecuteWithResult(ctx, s.transaction, changeUserImpl, updateUsersLockName)
}

// Delete removes the user and every reference to it: the profile owned by
// the user, every post of the user and the user's id in every other user's
// subscription list. The pre-deletion snapshot is returned.
func (s *userService) Delete(ctx context.Context, userID domain.UserID) (*UserData, error) {
	deleteUserImpl := func(ctx context.Context) (*UserData, error) {
		user, err := s.findUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		snapshot := toUserData(user)

		if err = s.deleteProfileOf(ctx, userID); err != nil {
			return nil, err
		}
		if err = s.deletePostsOf(ctx, userID); err != nil {
			return nil, err
		}
		if err = s.dropSubscriptionsTo(ctx, userID); err != nil {
			return nil, err
		}

		user.MarkDeleted()
		if err = s.userRepo.Delete(ctx, user); err != nil {
			return nil, fmt.Errorf("delete user: %w", err)
		}

		return snapshot, nil
	}

	return persistence.ExecuteWithResult(ctx, s.transaction, deleteUserImpl, updateUsersLockName)
}

// Subscribe appends targetID to the subscriber's list. The target is not
// required to exist, and repeated calls append repeated edges.
func (s *userService) Subscribe(ctx context.Context, subscriberID, targetID domain.UserID) (*UserData, error) {
	subscribeImpl := func(ctx context.Context) (*UserData, error) {
		subscriber, err := s.findUser(ctx, subscriberID)
		if err != nil {
			return nil, err
		}

		subscriber.SubscribeTo(targetID)
		err = s.userRepo.Store(ctx, subscriber)
		if err != nil {
			return nil, fmt.Errorf("store user: %w", err)
		}

		return toUserData(subscriber), nil
	}

	return persistence.ExecuteWithResult(ctx, s.transaction, subscribeImpl, updateUsersLockName)
}

func (s *userService) Unsubscribe(ctx context.Context, subscriberID, targetID domain.UserID) (*UserData, error) {
	unsubscribeImpl := func(ctx context.Context) (*UserData, error) {
		subscriber, err := s.findUser(ctx, subscriberID)
		if err != nil {
			return nil, err
		}

		err = subscriber.UnsubscribeFrom(targetID)
		if errors.Is(err, domain.ErrUserNotSubscribed) {
			return nil, ErrUserNotSubscribed
		}
		if err != nil {
			return nil, err
		}

		err = s.userRepo.Store(ctx, subscriber)
		if err != nil {
			return nil, fmt.Errorf("store user: %w", err)
		}

		return toUserData(subscriber), nil
	}

	return persistence.ExecuteWithResult(ctx, s.transaction, unsubscribeImpl, updateUsersLockName)
}

func (s *userService) findUser(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	user, err := s.userRepo.FindOne(ctx, domain.FindUserSpecification{IDs: []domain.UserID{userID}})
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	return user, nil
}

func (s *userService) deleteProfileOf(ctx context.Context, userID domain.UserID) error {
	profile, err := s.profileRepo.FindOne(ctx, domain.FindProfileSpecification{UserIDs: []domain.UserID{userID}})
	if errors.Is(err, domain.ErrProfileNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find profile by user id: %w", err)
	}

	err = s.profileRepo.Delete(ctx, profile.ID)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

func (s *userService) deletePostsOf(ctx context.Context, userID domain.UserID) error {
	posts, err := s.postRepo.Find(ctx, domain.FindPostSpecification{UserIDs: []domain.UserID{userID}})
	if err != nil {
		return fmt.Errorf("find posts by user id: %w", err)
	}

	for _, post := range posts {
		err = s.postRepo.Delete(ctx, post.ID)
		if err != nil {
			return fmt.Errorf("delete post: %w", err)
		}
	}
	return nil
}

func (s *userService) dropSubscriptionsTo(ctx context.Context, userID domain.UserID) error {
	subscribers, err := s.userRepo.Find(ctx, domain.FindUserSpecification{SubscribedToUserID: &userID})
	if err != nil {
		return fmt.Errorf("find subscribers: %w", err)
	}

	for i := range subscribers {
		subscriber := subscribers[i]
		if !subscriber.DropSubscriptionTo(userID) {
			continue
		}

		err = s.userRepo.Store(ctx, &subscriber)
		if err != nil {
			return fmt.Errorf("store subscriber: %w", err)
		}
	}
	return nil
}
