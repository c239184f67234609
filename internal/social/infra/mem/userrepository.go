package mem

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/social/domain"
	"github.com/usergraph/social-service/pkg/event"
)

type userRepository struct {
	mutex           *sync.RWMutex
	users           map[domain.UserID]domain.User
	order           []domain.UserID
	eventDispatcher event.Dispatcher
}

func NewUserRepository(eventDispatcher event.Dispatcher) domain.UserRepository {
	return &userRepository{
		mutex:           &sync.RWMutex{},
		users:           map[domain.UserID]domain.User{},
		eventDispatcher: eventDispatcher,
	}
}

func (r *userRepository) NextID() domain.UserID {
	return domain.UserID{UUID: uuid.New()}
}

func (r *userRepository) Store(ctx context.Context, user *domain.User) error {
	err := r.eventDispatcher.Dispatch(ctx, user.Changes...)
	if err != nil {
		return fmt.Errorf("dispatch events: %w", err)
	}
	user.Changes = nil

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		r.order = append(r.order, user.ID)
	}
	r.users[user.ID] = copyUser(user)

	return nil
}

func (r *userRepository) Find(_ context.Context, spec domain.FindUserSpecification) ([]domain.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		user := r.users[id]
		if !matchUser(&user, spec) {
			continue
		}

		result = append(result, copyUser(&user))
	}

	return result, nil
}

func (r *userRepository) FindOne(ctx context.Context, spec domain.FindUserSpecification) (*domain.User, error) {
	users, err := r.Find(ctx, spec)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}

	return &users[0], nil
}

func (r *userRepository) Delete(ctx context.Context, user *domain.User) error {
	err := r.eventDispatcher.Dispatch(ctx, user.Changes...)
	if err != nil {
		return fmt.Errorf("dispatch events: %w", err)
	}
	user.Changes = nil

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}

	delete(r.users, user.ID)
	for i, id := range r.order {
		if id == user.ID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func matchUser(user *domain.User, spec domain.FindUserSpecification) bool {
	if len(spec.IDs) > 0 && !containsID(spec.IDs, user.ID) {
		return false
	}
	if spec.SubscribedToUserID != nil && !user.IsSubscribedTo(*spec.SubscribedToUserID) {
		return false
	}
	return true
}

func copyUser(user *domain.User) domain.User {
	result := *user
	result.SubscribedToUserIDs = make([]domain.UserID, len(user.SubscribedToUserIDs))
	copy(result.SubscribedToUserIDs, user.SubscribedToUserIDs)
	result.Changes = nil
	return result
}

func containsID(ids []domain.UserID, id domain.UserID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
