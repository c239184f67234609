//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "UserRepository=UserRepository"
package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/usergraph/social-service/pkg/event"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserNotSubscribed = errors.New("user is not subscribed to the target user")
)

type (
	User struct {
		ID        UserID
		FirstName string
		LastName  string
		Email     string

		// SubscribedToUserIDs is the ordered list of outgoing subscription
		// edges. Repeated Subscribe calls append repeated entries, the
		// order and multiplicity are preserved by every storage.
		SubscribedToUserIDs []UserID

		Changes []event.Event
	}

	UserRepository interface {
		NextID() UserID
		Store(context.Context, *User) error
		Find(context.Context, FindUserSpecification) ([]User, error)
		FindOne(context.Context, FindUserSpecification) (*User, error)
		Delete(context.Context, *User) error
	}

	FindUserSpecification struct {
		IDs []UserID
		// SubscribedToUserID selects users whose subscription list
		// contains the given id (reverse-index lookup).
		SubscribedToUserID *UserID
	}

	UserID struct{ uuid.UUID }
)

func NewUser(id UserID, firstName, lastName, email string) *User {
	return &User{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Changes: []event.Event{EventUserCreated{
			EventID: uuid.New(),
			UserID:  id,
		}},
	}
}

func (u *User) SubscribeTo(target UserID) {
	u.SubscribedToUserIDs = append(u.SubscribedToUserIDs, target)
	u.Changes = append(u.Changes, EventUserSubscribed{
		EventID:      uuid.New(),
		UserID:       u.ID,
		TargetUserID: target,
	})
}

func (u *User) UnsubscribeFrom(target UserID) error {
	if !u.removeSubscriptionTo(target) {
		return ErrUserNotSubscribed
	}

	u.Changes = append(u.Changes, EventUserUnsubscribed{
		EventID:      uuid.New(),
		UserID:       u.ID,
		TargetUserID: target,
	})
	return nil
}

// DropSubscriptionTo removes every occurrence of target from the
// subscription list without requiring it to be present. Used when the
// target user is deleted.
func (u *User) DropSubscriptionTo(target UserID) bool {
	return u.removeSubscriptionTo(target)
}

func (u *User) IsSubscribedTo(target UserID) bool {
	for _, id := range u.SubscribedToUserIDs {
		if id == target {
			return true
		}
	}
	return false
}

func (u *User) MarkDeleted() {
	u.Changes = append(u.Changes, EventUserDeleted{
		EventID: uuid.New(),
		UserID:  u.ID,
	})
}

func (u *User) removeSubscriptionTo(target UserID) bool {
	remaining := u.SubscribedToUserIDs[:0]
	for _, id := range u.SubscribedToUserIDs {
		if id != target {
			remaining = append(remaining, id)
		}
	}
	if len(remaining) == len(u.SubscribedToUserIDs) {
		return false
	}

	u.SubscribedToUserIDs = remaining
	return true
}
