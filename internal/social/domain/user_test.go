package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usergraph/social-service/internal/social/domain"
)

func TestNewUser_Created_Success(t *testing.T) {
	userID := domain.UserID{UUID: uuid.New()}

	user := domain.NewUser(userID, "John", "Doe", "john@example.com")

	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "John", user.FirstName)
	assert.Empty(t, user.SubscribedToUserIDs)
	assert.Len(t, user.Changes, 1)
	assert.IsType(t, domain.EventUserCreated{}, user.Changes[0])
	evt := user.Changes[0].(domain.EventUserCreated)
	assert.Equal(t, userID, evt.UserID)
}

func TestUser_SubscribeTo_AppendsRepeatedEdges(t *testing.T) {
	user := domain.NewUser(domain.UserID{UUID: uuid.New()}, "John", "Doe", "john@example.com")
	user.Changes = nil
	targetID := domain.UserID{UUID: uuid.New()}

	user.SubscribeTo(targetID)
	user.SubscribeTo(targetID)

	assert.Equal(t, []domain.UserID{targetID, targetID}, user.SubscribedToUserIDs)
	assert.True(t, user.IsSubscribedTo(targetID))
	require.Len(t, user.Changes, 2)
	for _, change := range user.Changes {
		require.IsType(t, domain.EventUserSubscribed{}, change)
		evt := change.(domain.EventUserSubscribed)
		assert.Equal(t, user.ID, evt.UserID)
		assert.Equal(t, targetID, evt.TargetUserID)
	}
}

func TestUser_SubscribeTo_PreservesOrder(t *testing.T) {
	user := domain.NewUser(domain.UserID{UUID: uuid.New()}, "John", "Doe", "john@example.com")
	firstID := domain.UserID{UUID: uuid.New()}
	secondID := domain.UserID{UUID: uuid.New()}

	user.SubscribeTo(firstID)
	user.SubscribeTo(secondID)
	user.SubscribeTo(firstID)

	assert.Equal(t, []domain.UserID{firstID, secondID, firstID}, user.SubscribedToUserIDs)
}

func TestUser_UnsubscribeFrom_RemovesAllOccurrences(t *testing.T) {
	user := domain.NewUser(domain.UserID{UUID: uuid.New()}, "John", "Doe", "john@example.com")
	user.Changes = nil
	targetID := domain.UserID{UUID: uuid.New()}
	otherID := domain.UserID{UUID: uuid.New()}
	user.SubscribeTo(targetID)
	user.SubscribeTo(otherID)
	user.SubscribeTo(targetID)
	user.Changes = nil

	err := user.UnsubscribeFrom(targetID)

	require.NoError(t, err)
	assert.Equal(t, []domain.UserID{otherID}, user.SubscribedToUserIDs)
	require.Len(t, user.Changes, 1)
	assert.IsType(t, domain.EventUserUnsubscribed{}, user.Changes[0])
}

func TestUser_UnsubscribeFrom_NotSubscribed_Error(t *testing.T) {
	user := domain.NewUser(domain.UserID{UUID: uuid.New()}, "John", "Doe", "john@example.com")
	user.Changes = nil

	err := user.UnsubscribeFrom(domain.UserID{UUID: uuid.New()})

	assert.ErrorIs(t, err, domain.ErrUserNotSubscribed)
	assert.Empty(t, user.Changes)
}

func TestUser_DropSubscriptionTo_Returns(t *testing.T) {
	targetID := domain.UserID{UUID: uuid.New()}

	tests := []struct {
		name          string
		subscribedTo  []domain.UserID
		expectDropped bool
	}{
		{
			name:          "dropped_when_subscribed",
			subscribedTo:  []domain.UserID{targetID, {UUID: uuid.New()}, targetID},
			expectDropped: true,
		},
		{
			name:          "skipped_when_not_subscribed",
			subscribedTo:  []domain.UserID{{UUID: uuid.New()}},
			expectDropped: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user := domain.NewUser(domain.UserID{UUID: uuid.New()}, "John", "Doe", "john@example.com")
			user.SubscribedToUserIDs = tc.subscribedTo
			user.Changes = nil

			dropped := user.DropSubscriptionTo(targetID)

			assert.Equal(t, tc.expectDropped, dropped)
			assert.False(t, user.IsSubscribedTo(targetID))
			assert.Empty(t, user.Changes)
		})
	}
}

func TestUser_MarkDeleted_RecordsEvent(t *testing.T) {
	user := domain.NewUser(domain.UserID{UUID: uuid.New()}, "John", "Doe", "john@example.com")
	user.Changes = nil

	user.MarkDeleted()

	require.Len(t, user.Changes, 1)
	assert.IsType(t, domain.EventUserDeleted{}, user.Changes[0])
	evt := user.Changes[0].(domain.EventUserDeleted)
	assert.Equal(t, user.ID, evt.UserID)
}
