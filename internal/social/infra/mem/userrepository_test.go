package mem_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usergraph/social-service/internal/social/domain"
	"github.com/usergraph/social-service/internal/social/infra/mem"
	"github.com/usergraph/social-service/pkg/event"
)

func TestUserRepository_StoreFind_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewUserRepository(event.NewDispatcher(nil))

	first := domain.NewUser(repo.NextID(), "Alice", "Johnson", "alice@example.com")
	second := domain.NewUser(repo.NextID(), "Bob", "Smith", "bob@example.com")
	require.NoError(t, repo.Store(ctx, first))
	require.NoError(t, repo.Store(ctx, second))

	users, err := repo.Find(ctx, domain.FindUserSpecification{})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first.ID, users[0].ID)
	assert.Equal(t, second.ID, users[1].ID)

	found, err := repo.FindOne(ctx, domain.FindUserSpecification{IDs: []domain.UserID{second.ID}})
	require.NoError(t, err)
	assert.Equal(t, "Bob", found.FirstName)
}

func TestUserRepository_Store_ClearsChanges(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewUserRepository(event.NewDispatcher(nil))

	user := domain.NewUser(repo.NextID(), "Alice", "Johnson", "alice@example.com")
	require.Len(t, user.Changes, 1)

	require.NoError(t, repo.Store(ctx, user))
	assert.Empty(t, user.Changes)
}

func TestUserRepository_Find_BySubscribedToUserID(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewUserRepository(event.NewDispatcher(nil))

	target := domain.NewUser(repo.NextID(), "Alice", "Johnson", "alice@example.com")
	subscriber := domain.NewUser(repo.NextID(), "Bob", "Smith", "bob@example.com")
	subscriber.SubscribeTo(target.ID)
	bystander := domain.NewUser(repo.NextID(), "Carol", "Williams", "carol@example.com")

	require.NoError(t, repo.Store(ctx, target))
	require.NoError(t, repo.Store(ctx, subscriber))
	require.NoError(t, repo.Store(ctx, bystander))

	subscribers, err := repo.Find(ctx, domain.FindUserSpecification{SubscribedToUserID: &target.ID})
	require.NoError(t, err)
	require.Len(t, subscribers, 1)
	assert.Equal(t, subscriber.ID, subscribers[0].ID)
}

func TestUserRepository_Find_ReturnsIsolatedCopies(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewUserRepository(event.NewDispatcher(nil))

	user := domain.NewUser(repo.NextID(), "Alice", "Johnson", "alice@example.com")
	user.SubscribeTo(domain.UserID{UUID: repo.NextID().UUID})
	require.NoError(t, repo.Store(ctx, user))

	found, err := repo.FindOne(ctx, domain.FindUserSpecification{IDs: []domain.UserID{user.ID}})
	require.NoError(t, err)
	found.FirstName = "Mallory"
	found.SubscribedToUserIDs[0] = domain.UserID{}

	again, err := repo.FindOne(ctx, domain.FindUserSpecification{IDs: []domain.UserID{user.ID}})
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.FirstName)
	assert.NotEqual(t, domain.UserID{}, again.SubscribedToUserIDs[0])
}

func TestUserRepository_FindOne_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewUserRepository(event.NewDispatcher(nil))

	_, err := repo.FindOne(ctx, domain.FindUserSpecification{IDs: []domain.UserID{repo.NextID()}})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_Delete_Returns(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewUserRepository(event.NewDispatcher(nil))

	user := domain.NewUser(repo.NextID(), "Alice", "Johnson", "alice@example.com")
	require.NoError(t, repo.Store(ctx, user))

	require.NoError(t, repo.Delete(ctx, user))

	_, err := repo.FindOne(ctx, domain.FindUserSpecification{IDs: []domain.UserID{user.ID}})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	err = repo.Delete(ctx, user)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
