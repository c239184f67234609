package mem_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usergraph/social-service/internal/social/domain"
	"github.com/usergraph/social-service/internal/social/infra/mem"
)

func TestProfileRepository_FindByUserID(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewProfileRepository()
	userID := domain.UserID{UUID: repo.NextID().UUID}

	profile := &domain.Profile{
		ID:           repo.NextID(),
		MemberTypeID: domain.MemberTypeIDBasic,
		UserID:       userID,
	}
	require.NoError(t, repo.Store(ctx, profile))

	found, err := repo.FindOne(ctx, domain.FindProfileSpecification{UserIDs: []domain.UserID{userID}})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, found.ID)

	_, err = repo.FindOne(ctx, domain.FindProfileSpecification{UserIDs: []domain.UserID{{}}})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestProfileRepository_Delete_Returns(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewProfileRepository()

	profile := &domain.Profile{ID: repo.NextID()}
	require.NoError(t, repo.Store(ctx, profile))

	require.NoError(t, repo.Delete(ctx, profile.ID))
	assert.ErrorIs(t, repo.Delete(ctx, profile.ID), domain.ErrProfileNotFound)
}

func TestPostRepository_FindByUserID(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewPostRepository()
	userID := domain.UserID{UUID: repo.NextID().UUID}

	first := &domain.Post{ID: repo.NextID(), Title: "first", UserID: userID}
	second := &domain.Post{ID: repo.NextID(), Title: "second", UserID: userID}
	other := &domain.Post{ID: repo.NextID(), Title: "other"}
	require.NoError(t, repo.Store(ctx, first))
	require.NoError(t, repo.Store(ctx, second))
	require.NoError(t, repo.Store(ctx, other))

	posts, err := repo.Find(ctx, domain.FindPostSpecification{UserIDs: []domain.UserID{userID}})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "first", posts[0].Title)
	assert.Equal(t, "second", posts[1].Title)
}

func TestMemberTypeRepository_SeededWithBuiltins(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewMemberTypeRepository()

	memberTypes, err := repo.Find(ctx, domain.FindMemberTypeSpecification{})
	require.NoError(t, err)
	require.Len(t, memberTypes, 2)
	assert.Equal(t, domain.MemberTypeIDBasic, memberTypes[0].ID)
	assert.Equal(t, domain.MemberTypeIDBusiness, memberTypes[1].ID)

	_, err = repo.FindOne(ctx, domain.FindMemberTypeSpecification{IDs: []string{"premium"}})
	assert.ErrorIs(t, err, domain.ErrMemberTypeNotFound)
}

func TestMemberTypeRepository_Store_Updates(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewMemberTypeRepository()

	memberType, err := repo.FindOne(ctx, domain.FindMemberTypeSpecification{IDs: []string{domain.MemberTypeIDBasic}})
	require.NoError(t, err)

	memberType.Discount = 10
	require.NoError(t, repo.Store(ctx, memberType))

	updated, err := repo.FindOne(ctx, domain.FindMemberTypeSpecification{IDs: []string{domain.MemberTypeIDBasic}})
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Discount)

	memberTypes, err := repo.Find(ctx, domain.FindMemberTypeSpecification{})
	require.NoError(t, err)
	assert.Len(t, memberTypes, 2)
}
