package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/usergraph/social-service/internal/social/domain"
)

var ErrPostNotFound = errors.New("post not found")

type (
	Post interface {
		List(context.Context) ([]PostData, error)
		GetByID(context.Context, domain.PostID) (*PostData, error)
		Create(context.Context, CreatePostData) (*PostData, error)
		Change(context.Context, domain.PostID, ChangePostData) (*PostData, error)
		Delete(context.Context, domain.PostID) (*PostData, error)
	}

	CreatePostData struct {
		Title   string
		Content string
		UserID  domain.UserID
	}

	ChangePostData struct {
		Title   *string
		Content *string
	}

	PostData struct {
		ID      domain.PostID
		Title   string
		Content string
		UserID  domain.UserID
	}

	postService struct {
		postRepo domain.PostRepository
	}
)

func NewPost(postRepo domain.PostRepository) Post {
	return &postService{postRepo: postRepo}
}

func (s *postService) List(ctx context.Context) ([]PostData, error) {
	posts, err := s.postRepo.Find(ctx, domain.FindPostSpecification{})
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}

	return toPostsData(posts), nil
}

func (s *postService) GetByID(ctx context.Context, postID domain.PostID) (*PostData, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return toPostData(post), nil
}

// Create stores the post as supplied: the owning user id is not
// cross-checked, posts are uninterpreted per-user records.
func (s *postService) Create(ctx context.Context, data CreatePostData) (*PostData, error) {
	post := &domain.Post{
		ID:      s.postRepo.NextID(),
		Title:   data.Title,
		Content: data.Content,
		UserID:  data.UserID,
	}
	err := s.postRepo.Store(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("store post: %w", err)
	}

	return toPostData(post), nil
}

func (s *postService) Change(ctx context.Context, postID domain.PostID, patch ChangePostData) (*PostData, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}

	err = s.postRepo.Store(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("store post: %w", err)
	}

	return toPostData(post), nil
}

func (s *postService) Delete(ctx context.Context, postID domain.PostID) (*PostData, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	err = s.postRepo.Delete(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("delete post: %w", err)
	}

	return toPostData(post), nil
}

func (s *postService) findPost(ctx context.Context, postID domain.PostID) (*domain.Post, error) {
	post, err := s.postRepo.FindOne(ctx, domain.FindPostSpecification{IDs: []domain.PostID{postID}})
	if errors.Is(err, domain.ErrPostNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}

	return post, nil
}
