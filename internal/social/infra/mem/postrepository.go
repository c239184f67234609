package mem

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/social/domain"
)

type postRepository struct {
	mutex *sync.RWMutex
	posts map[domain.PostID]domain.Post
	order []domain.PostID
}

func NewPostRepository() domain.PostRepository {
	return &postRepository{
		mutex: &sync.RWMutex{},
		posts: map[domain.PostID]domain.Post{},
	}
}

func (r *postRepository) NextID() domain.PostID {
	return domain.PostID{UUID: uuid.New()}
}

func (r *postRepository) Store(_ context.Context, post *domain.Post) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.posts[post.ID]; !ok {
		r.order = append(r.order, post.ID)
	}
	r.posts[post.ID] = *post

	return nil
}

func (r *postRepository) Find(_ context.Context, spec domain.FindPostSpecification) ([]domain.Post, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]domain.Post, 0, len(r.order))
	for _, id := range r.order {
		post := r.posts[id]
		if !matchPost(&post, spec) {
			continue
		}

		result = append(result, post)
	}

	return result, nil
}

func (r *postRepository) FindOne(ctx context.Context, spec domain.FindPostSpecification) (*domain.Post, error) {
	posts, err := r.Find(ctx, spec)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, domain.ErrPostNotFound
	}

	return &posts[0], nil
}

func (r *postRepository) Delete(_ context.Context, id domain.PostID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}

	delete(r.posts, id)
	for i, candidate := range r.order {
		if candidate == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func matchPost(post *domain.Post, spec domain.FindPostSpecification) bool {
	if len(spec.IDs) > 0 {
		found := false
		for _, id := range spec.IDs {
			if id == post.ID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(spec.UserIDs) > 0 && !containsID(spec.UserIDs, post.UserID) {
		return false
	}
	return true
}
