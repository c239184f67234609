package mem

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/social/domain"
)

type profileRepository struct {
	mutex    *sync.RWMutex
	profiles map[domain.ProfileID]domain.Profile
	order    []domain.ProfileID
}

func NewProfileRepository() domain.ProfileRepository {
	return &profileRepository{
		mutex:    &sync.RWMutex{},
		profiles: map[domain.ProfileID]domain.Profile{},
	}
}

func (r *profileRepository) NextID() domain.ProfileID {
	return domain.ProfileID{UUID: uuid.New()}
}

func (r *profileRepository) Store(_ context.Context, profile *domain.Profile) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.profiles[profile.ID]; !ok {
		r.order = append(r.order, profile.ID)
	}
	r.profiles[profile.ID] = *profile

	return nil
}

func (r *profileRepository) Find(_ context.Context, spec domain.FindProfileSpecification) ([]domain.Profile, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]domain.Profile, 0, len(r.order))
	for _, id := range r.order {
		profile := r.profiles[id]
		if !matchProfile(&profile, spec) {
			continue
		}

		result = append(result, profile)
	}

	return result, nil
}

func (r *profileRepository) FindOne(ctx context.Context, spec domain.FindProfileSpecification) (*domain.Profile, error) {
	profiles, err := r.Find(ctx, spec)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, domain.ErrProfileNotFound
	}

	return &profiles[0], nil
}

func (r *profileRepository) Delete(_ context.Context, id domain.ProfileID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.profiles[id]; !ok {
		return domain.ErrProfileNotFound
	}

	delete(r.profiles, id)
	for i, candidate := range r.order {
		if candidate == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func matchProfile(profile *domain.Profile, spec domain.FindProfileSpecification) bool {
	if len(spec.IDs) > 0 {
		found := false
		for _, id := range spec.IDs {
			if id == profile.ID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(spec.UserIDs) > 0 && !containsID(spec.UserIDs, profile.UserID) {
		return false
	}
	return true
}
