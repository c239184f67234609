package mem

import (
	"context"
	"sync"

	"github.com/usergraph/social-service/internal/social/domain"
)

type memberTypeRepository struct {
	mutex       *sync.RWMutex
	memberTypes map[string]domain.MemberType
	order       []string
}

// NewMemberTypeRepository returns a repository pre-populated with the
// built-in member types, mirroring the SQL migration seed.
func NewMemberTypeRepository() domain.MemberTypeRepository {
	repo := &memberTypeRepository{
		mutex:       &sync.RWMutex{},
		memberTypes: map[string]domain.MemberType{},
	}
	for _, memberType := range []domain.MemberType{
		{ID: domain.MemberTypeIDBasic, Discount: 0, MonthPostsLimit: 20},
		{ID: domain.MemberTypeIDBusiness, Discount: 5, MonthPostsLimit: 2000},
	} {
		repo.memberTypes[memberType.ID] = memberType
		repo.order = append(repo.order, memberType.ID)
	}

	return repo
}

func (r *memberTypeRepository) Store(_ context.Context, memberType *domain.MemberType) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.memberTypes[memberType.ID]; !ok {
		r.order = append(r.order, memberType.ID)
	}
	r.memberTypes[memberType.ID] = *memberType

	return nil
}

func (r *memberTypeRepository) Find(_ context.Context, spec domain.FindMemberTypeSpecification) ([]domain.MemberType, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]domain.MemberType, 0, len(r.order))
	for _, id := range r.order {
		memberType := r.memberTypes[id]
		if !matchMemberType(&memberType, spec) {
			continue
		}

		result = append(result, memberType)
	}

	return result, nil
}

func (r *memberTypeRepository) FindOne(ctx context.Context, spec domain.FindMemberTypeSpecification) (*domain.MemberType, error) {
	memberTypes, err := r.Find(ctx, spec)
	if err != nil {
		return nil, err
	}
	if len(memberTypes) == 0 {
		return nil, domain.ErrMemberTypeNotFound
	}

	return &memberTypes[0], nil
}

func matchMemberType(memberType *domain.MemberType, spec domain.FindMemberTypeSpecification) bool {
	if len(spec.IDs) == 0 {
		return true
	}
	for _, id := range spec.IDs {
		if id == memberType.ID {
			return true
		}
	}
	return false
}
