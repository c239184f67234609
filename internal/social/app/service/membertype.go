package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/usergraph/social-service/internal/social/domain"
)

var ErrMemberTypeNotFound = errors.New("member type not found")

type (
	MemberType interface {
		List(context.Context) ([]MemberTypeData, error)
		GetByID(ctx context.Context, memberTypeID string) (*MemberTypeData, error)
		Change(ctx context.Context, memberTypeID string, patch ChangeMemberTypeData) (*MemberTypeData, error)
	}

	ChangeMemberTypeData struct {
		Discount        *int
		MonthPostsLimit *int
	}

	MemberTypeData struct {
		ID              string
		Discount        int
		MonthPostsLimit int
	}

	memberTypeService struct {
		memberTypeRepo domain.MemberTypeRepository
	}
)

func NewMemberType(memberTypeRepo domain.MemberTypeRepository) MemberType {
	return &memberTypeService{memberTypeRepo: memberTypeRepo}
}

func (s *memberTypeService) List(ctx context.Context) ([]MemberTypeData, error) {
	memberTypes, err := s.memberTypeRepo.Find(ctx, domain.FindMemberTypeSpecification{})
	if err != nil {
		return nil, fmt.Errorf("find member types: %w", err)
	}

	return toMemberTypesData(memberTypes), nil
}

func (s *memberTypeService) GetByID(ctx context.Context, memberTypeID string) (*MemberTypeData, error) {
	memberType, err := s.findMemberType(ctx, memberTypeID)
	if err != nil {
		return nil, err
	}

	return toMemberTypeData(memberType), nil
}

func (s *memberTypeService) Change(ctx context.Context, memberTypeID string, patch ChangeMemberTypeData) (*MemberTypeData, error) {
	memberType, err := s.findMemberType(ctx, memberTypeID)
	if err != nil {
		return nil, err
	}

	if patch.Discount != nil {
		memberType.Discount = *patch.Discount
	}
	if patch.MonthPostsLimit != nil {
		memberType.MonthPostsLimit = *patch.MonthPostsLimit
	}

	err = s.memberTypeRepo.Store(ctx, memberType)
	if err != nil {
		return nil, fmt.Errorf("store member type: %w", err)
	}

	return toMemberTypeData(memberType), nil
}

func (s *memberTypeService) findMemberType(ctx context.Context, memberTypeID string) (*domain.MemberType, error) {
	memberType, err := s.memberTypeRepo.FindOne(ctx, domain.FindMemberTypeSpecification{IDs: []string{memberTypeID}})
	if errors.Is(err, domain.ErrMemberTypeNotFound) {
		return nil, ErrMemberTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find member type by id: %w", err)
	}

	return memberType, nil
}
