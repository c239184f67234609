//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "MemberTypeRepository=MemberTypeRepository"
package domain

import (
	"context"
	"errors"
)

var ErrMemberTypeNotFound = errors.New("member type not found")

const (
	MemberTypeIDBasic    = "basic"
	MemberTypeIDBusiness = "business"
)

type (
	// MemberType is a seeded enumeration: entries are provisioned by
	// migrations, mutated via patch only and never deleted at runtime.
	MemberType struct {
		ID              string
		Discount        int
		MonthPostsLimit int
	}

	MemberTypeRepository interface {
		Store(context.Context, *MemberType) error
		Find(context.Context, FindMemberTypeSpecification) ([]MemberType, error)
		FindOne(context.Context, FindMemberTypeSpecification) (*MemberType, error)
	}

	FindMemberTypeSpecification struct {
		IDs []string
	}
)
