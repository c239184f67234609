//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "ProfileRepository=ProfileRepository"
package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

type (
	Profile struct {
		ID           ProfileID
		Avatar       string
		Sex          string
		Birthday     int64
		Country      string
		Street       string
		City         string
		MemberTypeID string
		UserID       UserID
	}

	ProfileRepository interface {
		NextID() ProfileID
		Store(context.Context, *Profile) error
		Find(context.Context, FindProfileSpecification) ([]Profile, error)
		FindOne(context.Context, FindProfileSpecification) (*Profile, error)
		Delete(context.Context, ProfileID) error
	}

	FindProfileSpecification struct {
		IDs     []ProfileID
		UserIDs []UserID
	}

	ProfileID struct{ uuid.UUID }
)
