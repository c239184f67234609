//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "PostRepository=PostRepository"
package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrPostNotFound = errors.New("post not found")

type (
	Post struct {
		ID      PostID
		Title   string
		Content string
		UserID  UserID
	}

	PostRepository interface {
		NextID() PostID
		Store(context.Context, *Post) error
		Find(context.Context, FindPostSpecification) ([]Post, error)
		FindOne(context.Context, FindPostSpecification) (*Post, error)
		Delete(context.Context, PostID) error
	}

	FindPostSpecification struct {
		IDs     []PostID
		UserIDs []UserID
	}

	PostID struct{ uuid.UUID }
)
