package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/social/app/service"
	"github.com/usergraph/social-service/internal/social/domain"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type CreatePostHandler struct {
	postService service.Post
}

func NewCreatePostHandler(postService service.Post) CreatePostHandler {
	return CreatePostHandler{postService: postService}
}

func (h CreatePostHandler) Method() string {
	return http.MethodPost
}

func (h CreatePostHandler) Path() string {
	return "/posts"
}

func (h CreatePostHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[CreatePostIn](), err)
	if err != nil {
		return err
	}

	result, err := h.postService.Create(r.Context(), service.CreatePostData{
		Title:   in.Title,
		Content: in.Content,
		UserID:  domain.UserID{UUID: in.UserID},
	})
	if err != nil {
		return err
	}

	w.SetJSONBody(toPostOut(result))
	w.SetStatusCode(http.StatusCreated)
	return nil
}

type CreatePostIn struct {
	Title   string    `json:"title"`
	Content string    `json:"content"`
	UserID  uuid.UUID `json:"userId"`
}
