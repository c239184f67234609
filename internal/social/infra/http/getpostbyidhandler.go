package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/social/app/service"
	"github.com/usergraph/social-service/internal/social/domain"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type GetPostByIDHandler struct {
	postService service.Post
}

func NewGetPostByIDHandler(postService service.Post) GetPostByIDHandler {
	return GetPostByIDHandler{postService: postService}
}

func (h GetPostByIDHandler) Method() string {
	return http.MethodGet
}

func (h GetPostByIDHandler) Path() string {
	return "/posts/{postID}"
}

func (h GetPostByIDHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	postID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("postID"), err)
	if err != nil {
		return err
	}

	result, err := h.postService.GetByID(r.Context(), domain.PostID{UUID: postID})
	if errors.Is(err, service.ErrPostNotFound) {
		w.SetStatusCode(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toPostOut(result))
	return nil
}
