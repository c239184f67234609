package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/social/app/service"
	"github.com/usergraph/social-service/internal/social/domain"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type DeletePostHandler struct {
	postService service.Post
}

func NewDeletePostHandler(postService service.Post) DeletePostHandler {
	return DeletePostHandler{postService: postService}
}

func (h DeletePostHandler) Method() string {
	return http.MethodDelete
}

func (h DeletePostHandler) Path() string {
	return "/posts/{postID}"
}

func (h DeletePostHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	postID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("postID"), err)
	if err != nil {
		return err
	}

	result, err := h.postService.Delete(r.Context(), domain.PostID{UUID: postID})
	if errors.Is(err, service.ErrPostNotFound) {
		w.SetStatusCode(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toPostOut(result))
	return nil
}
