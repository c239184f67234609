package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/social/app/service"
	"github.com/usergraph/social-service/internal/social/domain"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type ChangePostHandler struct {
	postService service.Post
}

func NewChangePostHandler(postService service.Post) ChangePostHandler {
	return ChangePostHandler{postService: postService}
}

func (h ChangePostHandler) Method() string {
	return http.MethodPatch
}

func (h ChangePostHandler) Path() string {
	return "/posts/{postID}"
}

func (h ChangePostHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	postID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("postID"), err)
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[ChangePostIn](), err)
	if err != nil {
		return err
	}

	result, err := h.postService.Change(r.Context(), domain.PostID{UUID: postID}, service.ChangePostData{
		Title:   in.Title,
		Content: in.Content,
	})
	if errors.Is(err, service.ErrPostNotFound) {
		w.SetStatusCode(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toPostOut(result))
	return nil
}

type ChangePostIn struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}
