package http

import (
	"net/http"

	"github.com/usergraph/social-service/internal/social/app/service"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type ListPostsHandler struct {
	postService service.Post
}

func NewListPostsHandler(postService service.Post) ListPostsHandler {
	return ListPostsHandler{postService: postService}
}

func (h ListPostsHandler) Method() string {
	return http.MethodGet
}

func (h ListPostsHandler) Path() string {
	return "/posts"
}

func (h ListPostsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	result, err := h.postService.List(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(toPostsOut(result))
	return nil
}
