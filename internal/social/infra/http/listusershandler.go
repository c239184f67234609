package http

import (
	"net/http"

	"github.com/usergraph/social-service/internal/social/app/service"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type ListUsersHandler struct {
	userService service.User
}

func NewListUsersHandler(userService service.User) ListUsersHandler {
	return ListUsersHandler{userService: userService}
}

func (h ListUsersHandler) Method() string {
	return http.MethodGet
}

func (h ListUsersHandler) Path() string {
	return "/users"
}

func (h ListUsersHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	result, err := h.userService.List(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(toUsersOut(result))
	return nil
}
