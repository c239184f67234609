package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/social/app/service"
	"github.com/usergraph/social-service/internal/social/domain"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type DeleteUserHandler struct {
	userService service.User
}

func NewDeleteUserHandler(userService service.User) DeleteUserHandler {
	return DeleteUserHandler{userService: userService}
}

func (h DeleteUserHandler) Method() string {
	return http.MethodDelete
}

func (h DeleteUserHandler) Path() string {
	return "/users/{userID}"
}

func (h DeleteUserHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	userID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("userID"), err)
	if err != nil {
		return err
	}

	result, err := h.userService.Delete(r.Context(), domain.UserID{UUID: userID})
	if errors.Is(err, service.ErrUserNotFound) {
		w.SetStatusCode(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toUserOut(result))
	return nil
}
