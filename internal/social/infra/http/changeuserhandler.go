package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/social/app/service"
	"github.com/usergraph/social-service/internal/social/domain"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type ChangeUserHandler struct {
	userService service.User
}

func NewChangeUserHandler(userService service.User) ChangeUserHandler {
	return ChangeUserHandler{userService: userService}
}

func (h ChangeUserHandler) Method() string {
	return http.MethodPatch
}

func (h ChangeUserHandler) Path() string {
	return "/users/{userID}"
}

func (h ChangeUserHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	userID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("userID"), err)
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[ChangeUserIn](), err)
	if err != nil {
		return err
	}

	result, err := h.userService.Change(r.Context(), domain.UserID{UUID: userID}, service.ChangeUserData{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	})
	if errors.Is(err, service.ErrUserNotFound) {
		w.SetStatusCode(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toUserOut(result))
	return nil
}

type ChangeUserIn struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
}
