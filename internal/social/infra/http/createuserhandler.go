package http

import (
	"errors"
	"net/http"

	"github.com/usergraph/social-service/internal/social/app/service"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type CreateUserHandler struct {
	userService service.User
}

func NewCreateUserHandler(userService service.User) CreateUserHandler {
	return CreateUserHandler{userService: userService}
}

func (h CreateUserHandler) Method() string {
	return http.MethodPost
}

func (h CreateUserHandler) Path() string {
	return "/users"
}

func (h CreateUserHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[CreateUserIn](), err)
	if err != nil {
		return err
	}

	result, err := h.userService.Create(r.Context(), service.CreateUserData{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	})
	if errors.Is(err, service.ErrInvalidUserData) {
		w.SetStatusCode(http.StatusBadRequest)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toUserOut(result))
	w.SetStatusCode(http.StatusCreated)
	return nil
}

type CreateUserIn struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
