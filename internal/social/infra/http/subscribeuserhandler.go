package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/social/app/service"
	"github.com/usergraph/social-service/internal/social/domain"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type SubscribeUserHandler struct {
	userService service.User
}

func NewSubscribeUserHandler(userService service.User) SubscribeUserHandler {
	return SubscribeUserHandler{userService: userService}
}

func (h SubscribeUserHandler) Method() string {
	return http.MethodPost
}

func (h SubscribeUserHandler) Path() string {
	return "/users/{userID}/subscribe-to"
}

func (h SubscribeUserHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	userID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("userID"), err)
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[SubscriptionIn](), err)
	if err != nil {
		return err
	}

	result, err := h.userService.Subscribe(
		r.Context(),
		domain.UserID{UUID: userID},
		domain.UserID{UUID: in.TargetUserID},
	)
	if errors.Is(err, service.ErrUserNotFound) {
		w.SetStatusCode(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toUserOut(result))
	return nil
}

type SubscriptionIn struct {
	TargetUserID uuid.UUID `json:"targetUserId"`
}
