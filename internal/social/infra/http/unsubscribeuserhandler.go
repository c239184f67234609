package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/social/app/service"
	"github.com/usergraph/social-service/internal/social/domain"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type UnsubscribeUserHandler struct {
	userService service.User
}

func NewUnsubscribeUserHandler(userService service.User) UnsubscribeUserHandler {
	return UnsubscribeUserHandler{userService: userService}
}

func (h UnsubscribeUserHandler) Method() string {
	return http.MethodPost
}

func (h UnsubscribeUserHandler) Path() string {
	return "/users/{userID}/unsubscribe-from"
}

func (h UnsubscribeUserHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	userID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("userID"), err)
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[SubscriptionIn](), err)
	if err != nil {
		return err
	}

	result, err := h.userService.Unsubscribe(
		r.Context(),
		domain.UserID{UUID: userID},
		domain.UserID{UUID: in.TargetUserID},
	)
	if errors.Is(err, service.ErrUserNotFound) {
		w.SetStatusCode(http.StatusNotFound)
	}
	if errors.Is(err, service.ErrUserNotSubscribed) {
		w.SetStatusCode(http.StatusBadRequest)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toUserOut(result))
	return nil
}
