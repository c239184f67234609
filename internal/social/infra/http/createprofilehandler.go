package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/social/app/service"
	"github.com/usergraph/social-service/internal/social/domain"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type CreateProfileHandler struct {
	profileService service.Profile
}

func NewCreateProfileHandler(profileService service.Profile) CreateProfileHandler {
	return CreateProfileHandler{profileService: profileService}
}

func (h CreateProfileHandler) Method() string {
	return http.MethodPost
}

func (h CreateProfileHandler) Path() string {
	return "/profiles"
}

func (h CreateProfileHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[CreateProfileIn](), err)
	if err != nil {
		return err
	}

	result, err := h.profileService.Create(r.Context(), service.CreateProfileData{
		Avatar:       in.Avatar,
		Sex:          in.Sex,
		Birthday:     in.Birthday,
		Country:      in.Country,
		Street:       in.Street,
		City:         in.City,
		MemberTypeID: in.MemberTypeID,
		UserID:       domain.UserID{UUID: in.UserID},
	})
	if errors.Is(err, service.ErrUserNotFound) {
		w.SetStatusCode(http.StatusNotFound)
	}
	if errors.Is(err, service.ErrMemberTypeUnknown) {
		w.SetStatusCode(http.StatusBadRequest)
	}
	if errors.Is(err, service.ErrProfileAlreadyExists) {
		w.SetStatusCode(http.StatusConflict)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toProfileOut(result))
	w.SetStatusCode(http.StatusCreated)
	return nil
}

type CreateProfileIn struct {
	Avatar       string    `json:"avatar"`
	Sex          string    `json:"sex"`
	Birthday     int64     `json:"birthday"`
	Country      string    `json:"country"`
	Street       string    `json:"street"`
	City         string    `json:"city"`
	MemberTypeID string    `json:"memberTypeId"`
	UserID       uuid.UUID `json:"userId"`
}
