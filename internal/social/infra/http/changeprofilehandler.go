package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/social/app/service"
	"github.com/usergraph/social-service/internal/social/domain"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type ChangeProfileHandler struct {
	profileService service.Profile
}

func NewChangeProfileHandler(profileService service.Profile) ChangeProfileHandler {
	return ChangeProfileHandler{profileService: profileService}
}

func (h ChangeProfileHandler) Method() string {
	return http.MethodPatch
}

func (h ChangeProfileHandler) Path() string {
	return "/profiles/{profileID}"
}

func (h ChangeProfileHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	profileID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("profileID"), err)
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[ChangeProfileIn](), err)
	if err != nil {
		return err
	}

	result, err := h.profileService.Change(r.Context(), domain.ProfileID{UUID: profileID}, service.ChangeProfileData{
		Avatar:       in.Avatar,
		Sex:          in.Sex,
		Birthday:     in.Birthday,
		Country:      in.Country,
		Street:       in.Street,
		City:         in.City,
		MemberTypeID: in.MemberTypeID,
	})
	if errors.Is(err, service.ErrProfileNotFound) {
		w.SetStatusCode(http.StatusNotFound)
	}
	if errors.Is(err, service.ErrMemberTypeUnknown) {
		w.SetStatusCode(http.StatusBadRequest)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toProfileOut(result))
	return nil
}

type ChangeProfileIn struct {
	Avatar       *string `json:"avatar,omitempty"`
	Sex          *string `json:"sex,omitempty"`
	Birthday     *int64  `json:"birthday,omitempty"`
	Country      *string `json:"country,omitempty"`
	Street       *string `json:"street,omitempty"`
	City         *string `json:"city,omitempty"`
	MemberTypeID *string `json:"memberTypeId,omitempty"`
}
