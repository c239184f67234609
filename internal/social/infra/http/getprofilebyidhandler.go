package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/social/app/service"
	"github.com/usergraph/social-service/internal/social/domain"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type GetProfileByIDHandler struct {
	profileService service.Profile
}

func NewGetProfileByIDHandler(profileService service.Profile) GetProfileByIDHandler {
	return GetProfileByIDHandler{profileService: profileService}
}

func (h GetProfileByIDHandler) Method() string {
	return http.MethodGet
}

func (h GetProfileByIDHandler) Path() string {
	return "/profiles/{profileID}"
}

func (h GetProfileByIDHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	profileID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("profileID"), err)
	if err != nil {
		return err
	}

	result, err := h.profileService.GetByID(r.Context(), domain.ProfileID{UUID: profileID})
	if errors.Is(err, service.ErrProfileNotFound) {
		w.SetStatusCode(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toProfileOut(result))
	return nil
}
