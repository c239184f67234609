package http

import (
	"net/http"

	"github.com/usergraph/social-service/internal/social/app/service"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type ListProfilesHandler struct {
	profileService service.Profile
}

func NewListProfilesHandler(profileService service.Profile) ListProfilesHandler {
	return ListProfilesHandler{profileService: profileService}
}

func (h ListProfilesHandler) Method() string {
	return http.MethodGet
}

func (h ListProfilesHandler) Path() string {
	return "/profiles"
}

func (h ListProfilesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	result, err := h.profileService.List(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(toProfilesOut(result))
	return nil
}
