package http

import (
	"net/http"

	"github.com/usergraph/social-service/internal/social/app/service"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type ListMemberTypesHandler struct {
	memberTypeService service.MemberType
}

func NewListMemberTypesHandler(memberTypeService service.MemberType) ListMemberTypesHandler {
	return ListMemberTypesHandler{memberTypeService: memberTypeService}
}

func (h ListMemberTypesHandler) Method() string {
	return http.MethodGet
}

func (h ListMemberTypesHandler) Path() string {
	return "/member-types"
}

func (h ListMemberTypesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	result, err := h.memberTypeService.List(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(toMemberTypesOut(result))
	return nil
}
