package http

import (
	"errors"
	"net/http"

	"github.com/usergraph/social-service/internal/social/app/service"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type GetMemberTypeByIDHandler struct {
	memberTypeService service.MemberType
}

func NewGetMemberTypeByIDHandler(memberTypeService service.MemberType) GetMemberTypeByIDHandler {
	return GetMemberTypeByIDHandler{memberTypeService: memberTypeService}
}

func (h GetMemberTypeByIDHandler) Method() string {
	return http.MethodGet
}

func (h GetMemberTypeByIDHandler) Path() string {
	return "/member-types/{memberTypeID}"
}

func (h GetMemberTypeByIDHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	memberTypeID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("memberTypeID"), err)
	if err != nil {
		return err
	}

	result, err := h.memberTypeService.GetByID(r.Context(), memberTypeID)
	if errors.Is(err, service.ErrMemberTypeNotFound) {
		w.SetStatusCode(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toMemberTypeOut(result))
	return nil
}
