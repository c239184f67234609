package http

import (
	"errors"
	"net/http"

	"github.com/usergraph/social-service/internal/social/app/service"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

type ChangeMemberTypeHandler struct {
	memberTypeService service.MemberType
}

func NewChangeMemberTypeHandler(memberTypeService service.MemberType) ChangeMemberTypeHandler {
	return ChangeMemberTypeHandler{memberTypeService: memberTypeService}
}

func (h ChangeMemberTypeHandler) Method() string {
	return http.MethodPatch
}

func (h ChangeMemberTypeHandler) Path() string {
	return "/member-types/{memberTypeID}"
}

func (h ChangeMemberTypeHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	memberTypeID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("memberTypeID"), err)
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[ChangeMemberTypeIn](), err)
	if err != nil {
		return err
	}

	result, err := h.memberTypeService.Change(r.Context(), memberTypeID, service.ChangeMemberTypeData{
		Discount:        in.Discount,
		MonthPostsLimit: in.MonthPostsLimit,
	})
	if errors.Is(err, service.ErrMemberTypeNotFound) {
		w.SetStatusCode(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toMemberTypeOut(result))
	return nil
}

type ChangeMemberTypeIn struct {
	Discount        *int `json:"discount,omitempty"`
	MonthPostsLimit *int `json:"monthPostsLimit,omitempty"`
}
