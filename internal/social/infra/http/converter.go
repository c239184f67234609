package http

import (
	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/social/app/service"
)

type (
	UserOut struct {
		ID                  uuid.UUID   `json:"id"`
		FirstName           string      `json:"firstName"`
		LastName            string      `json:"lastName"`
		Email               string      `json:"email"`
		SubscribedToUserIDs []uuid.UUID `json:"subscribedToUserIds"`
	}

	ProfileOut struct {
		ID           uuid.UUID `json:"id"`
		Avatar       string    `json:"avatar"`
		Sex          string    `json:"sex"`
		Birthday     int64     `json:"birthday"`
		Country      string    `json:"country"`
		Street       string    `json:"street"`
		City         string    `json:"city"`
		MemberTypeID string    `json:"memberTypeId"`
		UserID       uuid.UUID `json:"userId"`
	}

	PostOut struct {
		ID      uuid.UUID `json:"id"`
		Title   string    `json:"title"`
		Content string    `json:"content"`
		UserID  uuid.UUID `json:"userId"`
	}

	MemberTypeOut struct {
		ID              string `json:"id"`
		Discount        int    `json:"discount"`
		MonthPostsLimit int    `json:"monthPostsLimit"`
	}
)

func toUserOut(data *service.UserData) UserOut {
	subscribedTo := make([]uuid.UUID, 0, len(data.SubscribedToUserIDs))
	for _, id := range data.SubscribedToUserIDs {
		subscribedTo = append(subscribedTo, id.UUID)
	}

	return UserOut{
		ID:                  data.ID.UUID,
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		Email:               data.Email,
		SubscribedToUserIDs: subscribedTo,
	}
}

func toUsersOut(data []service.UserData) []UserOut {
	result := make([]UserOut, 0, len(data))
	for i := range data {
		result = append(result, toUserOut(&data[i]))
	}
	return result
}

func toProfileOut(data *service.ProfileData) ProfileOut {
	return ProfileOut{
		ID:           data.ID.UUID,
		Avatar:       data.Avatar,
		Sex:          data.Sex,
		Birthday:     data.Birthday,
		Country:      data.Country,
		Street:       data.Street,
		City:         data.City,
		MemberTypeID: data.MemberTypeID,
		UserID:       data.UserID.UUID,
	}
}

func toProfilesOut(data []service.ProfileData) []ProfileOut {
	result := make([]ProfileOut, 0, len(data))
	for i := range data {
		result = append(result, toProfileOut(&data[i]))
	}
	return result
}

func toPostOut(data *service.PostData) PostOut {
	return PostOut{
		ID:      data.ID.UUID,
		Title:   data.Title,
		Content: data.Content,
		UserID:  data.UserID.UUID,
	}
}

func toPostsOut(data []service.PostData) []PostOut {
	result := make([]PostOut, 0, len(data))
	for i := range data {
		result = append(result, toPostOut(&data[i]))
	}
	return result
}

func toMemberTypeOut(data *service.MemberTypeData) MemberTypeOut {
	return MemberTypeOut{
		ID:              data.ID,
		Discount:        data.Discount,
		MonthPostsLimit: data.MonthPostsLimit,
	}
}

func toMemberTypesOut(data []service.MemberTypeData) []MemberTypeOut {
	result := make([]MemberTypeOut, 0, len(data))
	for i := range data {
		result = append(result, toMemberTypeOut(&data[i]))
	}
	return result
}
