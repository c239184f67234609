package service

import (
	"github.com/usergraph/social-service/internal/social/domain"
)

func toUserData(user *domain.User) *UserData {
	subscribedTo := make([]domain.UserID, len(user.SubscribedToUserIDs))
	copy(subscribedTo, user.SubscribedToUserIDs)

	return &UserData{
		ID:                  user.ID,
		FirstName:           user.FirstName,
		LastName:            user.LastName,
		Email:               user.Email,
		SubscribedToUserIDs: subscribedTo,
	}
}

func toUsersData(users []domain.User) []UserData {
	result := make([]UserData, 0, len(users))
	for i := range users {
		result = append(result, *toUserData(&users[i]))
	}
	return result
}

func toProfileData(profile *domain.Profile) *ProfileData {
	return &ProfileData{
		ID:           profile.ID,
		Avatar:       profile.Avatar,
		Sex:          profile.Sex,
		Birthday:     profile.Birthday,
		Country:      profile.Country,
		Street:       profile.Street,
		City:         profile.City,
		MemberTypeID: profile.MemberTypeID,
		UserID:       profile.UserID,
	}
}

func toProfilesData(profiles []domain.Profile) []ProfileData {
	result := make([]ProfileData, 0, len(profiles))
	for i := range profiles {
		result = append(result, *toProfileData(&profiles[i]))
	}
	return result
}

func toPostData(post *domain.Post) *PostData {
	return &PostData{
		ID:      post.ID,
		Title:   post.Title,
		Content: post.Content,
		UserID:  post.UserID,
	}
}

func toPostsData(posts []domain.Post) []PostData {
	result := make([]PostData, 0, len(posts))
	for i := range posts {
		result = append(result, *toPostData(&posts[i]))
	}
	return result
}

func toMemberTypeData(memberType *domain.MemberType) *MemberTypeData {
	return &MemberTypeData{
		ID:              memberType.ID,
		Discount:        memberType.Discount,
		MonthPostsLimit: memberType.MonthPostsLimit,
	}
}

func toMemberTypesData(memberTypes []domain.MemberType) []MemberTypeData {
	result := make([]MemberTypeData, 0, len(memberTypes))
	for i := range memberTypes {
		result = append(result, *toMemberTypeData(&memberTypes[i]))
	}
	return result
}
