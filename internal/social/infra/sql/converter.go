package sql

import "github.com/usergraph/social-service/internal/social/domain"

func toDomainUser(row *sqlxUser, subscribedToUserIDs []domain.UserID) *domain.User {
	return &domain.User{
		ID:                  row.ID,
		FirstName:           row.FirstName,
		LastName:            row.LastName,
		Email:               row.Email,
		SubscribedToUserIDs: subscribedToUserIDs,
	}
}

func toDomainUsers(rows []sqlxUser, subscriptions map[domain.UserID][]domain.UserID) []domain.User {
	result := make([]domain.User, 0, len(rows))
	for i := range rows {
		result = append(result, *toDomainUser(&rows[i], subscriptions[rows[i].ID]))
	}
	return result
}

func toDomainProfile(row *sqlxProfile) *domain.Profile {
	return &domain.Profile{
		ID:           row.ID,
		Avatar:       row.Avatar,
		Sex:          row.Sex,
		Birthday:     row.Birthday,
		Country:      row.Country,
		Street:       row.Street,
		City:         row.City,
		MemberTypeID: row.MemberTypeID,
		UserID:       row.UserID,
	}
}

func toDomainProfiles(rows []sqlxProfile) []domain.Profile {
	result := make([]domain.Profile, 0, len(rows))
	for i := range rows {
		result = append(result, *toDomainProfile(&rows[i]))
	}
	return result
}

func toDomainPost(row *sqlxPost) *domain.Post {
	return &domain.Post{
		ID:      row.ID,
		Title:   row.Title,
		Content: row.Content,
		UserID:  row.UserID,
	}
}

func toDomainPosts(rows []sqlxPost) []domain.Post {
	result := make([]domain.Post, 0, len(rows))
	for i := range rows {
		result = append(result, *toDomainPost(&rows[i]))
	}
	return result
}

func toDomainMemberType(row *sqlxMemberType) *domain.MemberType {
	return &domain.MemberType{
		ID:              row.ID,
		Discount:        row.Discount,
		MonthPostsLimit: row.MonthPostsLimit,
	}
}

func toDomainMemberTypes(rows []sqlxMemberType) []domain.MemberType {
	result := make([]domain.MemberType, 0, len(rows))
	for i := range rows {
		result = append(result, *toDomainMemberType(&rows[i]))
	}
	return result
}
