package domain

import (
	"fmt"

	"github.com/google/uuid"
)

const AggregateNameUser = "user"

type EventUserCreated struct {
	EventID uuid.UUID `json:"eventID"`
	UserID  UserID    `json:"userID"`
}

func (e EventUserCreated) ID() uuid.UUID {
	return e.EventID
}

func (e EventUserCreated) Type() string {
	return fmt.Sprintf("%s.created", AggregateNameUser)
}

func (e EventUserCreated) AggregateID() uuid.UUID {
	return e.UserID.UUID
}

type EventUserDeleted struct {
	EventID uuid.UUID `json:"eventID"`
	UserID  UserID    `json:"userID"`
}

func (e EventUserDeleted) ID() uuid.UUID {
	return e.EventID
}

func (e EventUserDeleted) Type() string {
	return fmt.Sprintf("%s.deleted", AggregateNameUser)
}

func (e EventUserDeleted) AggregateID() uuid.UUID {
	return e.UserID.UUID
}

type EventUserSubscribed struct {
	EventID      uuid.UUID `json:"eventID"`
	UserID       UserID    `json:"userID"`
	TargetUserID UserID    `json:"targetUserID"`
}

func (e EventUserSubscribed) ID() uuid.UUID {
	return e.EventID
}

func (e EventUserSubscribed) Type() string {
	return fmt.Sprintf("%s.subscribed", AggregateNameUser)
}

func (e EventUserSubscribed) AggregateID() uuid.UUID {
	return e.UserID.UUID
}

type EventUserUnsubscribed struct {
	EventID      uuid.UUID `json:"eventID"`
	UserID       UserID    `json:"userID"`
	TargetUserID UserID    `json:"targetUserID"`
}

func (e EventUserUnsubscribed) ID() uuid.UUID {
	return e.EventID
}

func (e EventUserUnsubscribed) Type() string {
	return fmt.Sprintf("%s.unsubscribed", AggregateNameUser)
}

func (e EventUserUnsubscribed) AggregateID() uuid.UUID {
	return e.UserID.UUID
}
