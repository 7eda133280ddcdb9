package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	MessageSuccessCreateHousehold  = "household created successfully"
	MessageSuccessJoinHousehold    = "joined household successfully"
	MessageSuccessLeaveHousehold   = "left household successfully"
	MessageSuccessDeleteHousehold  = "household deleted successfully"
	MessageSuccessGetHousehold     = "household retrieved successfully"
	MessageSuccessUpdateHousehold  = "household updated successfully"
	MessageSuccessRegenerateInvite = "invite code regenerated successfully"
	MessageSuccessRemoveMember     = "member removed successfully"

	MessageFailedCreateHousehold  = "failed to create household"
	MessageFailedJoinHousehold    = "failed to join household"
	MessageFailedLeaveHousehold   = "failed to leave household"
	MessageFailedDeleteHousehold  = "failed to delete household"
	MessageFailedGetHousehold     = "failed to retrieve household"
	MessageFailedUpdateHousehold  = "failed to update household"
	MessageFailedRegenerateInvite = "failed to regenerate invite code"
	MessageFailedRemoveMember     = "failed to remove member"

	ErrHouseholdNotFound    = errors.New("household not found")
	ErrInviteCodeNotFound   = errors.New("invite code not found")
	ErrInviteCodeExpired    = errors.New("invite code expired")
	ErrAlreadyInHousehold   = errors.New("user already belongs to a household")
	ErrNotHouseholdMember   = errors.New("user is not a member of this household")
	ErrNotHouseholdOwner    = errors.New("only the household owner can do this")
	ErrOwnerCannotBeRemoved = errors.New("owner cannot be removed, leave or delete instead")
)

type (
	// HouseholdContext carries the caller's identity and active household,
	// resolved once per request that needs scoping.
	HouseholdContext struct {
		UserID      uuid.UUID
		HouseholdID *uuid.UUID
		UserName    string
	}

	CreateHouseholdRequest struct {
		Name string `json:"name" validate:"required"`
	}

	JoinHouseholdRequest struct {
		InviteCode string `json:"invite_code" validate:"required"`
	}

	UpdateHouseholdRequest struct {
		Name *string `json:"name" validate:"omitempty"`
	}

	RemoveMemberRequest struct {
		UserID string `json:"user_id" validate:"required,uuid"`
	}

	HouseholdMemberResponse struct {
		UserID      string    `json:"user_id"`
		Role        string    `json:"role"`
		DisplayName string    `json:"display_name"`
		JoinedAt    time.Time `json:"joined_at"`
	}

	HouseholdResponse struct {
		ID               string                    `json:"id"`
		Name             string                    `json:"name"`
		InviteCode       string                    `json:"invite_code"`
		InviteCodeExpiry time.Time                 `json:"invite_code_expiry"`
		Members          []HouseholdMemberResponse `json:"members"`
	}
)
