package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFeedback    = "feedback submitted successfully"
	MessageSuccessUpdateFeedback = "feedback updated successfully"
	MessageSuccessDeleteFeedback = "feedback deleted successfully"
	MessageSuccessGetFeedback    = "feedback retrieved successfully"

	MessageFailedAddFeedback    = "failed to submit feedback"
	MessageFailedUpdateFeedback = "failed to update feedback"
	MessageFailedDeleteFeedback = "failed to delete feedback"
	MessageFailedGetFeedback    = "failed to retrieve feedback"

	ErrFeedbackNotFound = errors.New("feedback not found")
)

type (
	AddFeedbackRequest struct {
		Type        string `json:"type" validate:"required,oneof=bug feature improvement other"`
		Title       string `json:"title" validate:"required"`
		Description string `json:"description" validate:"required"`
		Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	}

	// UpdateFeedbackRequest is a patch: nil fields are left untouched.
	UpdateFeedbackRequest struct {
		Status   *string `json:"status" validate:"omitempty,oneof=open in_progress resolved closed"`
		Priority *string `json:"priority" validate:"omitempty,oneof=low medium high"`
		Notes    *string `json:"notes" validate:"omitempty"`
	}

	FeedbackResponse struct {
		ID          string     `json:"id"`
		Type        string     `json:"type"`
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Status      string     `json:"status"`
		Priority    string     `json:"priority"`
		Notes       string     `json:"notes,omitempty"`
		ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
		CreatedAt   time.Time  `json:"created_at"`
	}
)
