package feedback_test

import (
	"context"
	"testing"

	"pantrypal-backend/domain"
	"pantrypal-backend/entities"
	"pantrypal-backend/pkg/feedback"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFeedbackRepository struct {
	entries map[string]*entities.Feedback
	deleted []string
}

func newFakeFeedbackRepository() *fakeFeedbackRepository {
	return &fakeFeedbackRepository{entries: map[string]*entities.Feedback{}}
}

func (f *fakeFeedbackRepository) AddFeedback(_ context.Context, entry *entities.Feedback) error {
	f.entries[entry.ID.String()] = entry
	return nil
}

func (f *fakeFeedbackRepository) GetFeedbackByID(_ context.Context, id string, userID uuid.UUID) (*entities.Feedback, error) {
	if entry, ok := f.entries[id]; ok && entry.UserID == userID {
		return entry, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFeedbackRepository) GetFeedback(_ context.Context, userID uuid.UUID) ([]*entities.Feedback, error) {
	var out []*entities.Feedback
	for _, entry := range f.entries {
		if entry.UserID == userID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakeFeedbackRepository) UpdateFeedback(_ context.Context, entry *entities.Feedback) error {
	f.entries[entry.ID.String()] = entry
	return nil
}

func (f *fakeFeedbackRepository) DeleteFeedback(_ context.Context, id string, _ uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	delete(f.entries, id)
	return nil
}

func TestAddFeedback(t *testing.T) {
	userID := uuid.New()
	repo := newFakeFeedbackRepository()
	svc := feedback.NewFeedbackService(repo)

	res, err := svc.AddFeedback(context.Background(), domain.AddFeedbackRequest{
		Type:        "bug",
		Title:       "Pantry search misses items",
		Description: "Search only matches prefixes",
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, "open", res.Status)
	assert.Equal(t, "medium", res.Priority)
	assert.Nil(t, res.ResolvedAt)

	_, err = svc.AddFeedback(context.Background(), domain.AddFeedbackRequest{Type: "bug", Title: "x", Description: "y"}, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestUpdateFeedbackStatus(t *testing.T) {
	userID := uuid.New()
	repo := newFakeFeedbackRepository()
	svc := feedback.NewFeedbackService(repo)

	saved, err := svc.AddFeedback(context.Background(), domain.AddFeedbackRequest{
		Type:        "feature",
		Title:       "Barcode scanning",
		Description: "Scan items into the pantry",
	}, userID.String())
	require.NoError(t, err)

	t.Run("resolving stamps resolved_at", func(t *testing.T) {
		status := "resolved"
		res, err := svc.UpdateFeedback(context.Background(), saved.ID, domain.UpdateFeedbackRequest{Status: &status}, userID.String())
		require.NoError(t, err)
		assert.Equal(t, "resolved", res.Status)
		require.NotNil(t, res.ResolvedAt)
	})

	t.Run("closing keeps resolved_at", func(t *testing.T) {
		status := "closed"
		res, err := svc.UpdateFeedback(context.Background(), saved.ID, domain.UpdateFeedbackRequest{Status: &status}, userID.String())
		require.NoError(t, err)
		assert.NotNil(t, res.ResolvedAt)
	})

	t.Run("reopening clears resolved_at", func(t *testing.T) {
		status := "open"
		res, err := svc.UpdateFeedback(context.Background(), saved.ID, domain.UpdateFeedbackRequest{Status: &status}, userID.String())
		require.NoError(t, err)
		assert.Nil(t, res.ResolvedAt)
	})

	t.Run("unknown entry", func(t *testing.T) {
		status := "resolved"
		_, err := svc.UpdateFeedback(context.Background(), uuid.NewString(), domain.UpdateFeedbackRequest{Status: &status}, userID.String())
		assert.ErrorIs(t, err, domain.ErrFeedbackNotFound)
	})
}

func TestDeleteFeedback(t *testing.T) {
	userID := uuid.New()
	repo := newFakeFeedbackRepository()
	svc := feedback.NewFeedbackService(repo)

	saved, err := svc.AddFeedback(context.Background(), domain.AddFeedbackRequest{
		Type:        "other",
		Title:       "Thanks",
		Description: "Great app",
	}, userID.String())
	require.NoError(t, err)

	assert.ErrorIs(t,
		svc.DeleteFeedback(context.Background(), saved.ID, uuid.NewString()),
		domain.ErrFeedbackNotFound,
	)

	require.NoError(t, svc.DeleteFeedback(context.Background(), saved.ID, userID.String()))
	assert.Contains(t, repo.deleted, saved.ID)
}
