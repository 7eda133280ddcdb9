package household

import (
	"context"
	"time"

	"pantrypal-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	HouseholdRepository interface {
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetHouseholdByID(ctx context.Context, id uuid.UUID) (*entities.Household, error)
		GetHouseholdByInviteCode(ctx context.Context, code string) (*entities.Household, error)
		GetMember(ctx context.Context, householdID, userID uuid.UUID) (*entities.HouseholdMember, error)
		UpdateHousehold(ctx context.Context, household *entities.Household) error

		CreateHouseholdWithOwner(ctx context.Context, household *entities.Household, owner *entities.User) error
		AddMember(ctx context.Context, household *entities.Household, user *entities.User) error
		RemoveMember(ctx context.Context, householdID, userID uuid.UUID) error
		LeaveHousehold(ctx context.Context, householdID, userID uuid.UUID) error
		DeleteHousehold(ctx context.Context, householdID uuid.UUID) error
	}

	householdRepository struct {
		db *gorm.DB
	}
)

func NewHouseholdRepository(db *gorm.DB) HouseholdRepository {
	return &householdRepository{db: db}
}

func (r *householdRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *householdRepository) GetHouseholdByID(ctx context.Context, id uuid.UUID) (*entities.Household, error) {
	var household entities.Household
	if err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("joined_at asc")
		}).
		Where("id = ?", id).
		First(&household).Error; err != nil {
		return nil, err
	}
	return &household, nil
}

func (r *householdRepository) GetHouseholdByInviteCode(ctx context.Context, code string) (*entities.Household, error) {
	var household entities.Household
	if err := r.db.WithContext(ctx).
		Preload("Members").
		Where("invite_code = ?", code).
		First(&household).Error; err != nil {
		return nil, err
	}
	return &household, nil
}

func (r *householdRepository) GetMember(ctx context.Context, householdID, userID uuid.UUID) (*entities.HouseholdMember, error) {
	var member entities.HouseholdMember
	if err := r.db.WithContext(ctx).
		Where("household_id = ? AND user_id = ?", householdID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *householdRepository) UpdateHousehold(ctx context.Context, household *entities.Household) error {
	return r.db.WithContext(ctx).Save(household).Error
}

func (r *householdRepository) CreateHouseholdWithOwner(ctx context.Context, household *entities.Household, owner *entities.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(household).Error; err != nil {
			return err
		}

		member := &entities.HouseholdMember{
			ID:          uuid.New(),
			HouseholdID: household.ID,
			UserID:      owner.ID,
			Role:        "owner",
			DisplayName: owner.Name,
			JoinedAt:    time.Now(),
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}

		return tx.Model(&entities.User{}).
			Where("id = ?", owner.ID).
			Update("household_id", household.ID).Error
	})
}

func (r *householdRepository) AddMember(ctx context.Context, household *entities.Household, user *entities.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		member := &entities.HouseholdMember{
			ID:          uuid.New(),
			HouseholdID: household.ID,
			UserID:      user.ID,
			Role:        "member",
			DisplayName: user.Name,
			JoinedAt:    time.Now(),
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}

		return tx.Model(&entities.User{}).
			Where("id = ?", user.ID).
			Update("household_id", household.ID).Error
	})
}

func (r *householdRepository) RemoveMember(ctx context.Context, householdID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("household_id = ? AND user_id = ?", householdID, userID).
			Delete(&entities.HouseholdMember{}).Error; err != nil {
			return err
		}

		return tx.Model(&entities.User{}).
			Where("id = ?", userID).
			Update("household_id", nil).Error
	})
}

// LeaveHousehold removes the membership and keeps the household
// consistent: an empty household is deleted, and a departing owner
// hands the role to the longest-standing remaining member.
func (r *householdRepository) LeaveHousehold(ctx context.Context, householdID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var leaving entities.HouseholdMember
		if err := tx.Where("household_id = ? AND user_id = ?", householdID, userID).
			First(&leaving).Error; err != nil {
			return err
		}

		if err := tx.Delete(&leaving).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.User{}).
			Where("id = ?", userID).
			Update("household_id", nil).Error; err != nil {
			return err
		}

		var remaining []entities.HouseholdMember
		if err := tx.Where("household_id = ?", householdID).
			Order("joined_at asc").
			Find(&remaining).Error; err != nil {
			return err
		}

		if len(remaining) == 0 {
			return tx.Where("id = ?", householdID).Delete(&entities.Household{}).Error
		}

		if leaving.Role == "owner" {
			return tx.Model(&entities.HouseholdMember{}).
				Where("id = ?", remaining[0].ID).
				Update("role", "owner").Error
		}

		return nil
	})
}

func (r *householdRepository) DeleteHousehold(ctx context.Context, householdID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.User{}).
			Where("household_id = ?", householdID).
			Update("household_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Where("household_id = ?", householdID).
			Delete(&entities.HouseholdMember{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", householdID).Delete(&entities.Household{}).Error
	})
}
