package household

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"pantrypal-backend/domain"
	"pantrypal-backend/entities"
	"pantrypal-backend/internal/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const inviteCodeTTL = 7 * 24 * time.Hour

type (
	HouseholdService interface {
		ResolveContext(ctx context.Context, userID string) (*domain.HouseholdContext, error)
		CreateHousehold(ctx context.Context, req domain.CreateHouseholdRequest, userID string) (domain.HouseholdResponse, error)
		GetMyHousehold(ctx context.Context, userID string) (domain.HouseholdResponse, error)
		UpdateHousehold(ctx context.Context, req domain.UpdateHouseholdRequest, userID string) (domain.HouseholdResponse, error)
		JoinHousehold(ctx context.Context, req domain.JoinHouseholdRequest, userID string) (domain.HouseholdResponse, error)
		LeaveHousehold(ctx context.Context, userID string) error
		DeleteHousehold(ctx context.Context, userID string) error
		RegenerateInviteCode(ctx context.Context, userID string) (domain.HouseholdResponse, error)
		RemoveMember(ctx context.Context, req domain.RemoveMemberRequest, userID string) error
	}

	householdService struct {
		householdRepository HouseholdRepository
	}
)

func NewHouseholdService(householdRepository HouseholdRepository) HouseholdService {
	return &householdService{householdRepository: householdRepository}
}

// ResolveContext loads the caller and returns their identity plus
// active household, the inputs every scoped controller needs. One read,
// no caching.
func (s *householdService) ResolveContext(ctx context.Context, userID string) (*domain.HouseholdContext, error) {
	user, err := s.householdRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return &domain.HouseholdContext{
		UserID:      user.ID,
		HouseholdID: user.HouseholdID,
		UserName:    user.Name,
	}, nil
}

func generateInviteCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (s *householdService) CreateHousehold(ctx context.Context, req domain.CreateHouseholdRequest, userID string) (domain.HouseholdResponse, error) {
	user, err := s.householdRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.HouseholdResponse{}, domain.ErrUserNotFound
		}
		return domain.HouseholdResponse{}, err
	}

	if user.HouseholdID != nil {
		return domain.HouseholdResponse{}, domain.ErrAlreadyInHousehold
	}

	code, err := generateInviteCode()
	if err != nil {
		return domain.HouseholdResponse{}, err
	}

	household := &entities.Household{
		ID:               uuid.New(),
		Name:             req.Name,
		InviteCode:       code,
		InviteCodeExpiry: time.Now().Add(inviteCodeTTL),
	}

	if err := s.householdRepository.CreateHouseholdWithOwner(ctx, household, user); err != nil {
		logger.Log.Errorw("failed to create household", "err", err)
		return domain.HouseholdResponse{}, err
	}

	return s.buildResponse(ctx, household.ID)
}

func (s *householdService) GetMyHousehold(ctx context.Context, userID string) (domain.HouseholdResponse, error) {
	hctx, err := s.ResolveContext(ctx, userID)
	if err != nil {
		return domain.HouseholdResponse{}, err
	}
	if hctx.HouseholdID == nil {
		return domain.HouseholdResponse{}, domain.ErrHouseholdNotFound
	}

	return s.buildResponse(ctx, *hctx.HouseholdID)
}

func (s *householdService) UpdateHousehold(ctx context.Context, req domain.UpdateHouseholdRequest, userID string) (domain.HouseholdResponse, error) {
	household, _, err := s.requireOwner(ctx, userID)
	if err != nil {
		return domain.HouseholdResponse{}, err
	}

	if req.Name != nil {
		household.Name = *req.Name
	}

	if err := s.householdRepository.UpdateHousehold(ctx, household); err != nil {
		return domain.HouseholdResponse{}, err
	}

	return s.buildResponse(ctx, household.ID)
}

func (s *householdService) JoinHousehold(ctx context.Context, req domain.JoinHouseholdRequest, userID string) (domain.HouseholdResponse, error) {
	user, err := s.householdRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.HouseholdResponse{}, domain.ErrUserNotFound
		}
		return domain.HouseholdResponse{}, err
	}

	if user.HouseholdID != nil {
		return domain.HouseholdResponse{}, domain.ErrAlreadyInHousehold
	}

	household, err := s.householdRepository.GetHouseholdByInviteCode(ctx, req.InviteCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.HouseholdResponse{}, domain.ErrInviteCodeNotFound
		}
		return domain.HouseholdResponse{}, err
	}

	if time.Now().After(household.InviteCodeExpiry) {
		return domain.HouseholdResponse{}, domain.ErrInviteCodeExpired
	}

	if err := s.householdRepository.AddMember(ctx, household, user); err != nil {
		logger.Log.Errorw("failed to join household", "err", err, "household_id", household.ID)
		return domain.HouseholdResponse{}, err
	}

	return s.buildResponse(ctx, household.ID)
}

func (s *householdService) LeaveHousehold(ctx context.Context, userID string) error {
	hctx, err := s.ResolveContext(ctx, userID)
	if err != nil {
		return err
	}
	if hctx.HouseholdID == nil {
		return domain.ErrNotHouseholdMember
	}

	return s.householdRepository.LeaveHousehold(ctx, *hctx.HouseholdID, hctx.UserID)
}

func (s *householdService) DeleteHousehold(ctx context.Context, userID string) error {
	household, _, err := s.requireOwner(ctx, userID)
	if err != nil {
		return err
	}

	return s.householdRepository.DeleteHousehold(ctx, household.ID)
}

func (s *householdService) RegenerateInviteCode(ctx context.Context, userID string) (domain.HouseholdResponse, error) {
	household, _, err := s.requireOwner(ctx, userID)
	if err != nil {
		return domain.HouseholdResponse{}, err
	}

	code, err := generateInviteCode()
	if err != nil {
		return domain.HouseholdResponse{}, err
	}

	household.InviteCode = code
	household.InviteCodeExpiry = time.Now().Add(inviteCodeTTL)

	if err := s.householdRepository.UpdateHousehold(ctx, household); err != nil {
		return domain.HouseholdResponse{}, err
	}

	return s.buildResponse(ctx, household.ID)
}

func (s *householdService) RemoveMember(ctx context.Context, req domain.RemoveMemberRequest, userID string) error {
	household, owner, err := s.requireOwner(ctx, userID)
	if err != nil {
		return err
	}

	targetID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if targetID == owner.UserID {
		return domain.ErrOwnerCannotBeRemoved
	}

	if _, err := s.householdRepository.GetMember(ctx, household.ID, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotHouseholdMember
		}
		return err
	}

	return s.householdRepository.RemoveMember(ctx, household.ID, targetID)
}

func (s *householdService) requireOwner(ctx context.Context, userID string) (*entities.Household, *entities.HouseholdMember, error) {
	hctx, err := s.ResolveContext(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if hctx.HouseholdID == nil {
		return nil, nil, domain.ErrNotHouseholdMember
	}

	household, err := s.householdRepository.GetHouseholdByID(ctx, *hctx.HouseholdID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrHouseholdNotFound
		}
		return nil, nil, err
	}

	member, err := s.householdRepository.GetMember(ctx, household.ID, hctx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrNotHouseholdMember
		}
		return nil, nil, err
	}

	if member.Role != domain.RoleHouseholdOwner {
		return nil, nil, domain.ErrNotHouseholdOwner
	}

	return household, member, nil
}

func (s *householdService) buildResponse(ctx context.Context, householdID uuid.UUID) (domain.HouseholdResponse, error) {
	household, err := s.householdRepository.GetHouseholdByID(ctx, householdID)
	if err != nil {
		return domain.HouseholdResponse{}, err
	}

	members := make([]domain.HouseholdMemberResponse, 0, len(household.Members))
	for _, m := range household.Members {
		members = append(members, domain.HouseholdMemberResponse{
			UserID:      m.UserID.String(),
			Role:        m.Role,
			DisplayName: m.DisplayName,
			JoinedAt:    m.JoinedAt,
		})
	}

	return domain.HouseholdResponse{
		ID:               household.ID.String(),
		Name:             household.Name,
		InviteCode:       household.InviteCode,
		InviteCodeExpiry: household.InviteCodeExpiry,
		Members:          members,
	}, nil
}
