package household_test

import (
	"context"
	"testing"
	"time"

	"pantrypal-backend/domain"
	"pantrypal-backend/entities"
	"pantrypal-backend/pkg/household"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeHouseholdRepository struct {
	users      map[string]*entities.User
	households map[uuid.UUID]*entities.Household
	byCode     map[string]*entities.Household
	members    map[uuid.UUID]map[uuid.UUID]*entities.HouseholdMember

	created *entities.Household
	joined  *entities.User
	removed []uuid.UUID
	left    bool
	deleted bool
}

func newFakeHouseholdRepository() *fakeHouseholdRepository {
	return &fakeHouseholdRepository{
		users:      map[string]*entities.User{},
		households: map[uuid.UUID]*entities.Household{},
		byCode:     map[string]*entities.Household{},
		members:    map[uuid.UUID]map[uuid.UUID]*entities.HouseholdMember{},
	}
}

func (f *fakeHouseholdRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeHouseholdRepository) GetHouseholdByID(_ context.Context, id uuid.UUID) (*entities.Household, error) {
	h, ok := f.households[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	h.Members = h.Members[:0]
	for _, m := range f.members[id] {
		h.Members = append(h.Members, m)
	}
	return h, nil
}

func (f *fakeHouseholdRepository) GetHouseholdByInviteCode(_ context.Context, code string) (*entities.Household, error) {
	if h, ok := f.byCode[code]; ok {
		return h, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeHouseholdRepository) GetMember(_ context.Context, householdID, userID uuid.UUID) (*entities.HouseholdMember, error) {
	if m, ok := f.members[householdID][userID]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeHouseholdRepository) UpdateHousehold(_ context.Context, h *entities.Household) error {
	f.households[h.ID] = h
	return nil
}

func (f *fakeHouseholdRepository) CreateHouseholdWithOwner(_ context.Context, h *entities.Household, owner *entities.User) error {
	f.created = h
	f.households[h.ID] = h
	owner.HouseholdID = &h.ID
	f.members[h.ID] = map[uuid.UUID]*entities.HouseholdMember{
		owner.ID: {HouseholdID: h.ID, UserID: owner.ID, Role: domain.RoleHouseholdOwner, DisplayName: owner.Name},
	}
	return nil
}

func (f *fakeHouseholdRepository) AddMember(_ context.Context, h *entities.Household, user *entities.User) error {
	f.joined = user
	user.HouseholdID = &h.ID
	if f.members[h.ID] == nil {
		f.members[h.ID] = map[uuid.UUID]*entities.HouseholdMember{}
	}
	f.members[h.ID][user.ID] = &entities.HouseholdMember{HouseholdID: h.ID, UserID: user.ID, Role: domain.RoleHouseholdMember, DisplayName: user.Name}
	return nil
}

func (f *fakeHouseholdRepository) RemoveMember(_ context.Context, householdID, userID uuid.UUID) error {
	f.removed = append(f.removed, userID)
	delete(f.members[householdID], userID)
	return nil
}

func (f *fakeHouseholdRepository) LeaveHousehold(_ context.Context, householdID, userID uuid.UUID) error {
	f.left = true
	delete(f.members[householdID], userID)
	return nil
}

func (f *fakeHouseholdRepository) DeleteHousehold(_ context.Context, householdID uuid.UUID) error {
	f.deleted = true
	delete(f.households, householdID)
	return nil
}

func seedHousehold(repo *fakeHouseholdRepository, owner *entities.User, expiry time.Time) *entities.Household {
	h := &entities.Household{
		ID:               uuid.New(),
		Name:             "Home",
		InviteCode:       "feedc0defeedc0de",
		InviteCodeExpiry: expiry,
	}
	repo.households[h.ID] = h
	repo.byCode[h.InviteCode] = h
	owner.HouseholdID = &h.ID
	repo.members[h.ID] = map[uuid.UUID]*entities.HouseholdMember{
		owner.ID: {HouseholdID: h.ID, UserID: owner.ID, Role: domain.RoleHouseholdOwner, DisplayName: owner.Name},
	}
	return h
}

func TestCreateHousehold(t *testing.T) {
	repo := newFakeHouseholdRepository()
	svc := household.NewHouseholdService(repo)

	owner := &entities.User{ID: uuid.New(), Name: "Alice"}
	repo.users[owner.ID.String()] = owner

	res, err := svc.CreateHousehold(context.Background(), domain.CreateHouseholdRequest{Name: "Home"}, owner.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "Home", res.Name)
	assert.NotEmpty(t, res.InviteCode)
	assert.True(t, res.InviteCodeExpiry.After(time.Now()))
	require.Len(t, res.Members, 1)
	assert.Equal(t, domain.RoleHouseholdOwner, res.Members[0].Role)

	// A second household for the same user is rejected.
	_, err = svc.CreateHousehold(context.Background(), domain.CreateHouseholdRequest{Name: "Second"}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrAlreadyInHousehold)
}

func TestJoinHousehold(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		expiry  time.Time
		wantErr error
	}{
		{
			name:   "valid code",
			code:   "feedc0defeedc0de",
			expiry: time.Now().Add(time.Hour),
		},
		{
			name:    "unknown code",
			code:    "nope",
			expiry:  time.Now().Add(time.Hour),
			wantErr: domain.ErrInviteCodeNotFound,
		},
		{
			name:    "expired code",
			code:    "feedc0defeedc0de",
			expiry:  time.Now().Add(-time.Hour),
			wantErr: domain.ErrInviteCodeExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeHouseholdRepository()
			svc := household.NewHouseholdService(repo)

			owner := &entities.User{ID: uuid.New(), Name: "Alice"}
			seedHousehold(repo, owner, tt.expiry)

			joiner := &entities.User{ID: uuid.New(), Name: "Bob"}
			repo.users[joiner.ID.String()] = joiner

			res, err := svc.JoinHousehold(context.Background(), domain.JoinHouseholdRequest{InviteCode: tt.code}, joiner.ID.String())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, repo.joined)
				return
			}

			require.NoError(t, err)
			assert.Len(t, res.Members, 2)
			assert.NotNil(t, joiner.HouseholdID)
		})
	}
}

func TestJoinHouseholdAlreadyMember(t *testing.T) {
	repo := newFakeHouseholdRepository()
	svc := household.NewHouseholdService(repo)

	owner := &entities.User{ID: uuid.New(), Name: "Alice"}
	seedHousehold(repo, owner, time.Now().Add(time.Hour))
	repo.users[owner.ID.String()] = owner

	_, err := svc.JoinHousehold(context.Background(), domain.JoinHouseholdRequest{InviteCode: "feedc0defeedc0de"}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrAlreadyInHousehold)
}

func TestRemoveMember(t *testing.T) {
	repo := newFakeHouseholdRepository()
	svc := household.NewHouseholdService(repo)

	owner := &entities.User{ID: uuid.New(), Name: "Alice"}
	h := seedHousehold(repo, owner, time.Now().Add(time.Hour))
	repo.users[owner.ID.String()] = owner

	member := &entities.User{ID: uuid.New(), Name: "Bob"}
	repo.users[member.ID.String()] = member
	repo.members[h.ID][member.ID] = &entities.HouseholdMember{HouseholdID: h.ID, UserID: member.ID, Role: domain.RoleHouseholdMember}

	t.Run("owner cannot remove themselves", func(t *testing.T) {
		err := svc.RemoveMember(context.Background(), domain.RemoveMemberRequest{UserID: owner.ID.String()}, owner.ID.String())
		assert.ErrorIs(t, err, domain.ErrOwnerCannotBeRemoved)
	})

	t.Run("member cannot remove anyone", func(t *testing.T) {
		err := svc.RemoveMember(context.Background(), domain.RemoveMemberRequest{UserID: owner.ID.String()}, member.ID.String())
		assert.ErrorIs(t, err, domain.ErrNotHouseholdOwner)
	})

	t.Run("owner removes a member", func(t *testing.T) {
		err := svc.RemoveMember(context.Background(), domain.RemoveMemberRequest{UserID: member.ID.String()}, owner.ID.String())
		require.NoError(t, err)
		assert.Contains(t, repo.removed, member.ID)
	})
}

func TestGetMyHouseholdWithoutHousehold(t *testing.T) {
	repo := newFakeHouseholdRepository()
	svc := household.NewHouseholdService(repo)

	user := &entities.User{ID: uuid.New(), Name: "Solo"}
	repo.users[user.ID.String()] = user

	_, err := svc.GetMyHousehold(context.Background(), user.ID.String())
	assert.ErrorIs(t, err, domain.ErrHouseholdNotFound)
}

func TestLeaveHousehold(t *testing.T) {
	repo := newFakeHouseholdRepository()
	svc := household.NewHouseholdService(repo)

	owner := &entities.User{ID: uuid.New(), Name: "Alice"}
	seedHousehold(repo, owner, time.Now().Add(time.Hour))
	repo.users[owner.ID.String()] = owner

	require.NoError(t, svc.LeaveHousehold(context.Background(), owner.ID.String()))
	assert.True(t, repo.left)

	solo := &entities.User{ID: uuid.New(), Name: "Solo"}
	repo.users[solo.ID.String()] = solo
	assert.ErrorIs(t, svc.LeaveHousehold(context.Background(), solo.ID.String()), domain.ErrNotHouseholdMember)
}
