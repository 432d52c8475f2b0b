package mocks

import (
	"github.com/stretchr/testify/mock"

	"dealpipeline/internal/models"
)

// DealRepository is a mock for repositories.DealRepository.
type DealRepository struct {
	mock.Mock
}

func (m *DealRepository) Create(deal *models.Deal, initial *models.Activity) error {
	args := m.Called(deal, initial)
	return args.Error(0)
}

func (m *DealRepository) GetByID(id int) (*models.Deal, error) {
	args := m.Called(id)
	if deal, ok := args.Get(0).(*models.Deal); ok {
		return deal, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DealRepository) Update(deal *models.Deal, stageChange *models.Activity) error {
	args := m.Called(deal, stageChange)
	return args.Error(0)
}

func (m *DealRepository) UpdateStatus(id int, status string, activity *models.Activity) error {
	args := m.Called(id, status, activity)
	return args.Error(0)
}

func (m *DealRepository) DeleteCascade(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *DealRepository) List(stage string, limit, offset int) ([]*models.Deal, error) {
	args := m.Called(stage, limit, offset)
	if list, ok := args.Get(0).([]*models.Deal); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// VoteRepository is a mock for repositories.VoteRepository.
type VoteRepository struct {
	mock.Mock
}

func (m *VoteRepository) Create(vote *models.Vote, activity *models.Activity) error {
	args := m.Called(vote, activity)
	return args.Error(0)
}

func (m *VoteRepository) GetByDealAndUser(dealID, userID int) (*models.Vote, error) {
	args := m.Called(dealID, userID)
	if vote, ok := args.Get(0).(*models.Vote); ok {
		return vote, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VoteRepository) ListByDeal(dealID int) ([]*models.Vote, error) {
	args := m.Called(dealID)
	if list, ok := args.Get(0).([]*models.Vote); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// MemoRepository is a mock for repositories.MemoRepository.
type MemoRepository struct {
	mock.Mock
}

func (m *MemoRepository) Create(memo *models.Memo) error {
	args := m.Called(memo)
	return args.Error(0)
}

func (m *MemoRepository) Update(memoID int, update *models.MemoUpdate, actorID int) (*models.Memo, int, error) {
	args := m.Called(memoID, update, actorID)
	if memo, ok := args.Get(0).(*models.Memo); ok {
		return memo, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *MemoRepository) GetByID(memoID int) (*models.Memo, error) {
	args := m.Called(memoID)
	if memo, ok := args.Get(0).(*models.Memo); ok {
		return memo, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MemoRepository) GetByDeal(dealID int) (*models.Memo, error) {
	args := m.Called(dealID)
	if memo, ok := args.Get(0).(*models.Memo); ok {
		return memo, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MemoRepository) ListVersions(memoID int) ([]*models.MemoVersion, error) {
	args := m.Called(memoID)
	if list, ok := args.Get(0).([]*models.MemoVersion); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MemoRepository) GetVersion(versionID int) (*models.MemoVersion, error) {
	args := m.Called(versionID)
	if v, ok := args.Get(0).(*models.MemoVersion); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivityRepository is a mock for repositories.ActivityRepository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Create(activity *models.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *ActivityRepository) ListByDeal(dealID, limit, offset int) ([]*models.Activity, error) {
	args := m.Called(dealID, limit, offset)
	if list, ok := args.Get(0).([]*models.Activity); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// UserRepository is a mock for repositories.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *UserRepository) GetByID(id int) (*models.User, error) {
	args := m.Called(id)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *UserRepository) List(limit, offset int) ([]*models.User, error) {
	args := m.Called(limit, offset)
	if list, ok := args.Get(0).([]*models.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
