package services_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dealpipeline/internal/models"
	"dealpipeline/internal/repositories/mocks"
	"dealpipeline/internal/services"
)

func strPtr(s string) *string { return &s }

func TestDealService_CreateDefaults(t *testing.T) {
	repo := &mocks.DealRepository{}
	var gotDeal *models.Deal
	var gotActivity *models.Activity
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		gotDeal = args.Get(0).(*models.Deal)
		gotActivity = args.Get(1).(*models.Activity)
		gotDeal.ID = 7
	}).Return(nil)

	svc := services.NewDealService(repo)
	deal, err := svc.Create(&models.DealCreate{Name: "Acme"}, 3)
	require.NoError(t, err)

	require.Equal(t, models.StageSourced, deal.Stage)
	require.Equal(t, models.StatusActive, deal.Status)
	require.Equal(t, 3, deal.OwnerID)
	require.Equal(t, 7, deal.ID)

	require.Equal(t, models.ActivityStageChange, gotActivity.ActivityType)
	require.Equal(t, "Deal created in sourced stage", gotActivity.Description)
	require.Equal(t, 3, gotActivity.UserID)
	repo.AssertExpectations(t)
}

func TestDealService_CreateKeepsExplicitStage(t *testing.T) {
	repo := &mocks.DealRepository{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Activity) bool {
		return a.Description == "Deal created in screen stage"
	})).Return(nil)

	svc := services.NewDealService(repo)
	deal, err := svc.Create(&models.DealCreate{Name: "Acme", Stage: models.StageScreen}, 1)
	require.NoError(t, err)
	require.Equal(t, models.StageScreen, deal.Stage)
	repo.AssertExpectations(t)
}

func TestDealService_UpdateStageChangeEmitsActivity(t *testing.T) {
	repo := &mocks.DealRepository{}
	repo.On("GetByID", 1).Return(&models.Deal{ID: 1, Name: "Acme", Stage: models.StageSourced, Status: models.StatusActive}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(a *models.Activity) bool {
		return a != nil &&
			a.ActivityType == models.ActivityStageChange &&
			a.Description == "Moved from sourced to diligence" &&
			a.UserID == 9
	})).Return(nil)

	svc := services.NewDealService(repo)
	deal, err := svc.Update(1, &models.DealUpdate{Stage: models.Opt(models.StageDiligence)}, 9)
	require.NoError(t, err)
	require.Equal(t, models.StageDiligence, deal.Stage)
	repo.AssertExpectations(t)
}

func TestDealService_UpdateSameStageNoActivity(t *testing.T) {
	repo := &mocks.DealRepository{}
	repo.On("GetByID", 1).Return(&models.Deal{ID: 1, Name: "Acme", Stage: models.StageSourced}, nil)
	repo.On("Update", mock.Anything, (*models.Activity)(nil)).Return(nil)

	svc := services.NewDealService(repo)
	_, err := svc.Update(1, &models.DealUpdate{Stage: models.Opt(models.StageSourced)}, 9)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDealService_UpdatePartial(t *testing.T) {
	repo := &mocks.DealRepository{}
	repo.On("GetByID", 1).Return(&models.Deal{ID: 1, Name: "Acme", Stage: models.StageIC, Round: "seed"}, nil)
	repo.On("Update", mock.Anything, (*models.Activity)(nil)).Return(nil)

	svc := services.NewDealService(repo)
	deal, err := svc.Update(1, &models.DealUpdate{Round: models.Opt("series-a")}, 9)
	require.NoError(t, err)
	// untouched fields survive, only the provided one changes
	require.Equal(t, "Acme", deal.Name)
	require.Equal(t, models.StageIC, deal.Stage)
	require.Equal(t, "series-a", deal.Round)
	repo.AssertExpectations(t)
}

func TestDealService_UpdateExplicitNullClearsField(t *testing.T) {
	repo := &mocks.DealRepository{}
	repo.On("GetByID", 1).Return(&models.Deal{ID: 1, Name: "Acme", Stage: models.StageIC, Round: "seed"}, nil)
	repo.On("Update", mock.Anything, (*models.Activity)(nil)).Return(nil)

	var upd models.DealUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"round": null}`), &upd))
	require.True(t, upd.Round.Set)
	require.False(t, upd.Round.Valid)

	svc := services.NewDealService(repo)
	deal, err := svc.Update(1, &upd, 9)
	require.NoError(t, err)
	require.Equal(t, "", deal.Round)
	require.Equal(t, "Acme", deal.Name)
}

func TestDealService_UpdateAbsentFieldUntouched(t *testing.T) {
	repo := &mocks.DealRepository{}
	repo.On("GetByID", 1).Return(&models.Deal{ID: 1, Name: "Acme", Stage: models.StageIC, Round: "seed"}, nil)
	repo.On("Update", mock.Anything, (*models.Activity)(nil)).Return(nil)

	var upd models.DealUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Acme Corp"}`), &upd))
	require.False(t, upd.Round.Set)

	svc := services.NewDealService(repo)
	deal, err := svc.Update(1, &upd, 9)
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", deal.Name)
	require.Equal(t, "seed", deal.Round)
}

func TestDealService_UpdateNotFound(t *testing.T) {
	repo := &mocks.DealRepository{}
	repo.On("GetByID", 42).Return((*models.Deal)(nil), nil)

	svc := services.NewDealService(repo)
	_, err := svc.Update(42, &models.DealUpdate{Name: models.Opt("x")}, 1)
	require.ErrorIs(t, err, services.ErrDealNotFound)
}

func TestDealService_Delete(t *testing.T) {
	repo := &mocks.DealRepository{}
	repo.On("DeleteCascade", 1).Return(true, nil)

	svc := services.NewDealService(repo)
	require.NoError(t, svc.Delete(1))
	repo.AssertExpectations(t)
}

func TestDealService_DeleteNotFound(t *testing.T) {
	repo := &mocks.DealRepository{}
	repo.On("DeleteCascade", 42).Return(false, nil)

	svc := services.NewDealService(repo)
	require.ErrorIs(t, svc.Delete(42), services.ErrDealNotFound)
}

func TestDealService_ListPassesStageFilter(t *testing.T) {
	repo := &mocks.DealRepository{}
	repo.On("List", models.StageIC, 50, 10).Return([]*models.Deal{{ID: 1}}, nil)

	svc := services.NewDealService(repo)
	deals, err := svc.List(models.StageIC, 50, 10)
	require.NoError(t, err)
	require.Len(t, deals, 1)
	repo.AssertExpectations(t)
}
