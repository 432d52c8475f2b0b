package services

import (
	"time"

	"dealpipeline/internal/models"
	"dealpipeline/internal/repositories"
)

// DealService owns the deal lifecycle: creation, partial updates with
// stage-change auditing, listing and the delete cascade.
type DealService struct {
	Repo repositories.DealRepository
}

func NewDealService(repo repositories.DealRepository) *DealService {
	return &DealService{Repo: repo}
}

func (s *DealService) Create(req *models.DealCreate, ownerID int) (*models.Deal, error) {
	deal := &models.Deal{
		Name:       req.Name,
		CompanyURL: req.CompanyURL,
		OwnerID:    ownerID,
		Stage:      req.Stage,
		Round:      req.Round,
		CheckSize:  req.CheckSize,
		Status:     models.StatusActive,
		CreatedAt:  time.Now(),
	}
	if deal.Stage == "" {
		deal.Stage = models.StageSourced
	}

	initial := models.DealCreatedActivity(0, ownerID, deal.Stage)
	if err := s.Repo.Create(deal, initial); err != nil {
		return nil, err
	}
	return deal, nil
}

// Update applies only the fields present in upd; an explicit null clears
// its field. A stage change appends
// exactly one stage_change activity in the same transaction; setting the
// stage to its current value appends none.
func (s *DealService) Update(dealID int, upd *models.DealUpdate, actorID int) (*models.Deal, error) {
	deal, err := s.Repo.GetByID(dealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}

	oldStage := deal.Stage
	if upd.Name.Set {
		deal.Name = upd.Name.Value
	}
	if upd.CompanyURL.Set {
		deal.CompanyURL = upd.CompanyURL.Value
	}
	if upd.Stage.Set {
		deal.Stage = upd.Stage.Value
	}
	if upd.Round.Set {
		deal.Round = upd.Round.Value
	}
	if upd.CheckSize.Set {
		deal.CheckSize = upd.CheckSize.Value
	}
	if upd.Status.Set {
		deal.Status = upd.Status.Value
	}

	var stageChange *models.Activity
	if upd.Stage.Set && deal.Stage != oldStage {
		stageChange = models.StageChangeActivity(dealID, actorID, oldStage, deal.Stage)
	}

	if err := s.Repo.Update(deal, stageChange); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *DealService) GetByID(dealID int) (*models.Deal, error) {
	return s.Repo.GetByID(dealID)
}

func (s *DealService) Delete(dealID int) error {
	found, err := s.Repo.DeleteCascade(dealID)
	if err != nil {
		return err
	}
	if !found {
		return ErrDealNotFound
	}
	return nil
}

func (s *DealService) List(stage string, limit, offset int) ([]*models.Deal, error) {
	return s.Repo.List(stage, limit, offset)
}
