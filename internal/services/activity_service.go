package services

import (
	"dealpipeline/internal/models"
	"dealpipeline/internal/repositories"
)

// ActivityService is the read side of the audit log plus comments, the one
// activity type written directly rather than as a side effect.
type ActivityService struct {
	Repo     repositories.ActivityRepository
	DealRepo repositories.DealRepository
}

func NewActivityService(repo repositories.ActivityRepository, dealRepo repositories.DealRepository) *ActivityService {
	return &ActivityService{Repo: repo, DealRepo: dealRepo}
}

func (s *ActivityService) ListByDeal(dealID, limit, offset int) ([]*models.Activity, error) {
	return s.Repo.ListByDeal(dealID, limit, offset)
}

func (s *ActivityService) AddComment(dealID, actorID int, comment string) (*models.Activity, error) {
	deal, err := s.DealRepo.GetByID(dealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}

	activity := models.CommentActivity(dealID, actorID, comment)
	if err := s.Repo.Create(activity); err != nil {
		return nil, err
	}
	return activity, nil
}
