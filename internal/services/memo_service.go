package services

import (
	"errors"

	"dealpipeline/internal/models"
	"dealpipeline/internal/pdf"
	"dealpipeline/internal/repositories"
)

// MemoService is the memo store: one memo per deal with an append-only
// version history. Version numbers per memo are contiguous from 1.
type MemoService struct {
	Repo     repositories.MemoRepository
	DealRepo repositories.DealRepository
	PDF      pdf.Generator // optional; nil disables export
}

func NewMemoService(repo repositories.MemoRepository, dealRepo repositories.DealRepository, gen pdf.Generator) *MemoService {
	return &MemoService{Repo: repo, DealRepo: dealRepo, PDF: gen}
}

// Create writes the memo and its version-1 snapshot. It intentionally emits
// no activity; only updates do.
func (s *MemoService) Create(req *models.MemoCreate, creatorID int) (*models.Memo, error) {
	deal, err := s.DealRepo.GetByID(req.DealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}

	existing, err := s.Repo.GetByDeal(req.DealID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMemoExists
	}

	memo := &models.Memo{
		DealID:      req.DealID,
		CreatedByID: creatorID,
		MemoFields:  req.MemoFields,
	}
	if err := s.Repo.Create(memo); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrMemoExists
		}
		return nil, err
	}
	return memo, nil
}

func (s *MemoService) Update(memoID int, upd *models.MemoUpdate, actorID int) (*models.Memo, error) {
	memo, _, err := s.Repo.Update(memoID, upd, actorID)
	if err != nil {
		return nil, err
	}
	if memo == nil {
		return nil, ErrMemoNotFound
	}
	return memo, nil
}

func (s *MemoService) GetByDeal(dealID int) (*models.Memo, error) {
	return s.Repo.GetByDeal(dealID)
}

func (s *MemoService) Get(memoID int) (*models.Memo, error) {
	return s.Repo.GetByID(memoID)
}

func (s *MemoService) ListVersions(memoID int) ([]*models.MemoVersion, error) {
	memo, err := s.Repo.GetByID(memoID)
	if err != nil {
		return nil, err
	}
	if memo == nil {
		return nil, ErrMemoNotFound
	}
	return s.Repo.ListVersions(memoID)
}

func (s *MemoService) GetVersion(versionID int) (*models.MemoVersion, error) {
	v, err := s.Repo.GetVersion(versionID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrMemoVersionNotFound
	}
	return v, nil
}

// ExportPDF renders the current memo as a PDF document.
func (s *MemoService) ExportPDF(memoID int) ([]byte, string, error) {
	if s.PDF == nil {
		return nil, "", ErrExportDisabled
	}
	memo, err := s.Repo.GetByID(memoID)
	if err != nil {
		return nil, "", err
	}
	if memo == nil {
		return nil, "", ErrMemoNotFound
	}
	deal, err := s.DealRepo.GetByID(memo.DealID)
	if err != nil {
		return nil, "", err
	}
	if deal == nil {
		return nil, "", ErrDealNotFound
	}
	return s.PDF.RenderMemo(deal, memo)
}
