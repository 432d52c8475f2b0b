package services

import (
	"errors"
	"fmt"
	"log"

	"dealpipeline/internal/models"
	"dealpipeline/internal/repositories"
)

// VoteService is the voting ledger: one vote per partner per deal, plus the
// approve/decline decisions that terminate a deal's status.
type VoteService struct {
	Repo     repositories.VoteRepository
	DealRepo repositories.DealRepository
	UserRepo repositories.UserRepository

	// Optional decision fan-out; either may be nil.
	Email    EmailService
	Telegram *TelegramService
}

func NewVoteService(repo repositories.VoteRepository, dealRepo repositories.DealRepository, userRepo repositories.UserRepository, email EmailService, telegram *TelegramService) *VoteService {
	return &VoteService{
		Repo:     repo,
		DealRepo: dealRepo,
		UserRepo: userRepo,
		Email:    email,
		Telegram: telegram,
	}
}

// Cast records voterID's vote on the deal. The existence pre-check is a
// fast path only; the unique constraint on (deal_id, user_id) rejects the
// race where two identical votes arrive concurrently.
func (s *VoteService) Cast(dealID, voterID int) (*models.Vote, error) {
	deal, err := s.DealRepo.GetByID(dealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}

	existing, err := s.Repo.GetByDealAndUser(dealID, voterID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyVoted
	}

	vote := &models.Vote{DealID: dealID, UserID: voterID}
	if err := s.Repo.Create(vote, models.VoteCastActivity(dealID, voterID)); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlreadyVoted
		}
		return nil, err
	}
	return vote, nil
}

func (s *VoteService) Get(dealID, userID int) (*models.Vote, error) {
	return s.Repo.GetByDealAndUser(dealID, userID)
}

func (s *VoteService) ListByDeal(dealID int) ([]*models.Vote, error) {
	return s.Repo.ListByDeal(dealID)
}

// Approve sets the deal status to approved and records the decision. There
// is deliberately no guard against deciding an already-decided deal; the
// latest decision wins.
func (s *VoteService) Approve(dealID, actorID int) (*models.Deal, error) {
	return s.decide(dealID, actorID, models.StatusApproved, models.ApprovalActivity(dealID, actorID))
}

// Decline sets the deal status to declined and records the decision.
func (s *VoteService) Decline(dealID, actorID int) (*models.Deal, error) {
	return s.decide(dealID, actorID, models.StatusDeclined, models.DeclineActivity(dealID, actorID))
}

func (s *VoteService) decide(dealID, actorID int, status string, activity *models.Activity) (*models.Deal, error) {
	deal, err := s.DealRepo.GetByID(dealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}

	if err := s.DealRepo.UpdateStatus(dealID, status, activity); err != nil {
		return nil, err
	}
	deal.Status = status

	s.notifyDecision(deal)
	return deal, nil
}

// notifyDecision fans the decision out to the deal owner and the partners
// channel. Best effort: failures are logged, never returned.
func (s *VoteService) notifyDecision(deal *models.Deal) {
	if s.Email != nil {
		owner, err := s.UserRepo.GetByID(deal.OwnerID)
		if err != nil || owner == nil {
			log.Printf("[votes][notify] owner lookup failed for deal=%d: %v", deal.ID, err)
		} else if err := s.Email.SendDecisionEmail(owner.Email, deal.Name, deal.Status); err != nil {
			log.Printf("[votes][notify] warning: decision email to %s failed: %v", owner.Email, err)
		}
	}
	if s.Telegram != nil {
		msg := fmt.Sprintf("Deal %q was %s", deal.Name, deal.Status)
		if err := s.Telegram.NotifyPartners(msg); err != nil {
			log.Printf("[votes][notify] warning: telegram push failed: %v", err)
		}
	}
}
