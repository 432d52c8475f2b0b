package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealpipeline/internal/models"
	"dealpipeline/internal/services"
)

// ActivityHandler serves the audit log plus the partner workflow actions
// (comments, votes, approve/decline).
type ActivityHandler struct {
	Activities *services.ActivityService
	Votes      *services.VoteService
}

func NewActivityHandler(activities *services.ActivityService, votes *services.VoteService) *ActivityHandler {
	return &ActivityHandler{Activities: activities, Votes: votes}
}

// @Summary  Activity log for a deal, newest first
// @Tags     Activities
// @Produce  json
// @Param    deal_id  path      int  true  "Deal ID"
// @Success  200      {array}   models.Activity
// @Security BearerAuth
// @Router   /activities/deal/{deal_id} [get]
func (h *ActivityHandler) ListByDeal(c *gin.Context) {
	dealID, ok := paramInt(c, "deal_id")
	if !ok {
		return
	}
	skip, limit := pagination(c)
	activities, err := h.Activities.ListByDeal(dealID, limit, skip)
	if err != nil {
		respondError(c, err)
		return
	}
	if activities == nil {
		activities = []*models.Activity{}
	}
	c.JSON(http.StatusOK, activities)
}

type commentRequest struct {
	DealID  int    `json:"deal_id" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

func (h *ActivityHandler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	activity, err := h.Activities.AddComment(req.DealID, currentUserID(c), req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

// @Summary      Cast a vote
// @Description  Partners only; one vote per partner per deal
// @Tags         Votes
// @Produce      json
// @Param        deal_id  path      int  true  "Deal ID"
// @Success      201      {object}  models.Vote
// @Failure      404      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Security     BearerAuth
// @Router       /activities/deal/{deal_id}/vote [post]
func (h *ActivityHandler) CastVote(c *gin.Context) {
	dealID, ok := paramInt(c, "deal_id")
	if !ok {
		return
	}
	vote, err := h.Votes.Cast(dealID, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vote)
}

// GetOwnVote returns the caller's vote on the deal, or null when they have
// not voted (an absent vote is not an error).
func (h *ActivityHandler) GetOwnVote(c *gin.Context) {
	dealID, ok := paramInt(c, "deal_id")
	if !ok {
		return
	}
	vote, err := h.Votes.Get(dealID, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vote)
}

func (h *ActivityHandler) ListVotes(c *gin.Context) {
	dealID, ok := paramInt(c, "deal_id")
	if !ok {
		return
	}
	votes, err := h.Votes.ListByDeal(dealID)
	if err != nil {
		respondError(c, err)
		return
	}
	if votes == nil {
		votes = []*models.Vote{}
	}
	c.JSON(http.StatusOK, votes)
}

// @Summary  Approve a deal
// @Tags     Votes
// @Produce  json
// @Param    deal_id  path      int  true  "Deal ID"
// @Success  200      {object}  models.Deal
// @Failure  404      {object}  map[string]string
// @Security BearerAuth
// @Router   /activities/deal/{deal_id}/approve [post]
func (h *ActivityHandler) Approve(c *gin.Context) {
	dealID, ok := paramInt(c, "deal_id")
	if !ok {
		return
	}
	deal, err := h.Votes.Approve(dealID, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}

// @Summary  Decline a deal
// @Tags     Votes
// @Produce  json
// @Param    deal_id  path      int  true  "Deal ID"
// @Success  200      {object}  models.Deal
// @Failure  404      {object}  map[string]string
// @Security BearerAuth
// @Router   /activities/deal/{deal_id}/decline [post]
func (h *ActivityHandler) Decline(c *gin.Context) {
	dealID, ok := paramInt(c, "deal_id")
	if !ok {
		return
	}
	deal, err := h.Votes.Decline(dealID, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}
