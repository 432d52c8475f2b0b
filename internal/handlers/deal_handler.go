package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealpipeline/internal/models"
	"dealpipeline/internal/services"
)

type DealHandler struct {
	Service *services.DealService
}

func NewDealHandler(service *services.DealService) *DealHandler {
	return &DealHandler{Service: service}
}

// @Summary      Create a deal
// @Description  New deals start in the sourced stage with active status
// @Tags         Deals
// @Accept       json
// @Produce      json
// @Param        deal  body      models.DealCreate  true  "Deal"
// @Success      201   {object}  models.Deal
// @Security     BearerAuth
// @Router       /deals [post]
func (h *DealHandler) Create(c *gin.Context) {
	var req models.DealCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Stage != "" && !models.IsValidStage(req.Stage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage"})
		return
	}

	deal, err := h.Service.Create(&req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, deal)
}

// @Summary      Update a deal
// @Description  Partial update; a stage change is recorded in the audit log
// @Tags         Deals
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Deal ID"
// @Param        deal  body      models.DealUpdate  true  "Fields to change"
// @Success      200   {object}  models.Deal
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /deals/{id} [put]
func (h *DealHandler) Update(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	var upd models.DealUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if upd.Stage.Set && !models.IsValidStage(upd.Stage.Value) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage"})
		return
	}
	if upd.Status.Set && !models.IsValidStatus(upd.Status.Value) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	deal, err := h.Service.Update(id, &upd, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}

func (h *DealHandler) GetByID(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	deal, err := h.Service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if deal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrDealNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, deal)
}

// @Summary      Delete a deal
// @Description  Cascades to votes, activities, memo and memo versions
// @Tags         Deals
// @Param        id  path  int  true  "Deal ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /deals/{id} [delete]
func (h *DealHandler) Delete(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	if err := h.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DealHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	stage := c.Query("stage")
	if stage != "" && !models.IsValidStage(stage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage"})
		return
	}

	deals, err := h.Service.List(stage, limit, skip)
	if err != nil {
		respondError(c, err)
		return
	}
	if deals == nil {
		deals = []*models.Deal{}
	}
	c.JSON(http.StatusOK, deals)
}
