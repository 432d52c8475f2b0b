package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealpipeline/internal/models"
	"dealpipeline/internal/services"
)

type MemoHandler struct {
	Service *services.MemoService
}

func NewMemoHandler(service *services.MemoService) *MemoHandler {
	return &MemoHandler{Service: service}
}

// @Summary      Create a memo
// @Description  One memo per deal; version 1 is snapshotted immediately
// @Tags         Memos
// @Accept       json
// @Produce      json
// @Param        memo  body      models.MemoCreate  true  "Memo"
// @Success      201   {object}  models.Memo
// @Failure      409   {object}  map[string]string
// @Security     BearerAuth
// @Router       /memos [post]
func (h *MemoHandler) Create(c *gin.Context) {
	var req models.MemoCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	memo, err := h.Service.Create(&req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, memo)
}

// @Summary      Update a memo
// @Description  Snapshots the previous state as the next version
// @Tags         Memos
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Memo ID"
// @Param        memo  body      models.MemoUpdate  true  "Fields to change"
// @Success      200   {object}  models.Memo
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /memos/{id} [put]
func (h *MemoHandler) Update(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	var upd models.MemoUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	memo, err := h.Service.Update(id, &upd, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, memo)
}

func (h *MemoHandler) GetByDeal(c *gin.Context) {
	dealID, ok := paramInt(c, "deal_id")
	if !ok {
		return
	}
	memo, err := h.Service.GetByDeal(dealID)
	if err != nil {
		respondError(c, err)
		return
	}
	if memo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "memo not found for this deal"})
		return
	}
	c.JSON(http.StatusOK, memo)
}

func (h *MemoHandler) GetByID(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	memo, err := h.Service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if memo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrMemoNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, memo)
}

// @Summary  Memo version history, newest first
// @Tags     Memos
// @Produce  json
// @Param    id   path     int  true  "Memo ID"
// @Success  200  {array}  models.MemoVersion
// @Security BearerAuth
// @Router   /memos/{id}/versions [get]
func (h *MemoHandler) ListVersions(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	versions, err := h.Service.ListVersions(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if versions == nil {
		versions = []*models.MemoVersion{}
	}
	c.JSON(http.StatusOK, versions)
}

func (h *MemoHandler) GetVersion(c *gin.Context) {
	id, ok := paramInt(c, "version_id")
	if !ok {
		return
	}
	version, err := h.Service.GetVersion(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, version)
}

// ExportPDF streams the current memo as a PDF attachment.
func (h *MemoHandler) ExportPDF(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	data, filename, err := h.Service.ExportPDF(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
