package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealpipeline/internal/models"
	"dealpipeline/internal/services"
)

type UserHandler struct {
	Service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

// @Summary  Current user
// @Tags     Users
// @Produce  json
// @Success  200  {object}  models.User
// @Security BearerAuth
// @Router   /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.Service.GetByID(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	users, err := h.Service.List(limit, skip)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	user, err := h.Service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create is the admin path for adding users; unlike /register it allows any
// role without defaulting.
func (h *UserHandler) Create(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Role != "" && !models.IsValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}
	user, err := h.Service.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	var upd models.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if upd.Role != nil && !models.IsValidRole(*upd.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}
	user, err := h.Service.Update(id, &upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
