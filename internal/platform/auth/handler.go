package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventaris-lab-backend/internal/inventory"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	admin := []gin.HandlerFunc{RequireAuth(svc.Secret()), RequireRole(RoleAdmin)}

	r.POST("/login", h.Login)
	r.POST("/accounts", append(admin, h.Register)...)
	r.DELETE("/accounts/:id", append(admin, h.Delete)...)
}

// ===== Request DTOs =====

type LoginRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	ID       string  `json:"id" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Role     *string `json:"role,omitempty"` // staff when omitted
}

// ---------- handlers ----------

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, inventory.ErrorBody(inventory.CodeInvalidArgument, "invalid request"))
		return
	}
	token, err := h.svc.Login(c.Request.Context(), req.ID, req.Password)
	if err != nil {
		inventory.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"message": "Login successful",
	})
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, inventory.ErrorBody(inventory.CodeInvalidArgument, "invalid request"))
		return
	}
	role := RoleStaff
	if req.Role != nil && *req.Role != "" {
		role = *req.Role
	}
	if err := h.svc.Register(c.Request.Context(), req.ID, req.Password, role); err != nil {
		inventory.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "registered"})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		inventory.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
