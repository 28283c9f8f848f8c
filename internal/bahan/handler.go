package bahan

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inventaris-lab-backend/internal/export"
	"inventaris-lab-backend/internal/inventory"
	"inventaris-lab-backend/internal/inventory/filter"
)

type Handler struct {
	svc *Service
	exp *export.Exporter
}

// RegisterRoutes mounts the bahan resource. guard runs before every mutating
// route.
func RegisterRoutes(r gin.IRoutes, svc *Service, exp *export.Exporter, guard gin.HandlerFunc) {
	h := &Handler{svc: svc, exp: exp}

	r.POST("/bahan", guard, h.Create)
	r.GET("/bahan", h.List)
	r.GET("/bahan/export", h.Export)
	r.GET("/bahan/:id", h.Get)
	r.PUT("/bahan/:id", guard, h.Update)
	r.DELETE("/bahan/:id", guard, h.Delete)
}

// ---------- handlers ----------

func (h *Handler) Create(c *gin.Context) {
	var req CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, inventory.ErrorBody(inventory.CodeInvalidArgument, "invalid json"))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		inventory.RespondError(c, err)
		return
	}
	c.Header("Location", "/api/bahan/"+strconv.FormatInt(res.ID, 10))
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) List(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context(), queryFrom(c))
	if err != nil {
		inventory.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Export(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context(), queryFrom(c))
	if err != nil {
		inventory.RespondError(c, err)
		return
	}
	h.exp.Serve(c, "bahan", "Bahan", export.MaterialSheet("Sheet1", res))
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := inventory.ParseID(c, "id")
	if !ok {
		return
	}
	res, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		inventory.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := inventory.ParseID(c, "id")
	if !ok {
		return
	}
	var req UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, inventory.ErrorBody(inventory.CodeInvalidArgument, "invalid json"))
		return
	}
	res, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		inventory.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := inventory.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		inventory.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inventory.DeleteResult{Message: "Bahan berhasil dihapus", AffectedRows: 1})
}

// ---------- helpers ----------

func queryFrom(c *gin.Context) filter.MaterialQuery {
	return filter.MaterialQuery{
		Search: c.Query("search"),
		Lab:    inventory.Lab(c.Query("lab")),
	}
}
