package peminjaman

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

// RegisterRoutes mounts the peminjaman resource. guard runs before every
// mutating route.
func RegisterRoutes(r gin.IRoutes, svc *Service, exp *export.Exporter, guard gin.HandlerFunc) {
	h := &Handler{svc: svc, exp: exp}

	r.POST("/peminjaman", guard, h.Create)
	r.GET("/peminjaman", h.List)
	r.GET("/peminjaman/export", h.Export)
	r.GET("/peminjaman/:id", h.Get)
	r.PUT("/peminjaman/:id", guard, h.MarkReturned)
	r.DELETE("/peminjaman/:id", guard, h.Delete)
}

// ---------- handlers ----------

func (h *Handler) Create(c *gin.Context) {
	var req CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, inventory.ErrorBody(inventory.CodeInvalidArgument, "invalid json"))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		inventory.RespondError(c, err)
		return
	}
	c.Header("Location", "/api/peminjaman/"+strconv.FormatInt(res.ID, 10))
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) List(c *gin.Context) {
	q, ok := queryFrom(c)
	if !ok {
		return
	}
	res, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		inventory.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Export(c *gin.Context) {
	q, ok := queryFrom(c)
	if !ok {
		return
	}
	res, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		inventory.RespondError(c, err)
		return
	}
	h.exp.Serve(c, "peminjaman", "Peminjaman", export.LoanSheet("Sheet1", res))
}

func (h *Handler) Get(c *gin.Context) {
	res, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		inventory.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) MarkReturned(c *gin.Context) {
	id, ok := inventory.ParseID(c, "id")
	if !ok {
		return
	}
	var req MarkReturnedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, inventory.ErrorBody(inventory.CodeInvalidArgument, "invalid json"))
		return
	}
	res, err := h.svc.MarkReturned(c.Request.Context(), id, req)
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
	if _, err := h.svc.Delete(c.Request.Context(), id); err != nil {
		inventory.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inventory.DeleteResult{Message: "Peminjaman berhasil dihapus", AffectedRows: 1})
}

// ---------- helpers ----------

func queryFrom(c *gin.Context) (filter.LoanQuery, bool) {
	status, ok := inventory.ParseLoanStatus(c.Query("status"))
	if !ok {
		c.JSON(http.StatusBadRequest, inventory.ErrorBody(inventory.CodeInvalidArgument, "status must be Semua, Belum Kembali or Sudah Kembali"))
		return filter.LoanQuery{}, false
	}
	return filter.LoanQuery{
		Search: c.Query("search"),
		Kind:   inventory.Kind(c.Query("jenis")),
		Status: status,
	}, true
}
