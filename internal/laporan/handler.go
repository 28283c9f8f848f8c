package laporan

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventaris-lab-backend/internal/export"
	"inventaris-lab-backend/internal/inventory"
)

type Handler struct {
	svc *Service
	exp *export.Exporter
}

func RegisterRoutes(r gin.IRoutes, svc *Service, exp *export.Exporter) {
	h := &Handler{svc: svc, exp: exp}

	r.GET("/dashboard", h.Dashboard)
	r.GET("/laporan", h.List)
	r.GET("/laporan/:lab", h.Get)
	r.GET("/laporan/:lab/export", h.Export)
}

// ---------- handlers ----------

func (h *Handler) Dashboard(c *gin.Context) {
	res, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		inventory.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) List(c *gin.Context) {
	res, err := h.svc.All(c.Request.Context())
	if err != nil {
		inventory.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Get(c *gin.Context) {
	res, err := h.svc.ForLab(c.Request.Context(), inventory.Lab(c.Param("lab")))
	if err != nil {
		inventory.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Export writes the lab report as one workbook with a sheet per section.
func (h *Handler) Export(c *gin.Context) {
	res, err := h.svc.ForLab(c.Request.Context(), inventory.Lab(c.Param("lab")))
	if err != nil {
		inventory.RespondError(c, err)
		return
	}
	h.exp.Serve(c, "laporan", string(res.Lab)+"_Laporan",
		export.ToolSheet("Alat", res.Tools),
		export.MaterialSheet("Bahan", res.Materials),
		export.LoanSheet("Penggunaan Alat", res.ToolLoans),
		export.LoanSheet("Penggunaan Bahan", res.MaterialLoans),
	)
}
