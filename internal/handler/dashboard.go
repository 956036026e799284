package handler

import (
	"net/http"

	"github.com/BarkaHamza235/store-management-again6/internal/apierror"
	"github.com/BarkaHamza235/store-management-again6/internal/middleware"
	"github.com/BarkaHamza235/store-management-again6/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.ReportService }

func NewDashboardHandler(svc service.ReportService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Get GET /v1/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context(), middleware.GetClaims(c).UserUUID())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors du chargement du tableau de bord"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
