package handler

import (
	"net/http"

	"github.com/BarkaHamza235/store-management-again6/internal/apierror"
	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Sales GET /v1/reports/sales
func (h *ReportsHandler) Sales(c *gin.Context) {
	var r dto.ReportRange
	if !bindQuery(c, &r) {
		return
	}
	resp, err := h.svc.SalesByDay(c.Request.Context(), r)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors du chargement du rapport"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Stock GET /v1/reports/stock
func (h *ReportsHandler) Stock(c *gin.Context) {
	resp, err := h.svc.StockLevels(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors du chargement du rapport"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
