package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/BarkaHamza235/store-management-again6/internal/apierror"
	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/middleware"
	"github.com/BarkaHamza235/store-management-again6/internal/service"

	"github.com/gin-gonic/gin"
)

// ExportsHandler serves /v1/export/{entity}/{format}. Every route produces an
// attachment built from the same rows as the matching list screen.
type ExportsHandler struct{ svc service.ExportService }

func NewExportsHandler(svc service.ExportService) *ExportsHandler {
	return &ExportsHandler{svc: svc}
}

// Sales GET /v1/export/sales/:format
func (h *ExportsHandler) Sales(c *gin.Context) {
	var filter dto.SaleFilter
	if !bindQuery(c, &filter) {
		return
	}
	doc, err := h.svc.Sales(c.Request.Context(), c.Param("format"), filter)
	h.serve(c, doc, err)
}

// Employees GET /v1/export/employees/:format
func (h *ExportsHandler) Employees(c *gin.Context) {
	var filter dto.EmployeeFilter
	if !bindQuery(c, &filter) {
		return
	}
	doc, err := h.svc.Employees(c.Request.Context(), c.Param("format"), middleware.GetClaims(c).UserUUID(), filter)
	h.serve(c, doc, err)
}

// Products GET /v1/export/products/:format
func (h *ExportsHandler) Products(c *gin.Context) {
	var filter dto.ProductFilter
	if !bindQuery(c, &filter) {
		return
	}
	doc, err := h.svc.Products(c.Request.Context(), c.Param("format"), filter)
	h.serve(c, doc, err)
}

// Suppliers GET /v1/export/suppliers/:format
func (h *ExportsHandler) Suppliers(c *gin.Context) {
	var filter dto.SupplierFilter
	if !bindQuery(c, &filter) {
		return
	}
	doc, err := h.svc.Suppliers(c.Request.Context(), c.Param("format"), filter)
	h.serve(c, doc, err)
}

// Categories GET /v1/export/categories/:format
func (h *ExportsHandler) Categories(c *gin.Context) {
	doc, err := h.svc.Categories(c.Request.Context(), c.Param("format"))
	h.serve(c, doc, err)
}

// SalesReport GET /v1/export/reports/sales/:format
func (h *ExportsHandler) SalesReport(c *gin.Context) {
	var r dto.ReportRange
	if !bindQuery(c, &r) {
		return
	}
	doc, err := h.svc.SalesReport(c.Request.Context(), c.Param("format"), r)
	h.serve(c, doc, err)
}

// StockReport GET /v1/export/reports/stock/:format
func (h *ExportsHandler) StockReport(c *gin.Context) {
	doc, err := h.svc.StockReport(c.Request.Context(), c.Param("format"))
	h.serve(c, doc, err)
}

func (h *ExportsHandler) serve(c *gin.Context, doc *service.ExportDocument, err error) {
	if err != nil {
		if errors.Is(err, service.ErrBadFormat) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("L'export n'a pas pu être généré"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}
