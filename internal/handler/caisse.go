package handler

import (
	"net/http"

	"github.com/BarkaHamza235/store-management-again6/internal/apierror"
	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/middleware"
	"github.com/BarkaHamza235/store-management-again6/internal/service"

	"github.com/gin-gonic/gin"
)

// CaisseHandler serves the point-of-sale screen: a paged grid of active
// products and the checkout endpoint.
type CaisseHandler struct {
	products service.ProductService
	sales    service.SaleService
}

func NewCaisseHandler(products service.ProductService, sales service.SaleService) *CaisseHandler {
	return &CaisseHandler{products: products, sales: sales}
}

// Products GET /v1/caisse/products
func (h *CaisseHandler) Products(c *gin.Context) {
	var filter dto.CaisseFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.products.ListCaisse(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors du chargement de la caisse"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Checkout POST /v1/caisse/checkout
func (h *CaisseHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.sales.Checkout(c.Request.Context(), middleware.GetClaims(c).UserUUID(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	if !resp.Success {
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
