package handler

import (
	"net/http"

	"github.com/BarkaHamza235/store-management-again6/internal/apierror"
	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/middleware"
	"github.com/BarkaHamza235/store-management-again6/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Register POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Logout POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	h.svc.Logout(c.Request.Context(), claims.UserUUID())
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Vous avez été déconnecté."})
}

// RequestPasswordReset POST /v1/auth/password-reset
// Always answers 200 so the endpoint cannot be used to probe for accounts.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.PasswordResetRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("L'email de réinitialisation n'a pas pu être envoyé."))
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Si un compte existe avec cet email, un lien de réinitialisation a été envoyé.",
	})
}

// ValidateResetToken GET /v1/auth/password-reset/confirm?token=...
// Step gate before the confirmation form submits.
func (h *AuthHandler) ValidateResetToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Jeton manquant"))
		return
	}
	if err := h.svc.ValidateResetToken(c.Request.Context(), token); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Jeton valide."})
}

// ConfirmPasswordReset POST /v1/auth/password-reset/confirm
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req dto.PasswordResetConfirmRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ConfirmPasswordReset(c.Request.Context(), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Votre mot de passe a été réinitialisé."})
}
