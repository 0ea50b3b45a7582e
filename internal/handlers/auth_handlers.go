package handlers

import (
	"errors"
	"net/http"

	"horeca_backend/internal/middleware"
	"horeca_backend/internal/services"
	"horeca_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// CompleteOnboarding handles new business registration.
func (h *AuthHandler) CompleteOnboarding(c *gin.Context) {
	var req services.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CompleteOnboarding: Failed to bind JSON")
		utils.RespondValidationFailed(c)
		return
	}

	businessID, err := h.authService.CompleteOnboarding(req)
	if err != nil {
		utils.LogError(err, "CompleteOnboarding: Error from authService.CompleteOnboarding")
		if errors.Is(err, services.ErrMissingFields) {
			utils.RespondValidationFailed(c)
		} else if errors.Is(err, services.ErrEmailExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Email already registered.", ""))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to complete onboarding.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "insertedId": businessID})
}

// Login verifies credentials and establishes the cookie session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "Login: Failed to bind JSON")
		utils.RespondValidationFailed(c)
		return
	}

	business, err := h.authService.Login(req)
	if err != nil {
		utils.LogError(err, "Login: Error from authService.Login")
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Same response whether the email exists or the password is wrong.
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid email or password.", ""))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to login.", "Internal error"))
		}
		return
	}

	token, err := utils.GenerateSessionToken(business.ID, business.HorecaName, business.Email)
	if err != nil {
		utils.LogError(err, "Login: Failed to generate session token")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to login.", "Internal error"))
		return
	}

	c.SetCookie(utils.SessionCookieName, token, int(utils.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"business_id": business.ID,
		"horeca_name": business.HorecaName,
	})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetCurrentUser returns the session identity of the caller.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	businessID, ok := middleware.BusinessIDFromContext(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Not authenticated.", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"business_id": businessID,
		"horeca_name": c.GetString(middleware.CtxHorecaName),
		"email":       c.GetString(middleware.CtxEmail),
	}})
}

// GetBusinessInfo returns the {city, country} view derived from the
// business's address.
func (h *AuthHandler) GetBusinessInfo(c *gin.Context) {
	businessID, ok := middleware.BusinessIDFromContext(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Not authenticated.", ""))
		return
	}

	info, err := h.authService.GetBusinessInfo(businessID)
	if err != nil {
		utils.LogError(err, "GetBusinessInfo: Error from authService.GetBusinessInfo")
		if errors.Is(err, services.ErrBusinessNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Business not found.", ""))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to retrieve business info.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, info)
}
