package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"restaurant-app-api/internal/models"
	"restaurant-app-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SendOTP godoc
// @Summary Request a demo verification code
// @Description Upserts the user for the phone number and returns the fixed demo OTP in the response body
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.SendOTPRequest true "Phone number"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /auth/send-otp [post]
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var payload models.SendOTPRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	otp, err := h.authService.RequestCode(c.Request.Context(), payload.Phone)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"otp":     otp,
		"message": services.OTPMessage,
	})
}

// VerifyOTP godoc
// @Summary Verify a demo code
// @Description Marks the user verified when the submitted code matches the fixed demo value
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.VerifyOTPRequest true "Phone and code"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /auth/verify [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var payload models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.VerifyCode(c.Request.Context(), payload.Phone, payload.OTP)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}
