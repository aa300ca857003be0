package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"playfield/models"
	"playfield/utils"
)

// RegisterHandler creates a new account and returns an auth token.
func (h *HandlerBundle) RegisterHandler(c *gin.Context) {
	var account models.Account
	if err := c.ShouldBindJSON(&account); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	resp, err := h.Accounts.Register(account)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "account registered", resp)
}

// LoginHandler authenticates credentials and returns a fresh token.
func (h *HandlerBundle) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	resp, err := h.Accounts.Authenticate(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "authenticated", resp)
}

// ProfileHandler returns the authenticated account's safe view.
func (h *HandlerBundle) ProfileHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	account, err := h.Accounts.GetByID(actor.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "profile", account)
}

// ChangePasswordHandler rotates the password for the authenticated account.
func (h *HandlerBundle) ChangePasswordHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "currentPassword and newPassword are required")
		return
	}

	if err := h.Accounts.ChangePassword(actor.ID, req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "password changed", nil)
}

// ForgotPasswordHandler starts the reset flow. The response is identical
// whether or not the email exists.
func (h *HandlerBundle) ForgotPasswordHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.Accounts.ForgotPassword(req.Email); err != nil {
		utils.GetLogger().Error("failed to initiate password reset", zap.Error(err))
	}
	utils.JSONSuccess(c, http.StatusOK, "if the account exists, a reset code has been sent", nil)
}

// ResetPasswordHandler completes the reset flow with the emailed code.
func (h *HandlerBundle) ResetPasswordHandler(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required"`
		Code        string `json:"code" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email, code and newPassword are required")
		return
	}

	if err := h.Accounts.ResetPassword(req.Email, req.Code, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "password reset", nil)
}

// RevokeTokenHandler logs the account out everywhere.
func (h *HandlerBundle) RevokeTokenHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	if err := h.Accounts.RevokeToken(actor.ID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "token revoked", nil)
}

// UpdateDeviceTokenHandler stores the FCM device token for pushes.
func (h *HandlerBundle) UpdateDeviceTokenHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "fcmToken is required")
		return
	}

	if err := h.Accounts.UpdateFCMToken(actor.ID, req.FCMToken); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "device token updated", nil)
}
