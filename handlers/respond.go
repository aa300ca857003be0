package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"playfield/models"
	"playfield/utils"
)

// codedError is satisfied by every service error type; the code decides the
// HTTP status so handlers never inspect concrete error types.
type codedError interface {
	error
	ErrorCode() string
}

var statusByCode = map[string]int{
	"validationError":  http.StatusBadRequest,
	"notFound":         http.StatusNotFound,
	"forbidden":        http.StatusForbidden,
	"unauthorized":     http.StatusUnauthorized,
	"conflict":         http.StatusConflict,
	"capacityExceeded": http.StatusConflict,
	"slotBooked":       http.StatusConflict,
	"slotInactive":     http.StatusConflict,
	"slotExpired":      http.StatusConflict,
	"notBooked":        http.StatusConflict,
}

// respondServiceError maps a service error to the uniform envelope. Unknown
// errors are logged with detail and surfaced as a generic 500.
func respondServiceError(c *gin.Context, err error) {
	var coded codedError
	if errors.As(err, &coded) {
		if status, ok := statusByCode[coded.ErrorCode()]; ok {
			utils.JSONError(c, status, coded.Error())
			return
		}
	}
	utils.GetLogger().Error("unhandled service error", zap.String("path", c.FullPath()), zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "internal server error")
}

// actorOptional returns the authenticated account when present, nil otherwise.
// Used on public routes that reveal more to owners.
func actorOptional(c *gin.Context) *models.Account {
	val, exists := c.Get("account")
	if !exists {
		return nil
	}
	account, _ := val.(*models.Account)
	return account
}

// actorFromContext returns the authenticated account set by the auth middleware.
func actorFromContext(c *gin.Context) (*models.Account, bool) {
	val, exists := c.Get("account")
	if !exists {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return nil, false
	}
	account, ok := val.(*models.Account)
	if !ok || account == nil {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return nil, false
	}
	return account, true
}
