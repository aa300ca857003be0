package utils

import (
	"playfield/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JSONSuccess sends the uniform success envelope.
func JSONSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.Envelope{Success: true, Message: message, Data: data})
}

// JSONError sends the uniform error envelope and logs the detail server-side.
func JSONError(c *gin.Context, status int, message string) {
	GetLogger().Warn(message, zap.Int("status", status), zap.String("path", c.FullPath()))
	c.JSON(status, models.Envelope{Success: false, Message: message})
}
