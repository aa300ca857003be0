package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playfield/utils"
)

// HealthHandler reports the latest dependency health snapshot.
func HealthHandler(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, "ok", utils.GetHealthStatus())
}
