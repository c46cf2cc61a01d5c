package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck answers 200 with an empty body while the server is up.
func HealthCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}
