package handlers

import (
	"net/http"

	"github.com/CorrelAid/newsletter_subscription/models"
	"github.com/gin-gonic/gin"
)

// Subscribe acknowledges a decoded subscription form. The response is the
// same for every submission.
func Subscribe(c *gin.Context, _ models.FormData) {
	c.Status(http.StatusOK)
}
