package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DomainWhitelistMiddleware rejects requests whose Host header matches none
// of allowedDomains. A domain matches with or without the request port.
func DomainWhitelistMiddleware(allowedDomains []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Request.Host
		hostname := host
		if h, _, err := net.SplitHostPort(host); err == nil {
			hostname = h
		}

		allowed := false
		for _, domain := range allowedDomains {
			if strings.EqualFold(domain, host) || strings.EqualFold(domain, hostname) {
				allowed = true
				break
			}
		}

		if !allowed {
			slog.Warn("host not allowed", "host", host, "remote_addr", c.ClientIP())
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Next()
	}
}
