package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// Proxy headers consulted in order; X-Forwarded-For may carry a chain and the
// first hop is the original client.
var clientIPHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

func getClientIP(c *gin.Context) string {
	for _, header := range clientIPHeaders {
		value := c.GetHeader(header)
		if value == "" {
			continue
		}
		if ip := strings.TrimSpace(strings.SplitN(value, ",", 2)[0]); ip != "" {
			return ip
		}
	}

	// No proxy in front: RemoteAddr is authoritative, minus the port.
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
