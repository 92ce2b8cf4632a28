// internal/interfaces/http/middleware/cors.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
)

// CORS handles cross-origin requests against the configured origin
// allowlist. The method/header lists are static per process, so they
// are joined once at setup.
func CORS(cfg *config.Config) gin.HandlerFunc {
	origins := cfg.Security.CORSAllowedOrigins
	methods := strings.Join(cfg.Security.CORSAllowedMethods, ", ")
	headers := strings.Join(cfg.Security.CORSAllowedHeaders, ", ")

	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); originAllowed(origins, origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// originAllowed matches exact entries, "*", and "*.domain" subdomain
// patterns. A "*.example.com" entry matches any host under the domain
// but not unrelated hosts that merely end in "example.com".
func originAllowed(allowed []string, origin string) bool {
	if origin == "" {
		return false
	}
	for _, entry := range allowed {
		if entry == "*" || entry == origin {
			return true
		}
		if strings.HasPrefix(entry, "*.") && strings.HasSuffix(origin, entry[1:]) {
			return true
		}
	}
	return false
}
