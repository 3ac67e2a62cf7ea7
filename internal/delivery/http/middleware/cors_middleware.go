package middleware

import (
	"net/http"

	"portfolio-backend/config"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware lets the portfolio frontend call the API from the browser.
// Allowed: FRONTEND_URL, CORS_ALLOWED_ORIGINS, and localhost dev servers
// outside production. Other origins get no CORS headers.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	allowed := map[string]bool{}
	if cfg.FrontendURL != "" {
		allowed[cfg.FrontendURL] = true
	}
	for _, o := range cfg.CORSAllowedOrigins {
		allowed[o] = true
	}
	if !cfg.IsProduction() {
		for _, o := range []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:3001"} {
			allowed[o] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Empty origin means same-origin or a non-browser client
		isAllowed := origin == "" || allowed[origin]

		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, X-Request-ID, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Expose-Headers", RequestIDHeader)
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			if isAllowed {
				c.AbortWithStatus(http.StatusNoContent)
			} else {
				c.AbortWithStatus(http.StatusForbidden)
			}
			return
		}

		c.Next()
	}
}
