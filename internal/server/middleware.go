package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/toeiz/internal/session"
)

// requestLogger logs one line per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.LogAttrs(c.Request.Context(), level, "request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// requireLogin redirects anonymous visitors to the login page.
func requireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.Get(c)
		if !sess.LoggedIn() {
			sess.AddFlash(session.FlashWarning, "Please log in first")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// requireLoginJSON is requireLogin for JSON endpoints.
func requireLoginJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.Get(c).LoggedIn() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}
		c.Next()
	}
}
