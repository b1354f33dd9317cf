package httpapi

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"riichiscore/internal/auth"
	"riichiscore/internal/logging"
)

// RequestIDMiddleware stamps every request with an X-Request-ID, echoing
// a caller-supplied one if present, mirroring
// common/http/middleware.go's RequestIDMiddleware.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// LoggerMiddleware logs request start/completion with the request ID,
// mirroring common/http/middleware.go's LoggerMiddleware.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		logging.Info("http request: %s %s request_id=%s", c.Request.Method, c.Request.URL.Path, c.GetString("requestID"))
		c.Next()
		logging.Info("http response: %s %s status=%d latency=%s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// RecoveryMiddleware turns a panic into a 500 error body instead of
// crashing the process, mirroring common/http/middleware.go's
// RecoveryMiddleware.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logging.Error("panic recovered: %v", r)
				c.AbortWithStatusJSON(500, ErrorResponse{Kind: "internal_error", Detail: "internal server error"})
			}
		}()
		c.Next()
	}
}

// AuthMiddleware requires a bearer JWT signed with secret and stores the
// embedded client ID on the context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(401, ErrorResponse{Kind: "unauthorized", Detail: "missing bearer token"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		clientID, err := auth.ParseToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(401, ErrorResponse{Kind: "unauthorized", Detail: err.Error()})
			return
		}
		c.Set("clientID", clientID)
		c.Next()
	}
}
