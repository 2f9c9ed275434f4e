package httpserver

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/deathline/internal/server/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	userIDKey       = "user_id"
)

func (s *HTTPServer) requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func (s *HTTPServer) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	s.logger.Info(c.Request.Context(), "request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start).String(),
		"request_id", c.GetString(requestIDKey),
	)
}

// accessTokenMiddleware rejects requests carrying an Authorization header
// that is not a valid bearer token. Requests without the header pass through.
func (s *HTTPServer) accessTokenMiddleware(c *gin.Context) {
	h := c.GetHeader("Authorization")
	if h == "" {
		c.Next()
		return
	}

	token, ok := strings.CutPrefix(h, "Bearer ")
	if !ok || token == "" {
		c.AbortWithStatusJSON(401, errorBody("missing or invalid authorization header"))
		return
	}

	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		c.AbortWithStatusJSON(401, errorBody("invalid token"))
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}
