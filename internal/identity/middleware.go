package identity

import (
	"net/http"
	"regexp"
	"strings"

	"gymflow/internal/api"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID = "X-User-ID"
	contextKey   = "user_id"
)

var userIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// ValidUserID reports whether id is an acceptable member id.
func ValidUserID(id string) bool {
	return userIDPattern.MatchString(id)
}

// Middleware resolves the member the request acts for. Requests without
// X-User-ID act for defaultUserID. Identity is not authenticated.
func Middleware(defaultUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			userID = defaultUserID
		}

		if !ValidUserID(userID) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid user id"})
			c.Abort()
			return
		}

		c.Set(contextKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(contextKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}
