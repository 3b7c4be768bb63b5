package auth

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the acting user's ID. There is no authentication;
// ownership checks compare this value with stored owner ids.
const HeaderUserID = "X-Sharer-User-Id"

// SharerRequired is a Gin middleware that requires a positive integer X-Sharer-User-Id header.
func SharerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if header == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "missing " + HeaderUserID + " header",
			})
			return
		}

		id, err := strconv.ParseInt(header, 10, 64)
		if err != nil || id < 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": HeaderUserID + " must be a positive integer",
			})
			return
		}

		SetUserID(c, id)

		c.Next()
	}
}
