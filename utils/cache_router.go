package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	CacheNoCache = 0
	CacheDay     = 86400
)

// CacheControl sets cache-control for the routes it wraps. Session dependent
// responses (maxAge == CacheNoCache) are also marked "Vary: Cookie", anything
// cacheable must not depend on the logged in user
func CacheControl(maxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxAge <= CacheNoCache {
			c.Header("cache-control", "no-cache")
			c.Header("vary", "Cookie")
		} else {
			c.Header("cache-control", "public, max-age="+strconv.Itoa(maxAge))
			c.Writer.Header().Del("vary")
		}
		c.Next()
	}
}
