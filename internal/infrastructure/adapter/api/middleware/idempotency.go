package middleware

import (
	"encoding/json"
	"net/http"

	domainerr "github.com/adhishcp/upi-app/internal/domain/error"
	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/api/dto"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/cache"
	"github.com/gin-gonic/gin"
)

// Gin context keys used by the idempotency middleware
const (
	IdempotencyKeyKey = "idempotencyKey"
	cachedResponseKey = "idempotencyCachedResponse"
)

// IdempotencyKey requires the Idempotency-Key header on mutating routes and,
// when a cache is configured, serves already-captured responses without
// touching the database. The cache is a fast path only; a miss falls through
// to the store, which remains the source of truth.
func IdempotencyKey(responseCache *cache.ResponseCache, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrMissingIdempotencyKey),
				Message: "Missing required header: Idempotency-Key",
			})
			return
		}
		c.Set(IdempotencyKeyKey, key)

		if responseCache != nil {
			if payload := responseCache.Get(c.Request.Context(), key); payload != nil {
				logger.Debug("Idempotent response served from cache", map[string]any{
					"idempotency_key": key,
				})
				c.Data(http.StatusOK, "application/json", payload)
				c.Abort()
				return
			}
		}

		c.Next()

		if responseCache == nil {
			return
		}
		if payload, ok := c.Get(cachedResponseKey); ok {
			if raw, ok := payload.(json.RawMessage); ok {
				responseCache.Set(c.Request.Context(), key, raw)
			}
		}
	}
}

// Key returns the idempotency key stored by the middleware
func Key(c *gin.Context) string {
	return c.GetString(IdempotencyKeyKey)
}

// CacheResponse marks a terminal response payload for caching once the
// request completes
func CacheResponse(c *gin.Context, payload json.RawMessage) {
	c.Set(cachedResponseKey, payload)
}
