package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	accountRepo "playfield/database/repository/account"
	"playfield/utils"
)

const authCachePrefix = "auth:"

// OptionalJWTAuth resolves the account when a valid bearer token is present
// and proceeds anonymously otherwise. Used on public routes that reveal more
// to owners.
func OptionalJWTAuth(accounts accountRepo.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if token, err := utils.ValidateToken(tokenString); err == nil && token.Valid {
			if account, err := accounts.GetByTokenHash(utils.HashToken(tokenString)); err == nil && account != nil {
				c.Set("account", account)
				c.Set("accountID", account.ID)
				c.Set("role", account.Role)
			}
		}
		c.Next()
	}
}

// JWTAuthMiddleware validates the bearer token, resolves the owning account
// by token hash, and sets "account", "accountID" and "role" in the request
// context. The auth cache is consulted first; a cache outage degrades to a
// database lookup rather than rejecting requests.
func JWTAuthMiddleware(accounts accountRepo.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			return
		}

		accountID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || accountID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := authCachePrefix + accountID

		ctx := context.Background()
		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			switch {
			case err == nil && cachedHash != computedHash:
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "token mismatch"})
				return
			case err == nil:
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
				account, err := accounts.GetByID(accountID)
				if err != nil || account == nil {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "account not found"})
					return
				}
				c.Set("account", account)
				c.Set("accountID", account.ID)
				c.Set("role", account.Role)
				c.Next()
				return
			case err != redis.Nil:
				log.Printf("WARNING: auth cache lookup failed: %v. Falling back to DB lookup.", err)
			}
		}

		account, err := accounts.GetByTokenHash(computedHash)
		if err != nil || account == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "token mismatch or account not found"})
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
		}

		c.Set("account", account)
		c.Set("accountID", account.ID)
		c.Set("role", account.Role)
		c.Next()
	}
}
