package middleware

import (
	"Conexus/internal/pkg/cache"
	"Conexus/internal/pkg/response"
	"Conexus/internal/pkg/security"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the JWT and injects the user identity into the
// request context. Logged-out tokens are rejected via the signature
// denylist.
func AuthMiddleware(tokenManager *security.TokenManager, c cache.Cache) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(ctx, response.Unauthorized, "token missing or malformed")
			ctx.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(ctx, response.Unauthorized, "token missing or malformed")
			ctx.Abort()
			return
		}

		value, err := c.Get(ctx.Request.Context(), signature)
		if err != nil {
			response.Fail(ctx, response.InternalServerError, "unexpected error")
			ctx.Abort()
			return
		}
		if value != "" {
			response.Fail(ctx, response.Unauthorized, "token invalid or expired")
			ctx.Abort()
			return
		}

		claims, err := tokenManager.ValidateToken(tokenString)
		if err != nil {
			response.Fail(ctx, response.Unauthorized, "token invalid or expired")
			ctx.Abort()
			return
		}

		ctx.Set("user_id", claims.UserID)

		newCtx := context.WithValue(ctx.Request.Context(), userIDContextKey, claims.UserID)
		ctx.Request = ctx.Request.WithContext(newCtx)

		ctx.Next()
	}
}

type contextKey string

const userIDContextKey contextKey = "user_id"
