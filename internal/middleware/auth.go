package middleware

import (
	"net/http"
	"strings"

	jwtsvc "publicapi/internal/pkg/jwt"
	"publicapi/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenAuth guards resource routes. It accepts only access tokens: valid
// signature, unexpired, public scope, and no jti (a jti marks a refresh
// token, which must never authorize resource calls directly).
func TokenAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := TokenFromHeader(c.GetHeader("Authorization"))
		if tokenStr == "" {
			abortUnauthorized(c, "Missing or malformed Authorization header.")
			return
		}

		claims, err := jwt.Validate(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token.")
			return
		}

		if claims.Scopes.Access != jwtsvc.ScopePublic {
			abortUnauthorized(c, "Token scope does not permit this operation.")
			return
		}

		if claims.IsRefresh() {
			abortUnauthorized(c, "A refresh token cannot be used here. Exchange it for an access token first.")
			return
		}

		c.Set("subject", claims.Subject)
		c.Set("scope", claims.Scopes.Access)

		c.Next()
	}
}

// TokenFromHeader extracts the raw token from an Authorization header.
// Clients send "Token <jwt>"; "Bearer" is accepted as an alias.
func TokenFromHeader(header string) string {
	header = strings.TrimSpace(header)
	for _, scheme := range []string{"Token ", "Bearer "} {
		if strings.HasPrefix(header, scheme) {
			return strings.TrimSpace(strings.TrimPrefix(header, scheme))
		}
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	response.Error(c, http.StatusUnauthorized, message)
	c.Abort()
}
