package auth

import (
	"errors"
	"net/http"

	"publicapi/internal/middleware"
	"publicapi/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages the HTTP surface of the token exchanges.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("", h.Login)
		authGroup.GET("", h.Refresh)
		authGroup.DELETE("", h.Revoke)
	}
}

// Login exchanges Basic credentials (api_id:key) for a refresh token.
func (h *Handler) Login(c *gin.Context) {
	apiID, key, ok := c.Request.BasicAuth()
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication failed.")
		return
	}

	token, err := h.service.Login(c.Request.Context(), apiID, key)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Authentication failed.")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, response.MsgServerError, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Refresh exchanges a refresh token for an access token. The refresh token
// is presented in the Authorization header, same scheme as resource calls.
func (h *Handler) Refresh(c *gin.Context) {
	refreshRaw := middleware.TokenFromHeader(c.GetHeader("Authorization"))
	if refreshRaw == "" {
		response.Error(c, http.StatusUnauthorized, "Missing or malformed Authorization header.")
		return
	}

	token, err := h.service.Refresh(c.Request.Context(), refreshRaw)
	if err != nil {
		switch {
		case errors.Is(err, ErrTokenRevoked):
			response.Error(c, http.StatusUnauthorized, "Token has been revoked.")
		case errors.Is(err, ErrInvalidRefreshToken):
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token.")
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, response.MsgServerError, err)
		}
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Revoke blacklists the presented refresh token. Revoking an already revoked
// token succeeds quietly.
func (h *Handler) Revoke(c *gin.Context) {
	refreshRaw := middleware.TokenFromHeader(c.GetHeader("Authorization"))
	if refreshRaw == "" {
		response.Error(c, http.StatusUnauthorized, "Missing or malformed Authorization header.")
		return
	}

	if err := h.service.Revoke(c.Request.Context(), refreshRaw); err != nil {
		if errors.Is(err, ErrInvalidRefreshToken) {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token.")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, response.MsgServerError, err)
		return
	}

	response.Message(c, http.StatusOK, "Successfully revoked.")
}
