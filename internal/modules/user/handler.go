package user

import (
	"errors"
	"net/http"

	"publicapi/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler serves the /user resource. Every route here sits behind the access
// token middleware; missing-parameter checks run before the service is asked
// to do anything.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/user", h.Get)
	protected.PUT("/user", h.Update)
	protected.DELETE("/user", h.Disable)
}

func (h *Handler) Get(c *gin.Context) {
	apiID := c.Query("api_id")
	if apiID == "" {
		response.Error(c, http.StatusBadRequest, response.MsgMissingParams)
		return
	}

	projection, err := h.service.Get(c.Request.Context(), apiID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, projection)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgMissingParams)
		return
	}
	if req.APIID == "" || len(req.Updates) == 0 {
		response.Error(c, http.StatusBadRequest, response.MsgMissingParams)
		return
	}

	if err := h.service.Update(c.Request.Context(), req.APIID, req.Updates); err != nil {
		h.fail(c, err)
		return
	}

	response.Message(c, http.StatusOK, response.MsgUpdated)
}

func (h *Handler) Disable(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgMissingParams)
		return
	}
	if req.APIID == "" {
		response.Error(c, http.StatusBadRequest, response.MsgMissingParams)
		return
	}

	if err := h.service.Disable(c.Request.Context(), req.APIID); err != nil {
		h.fail(c, err)
		return
	}

	response.Message(c, http.StatusOK, response.MsgUpdated)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrForbiddenField):
		response.Error(c, http.StatusForbidden, response.MsgForbidden)
	case errors.Is(err, ErrInvalidUpdates):
		response.Error(c, http.StatusBadRequest, response.MsgMissingParams)
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "User not found.")
	default:
		response.ErrorWithDetails(c, http.StatusInternalServerError, response.MsgServerError, err)
	}
}
