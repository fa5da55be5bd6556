package review

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restroomfinder/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/reviews", h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Create(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Err(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrRestroomNotFound):
			response.Err(c, http.StatusNotFound, err.Error())
		default:
			response.Err(c, http.StatusInternalServerError, "failed to create review")
		}
		return
	}

	response.Message(c, http.StatusCreated, "Review created successfully")
}
