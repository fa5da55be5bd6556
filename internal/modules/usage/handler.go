package usage

import (
	"errors"
	"net/http"
	"strconv"

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
	api.POST("/users/:userID/start-using/:restroomID", h.StartUsing)
	api.POST("/users/:userID/stop-using", h.StopUsing)
	api.GET("/users/:userID/history", h.History)
}

func (h *Handler) StartUsing(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		response.Err(c, http.StatusBadRequest, "invalid user id")
		return
	}
	restroomID, err := strconv.ParseInt(c.Param("restroomID"), 10, 64)
	if err != nil {
		response.Err(c, http.StatusBadRequest, "invalid restroom id")
		return
	}

	if err := h.service.StartUsing(c.Request.Context(), userID, restroomID); err != nil {
		switch {
		case errors.Is(err, ErrPaymentRequired):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error":            err.Error(),
				"requires_payment": true,
			})
		case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrRestroomNotFound):
			response.Err(c, http.StatusNotFound, err.Error())
		default:
			response.Err(c, http.StatusInternalServerError, "failed to start session")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) StopUsing(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		response.Err(c, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.service.StopUsing(c.Request.Context(), userID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Err(c, http.StatusNotFound, err.Error())
			return
		}
		response.Err(c, http.StatusInternalServerError, "failed to stop session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) History(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		response.Err(c, http.StatusBadRequest, "invalid user id")
		return
	}

	history, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		response.Err(c, http.StatusInternalServerError, "failed to load history")
		return
	}

	c.JSON(http.StatusOK, history)
}
