package notification

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

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.POST("/restrooms/:restroomID/navigation", h.Navigation)
	api.POST("/restrooms/:restroomID/arrival", h.Arrival)
	api.POST("/restrooms/:restroomID/notify-owner", h.NotifyOwner)
}

func (h *Handler) RegisterOwnerRoutes(owner *gin.RouterGroup) {
	owner.GET("/:email/notifications", h.ListByOwner)
	owner.PUT("/notifications/:notificationID/read", h.MarkRead)
}

func (h *Handler) Navigation(c *gin.Context) {
	restroomID, err := strconv.ParseInt(c.Param("restroomID"), 10, 64)
	if err != nil {
		response.Err(c, http.StatusBadRequest, "invalid restroom id")
		return
	}

	var req NavigationRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.service.NotifyNavigation(c.Request.Context(), restroomID, req.UserID); err != nil {
		h.writeNotifyError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Navigation request sent to owner")
}

func (h *Handler) Arrival(c *gin.Context) {
	restroomID, err := strconv.ParseInt(c.Param("restroomID"), 10, 64)
	if err != nil {
		response.Err(c, http.StatusBadRequest, "invalid restroom id")
		return
	}

	var req ArrivalRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.service.NotifyArrival(c.Request.Context(), restroomID, req.UserID); err != nil {
		h.writeNotifyError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Arrival notification sent to owner")
}

func (h *Handler) NotifyOwner(c *gin.Context) {
	restroomID, err := strconv.ParseInt(c.Param("restroomID"), 10, 64)
	if err != nil {
		response.Err(c, http.StatusBadRequest, "invalid restroom id")
		return
	}

	var req NotifyOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.NotifyOwner(c.Request.Context(), restroomID, req.UserID, req.Type, req.Message); err != nil {
		h.writeNotifyError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Notification sent to owner")
}

func (h *Handler) writeNotifyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRestroomNotFound):
		response.Err(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNoOwner):
		response.Err(c, http.StatusBadRequest, err.Error())
	default:
		response.Err(c, http.StatusInternalServerError, "failed to notify owner")
	}
}

func (h *Handler) ListByOwner(c *gin.Context) {
	notifications, err := h.service.ListByOwnerEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, ErrOwnerNotFound) {
			response.Err(c, http.StatusNotFound, err.Error())
			return
		}
		response.Err(c, http.StatusInternalServerError, "failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("notificationID"), 10, 64)
	if err != nil {
		response.Err(c, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id); err != nil {
		response.Err(c, http.StatusInternalServerError, "failed to mark notification read")
		return
	}
	response.Message(c, http.StatusOK, "Notification marked as read")
}
