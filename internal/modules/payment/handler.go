package payment

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
	api.POST("/payments", h.Create)
	api.POST("/payments/:paymentID/confirm", h.Resolve)
	api.GET("/users/:userID/payments", h.ListByUser)
	api.GET("/users/:userID/payment-status/:restroomID", h.Status)
}

func (h *Handler) RegisterOwnerRoutes(owner *gin.RouterGroup) {
	owner.GET("/:email/payments", h.ListByOwner)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Err(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrRestroomNotFound), errors.Is(err, ErrOwnerNotFound):
			response.Err(c, http.StatusNotFound, err.Error())
		default:
			response.Err(c, http.StatusInternalServerError, "failed to create payment")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"payment_id": p.ID,
		"status":     p.Status,
	})
}

func (h *Handler) Resolve(c *gin.Context) {
	paymentID, err := strconv.ParseInt(c.Param("paymentID"), 10, 64)
	if err != nil {
		response.Err(c, http.StatusBadRequest, "invalid payment id")
		return
	}

	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request body")
		return
	}

	status, err := h.service.Resolve(c.Request.Context(), paymentID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAction):
			response.Err(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrPaymentNotFound):
			response.Err(c, http.StatusNotFound, err.Error())
		default:
			response.Err(c, http.StatusInternalServerError, "failed to update payment")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}

// ListByOwner accepts either a numeric owner id or an owner email in the
// path, mirroring the two lookup styles the owner dashboard uses.
func (h *Handler) ListByOwner(c *gin.Context) {
	identifier := c.Param("email")

	var (
		rows []OwnerPaymentRow
		err  error
	)
	if ownerID, perr := strconv.ParseInt(identifier, 10, 64); perr == nil {
		rows, err = h.service.ListByOwner(c.Request.Context(), ownerID)
	} else {
		rows, err = h.service.ListByOwnerEmail(c.Request.Context(), identifier)
	}
	if err != nil {
		if errors.Is(err, ErrOwnerNotFound) {
			response.Err(c, http.StatusNotFound, err.Error())
			return
		}
		response.Err(c, http.StatusInternalServerError, "failed to list payments")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		response.Err(c, http.StatusBadRequest, "invalid user id")
		return
	}

	rows, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Err(c, http.StatusInternalServerError, "failed to list payments")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) Status(c *gin.Context) {
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

	status, err := h.service.Status(c.Request.Context(), userID, restroomID)
	if err != nil {
		response.Err(c, http.StatusInternalServerError, "failed to check payment status")
		return
	}
	c.JSON(http.StatusOK, status)
}
