package restroom

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restroomfinder/internal/domain"
	"restroomfinder/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/restrooms", h.List)
	api.GET("/restrooms/:restroomID", h.Get)
	api.POST("/owner/register", h.RegisterOwner)
}

func (h *Handler) RegisterOwnerRoutes(owner *gin.RouterGroup) {
	owner.GET("/:email/restrooms", h.ListByOwner)
	owner.POST("/restrooms", h.Create)
	owner.PUT("/restrooms/:restroomID", h.Update)
}

func (h *Handler) List(c *gin.Context) {
	restrooms, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Err(c, http.StatusInternalServerError, "failed to list restrooms")
		return
	}
	c.JSON(http.StatusOK, restrooms)
}

type detailResponse struct {
	domain.Restroom
	Reviews []domain.Review `json:"reviews"`
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("restroomID"), 10, 64)
	if err != nil {
		response.Err(c, http.StatusBadRequest, "invalid restroom id")
		return
	}

	rr, reviews, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Err(c, http.StatusNotFound, err.Error())
			return
		}
		response.Err(c, http.StatusInternalServerError, "failed to load restroom")
		return
	}

	c.JSON(http.StatusOK, detailResponse{Restroom: *rr, Reviews: reviews})
}

func (h *Handler) RegisterOwner(c *gin.Context) {
	var req RegisterOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ownerID, err := h.service.RegisterOwner(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "failed to register owner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "owner_id": ownerID})
}

// ListByOwner accepts either a numeric owner id or an owner email in the
// path, mirroring the two lookup styles the owner dashboard uses.
func (h *Handler) ListByOwner(c *gin.Context) {
	identifier := c.Param("email")

	var (
		restrooms []domain.Restroom
		err       error
	)
	if ownerID, perr := strconv.ParseInt(identifier, 10, 64); perr == nil {
		restrooms, err = h.service.ListByOwnerID(c.Request.Context(), ownerID)
	} else {
		restrooms, err = h.service.ListByOwnerEmail(c.Request.Context(), identifier)
	}
	if err != nil {
		if errors.Is(err, ErrOwnerNotFound) {
			response.Err(c, http.StatusNotFound, err.Error())
			return
		}
		response.Err(c, http.StatusInternalServerError, "failed to list restrooms")
		return
	}
	c.JSON(http.StatusOK, restrooms)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRestroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Err(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrOwnerNotFound):
			response.Err(c, http.StatusNotFound, err.Error())
		default:
			response.Err(c, http.StatusInternalServerError, "failed to create restroom")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "restroom_id": id})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("restroomID"), 10, 64)
	if err != nil {
		response.Err(c, http.StatusBadRequest, "invalid restroom id")
		return
	}

	var req UpdateRestroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Err(c, http.StatusNotFound, err.Error())
			return
		}
		response.Err(c, http.StatusInternalServerError, "failed to update restroom")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "restroom updated"})
}
