package auth

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
	api.POST("/users", h.CreateUser)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/check-username/:username", h.CheckUsername)
	}
}

// CreateUser registers the auto-generated guest account the mobile client
// creates on first launch.
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.service.CreateRandomUser(c.Request.Context(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Err(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrUsernameTaken):
			response.Err(c, http.StatusConflict, err.Error())
		default:
			response.Err(c, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       u.ID,
		"username": u.Username,
	})
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Err(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrUsernameTaken):
			response.Err(c, http.StatusConflict, err.Error())
		default:
			response.Err(c, http.StatusInternalServerError, "failed to register")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":             u.ID,
		"username":       u.Username,
		"role":           u.Role,
		"is_random_user": u.IsRandomUser,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Err(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrInvalidCredentials):
			response.Err(c, http.StatusUnauthorized, err.Error())
		default:
			response.Err(c, http.StatusInternalServerError, "failed to login")
		}
		return
	}

	if res.Owner != nil {
		c.JSON(http.StatusOK, gin.H{
			"id":    res.Owner.ID,
			"name":  res.Owner.Name,
			"email": res.Owner.Email,
			"phone": res.Owner.Phone,
			"role":  "owner",
			"token": res.Token,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             res.User.ID,
		"username":       res.User.Username,
		"role":           res.User.Role,
		"is_random_user": res.User.IsRandomUser,
	})
}

func (h *Handler) CheckUsername(c *gin.Context) {
	available, err := h.service.CheckUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Err(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Err(c, http.StatusInternalServerError, "failed to check username")
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}
