package chat

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"restroomfinder/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	chatGroup := api.Group("/chat")
	{
		chatGroup.POST("/messages", h.Send)
		chatGroup.GET("/messages/:restroomID", h.List)
		chatGroup.GET("/ws/:restroomID", h.Watch)
	}
}

func (h *Handler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.service.Send(c.Request.Context(), req); err != nil {
		if errors.Is(err, ErrValidation) {
			response.Err(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Err(c, http.StatusInternalServerError, "failed to send message")
		return
	}

	response.Message(c, http.StatusCreated, "Message sent successfully")
}

func (h *Handler) List(c *gin.Context) {
	restroomID, err := strconv.ParseInt(c.Param("restroomID"), 10, 64)
	if err != nil {
		response.Err(c, http.StatusBadRequest, "invalid restroom id")
		return
	}

	messages, err := h.service.List(c.Request.Context(), restroomID)
	if err != nil {
		response.Err(c, http.StatusInternalServerError, "failed to load messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Watch upgrades to a websocket and streams new messages for a restroom
// until the peer disconnects.
func (h *Handler) Watch(c *gin.Context) {
	restroomID, err := strconv.ParseInt(c.Param("restroomID"), 10, 64)
	if err != nil {
		response.Err(c, http.StatusBadRequest, "invalid restroom id")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("chat_ws_upgrade_failed restroom_id=%d err=%v", restroomID, err)
		return
	}

	h.hub.Subscribe(restroomID, conn)
	defer h.hub.Unsubscribe(restroomID, conn)

	// Drain control frames; the feed is one-way.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
